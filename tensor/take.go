// Package tensor: axis-wise gather. Take is the primitive that every
// slicetree selector (range, index list, boolean mask) lowers to.
package tensor

import "fmt"

// Take gathers the given positions along one axis, in the given order, and
// returns a new Dense whose shape equals the receiver's except that the
// length of axis becomes len(indices). Duplicate positions are allowed;
// indices must already be resolved to [0, Len(axis)).
//
// Stage 1 (Validate): axis and every index must be in range.
// Stage 2 (Execute): copy one contiguous inner block per (outer, index) pair.
// Complexity: O(size of result).
func (d *Dense) Take(axis int, indices []int) (*Dense, error) {
	if axis < 0 || axis >= len(d.shape) {
		return nil, fmt.Errorf("tensor: Take on axis %d of %d-d tensor: %w",
			axis, len(d.shape), ErrBadAxis)
	}
	n := d.shape[axis]
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("tensor: Take index %d on axis %d (length %d): %w",
				i, axis, n, ErrOutOfRange)
		}
	}

	// outer iterates over all axes before `axis`, inner is the contiguous
	// row-major block size after it.
	outer, inner := 1, 1
	for _, s := range d.shape[:axis] {
		outer *= s
	}
	for _, s := range d.shape[axis+1:] {
		inner *= s
	}

	outShape := append([]int(nil), d.shape...)
	outShape[axis] = len(indices)
	out := make([]float64, outer*len(indices)*inner)

	dst := 0
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for _, i := range indices {
			src := base + i*inner
			copy(out[dst:dst+inner], d.data[src:src+inner])
			dst += inner
		}
	}

	return &Dense{
		shape:   outShape,
		strides: rowMajorStrides(outShape),
		data:    out,
	}, nil
}

// TakeAxis is the loosely-typed adapter for structural consumers such as
// the slicetree engine: identical to Take, but returns the result as any.
func (d *Dense) TakeAxis(axis int, indices []int) (any, error) {
	return d.Take(axis, indices)
}
