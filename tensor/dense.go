// Package tensor: Dense is a concrete, row-major N-dimensional array,
// storing elements in a flat slice for performance and cache friendliness.
package tensor

import (
	"fmt"
	"strings"
)

// Dense is a row-major N-dimensional array of float64 values.
// shape holds the length of every axis, strides the flat-index step per
// axis, and data the len(shape)-fold product of elements in row-major order.
// A zero-dimensional Dense (empty shape) holds exactly one element.
type Dense struct {
	shape   []int     // per-axis lengths, all >= 0
	strides []int     // row-major strides, len == len(shape)
	data    []float64 // flat backing storage, length == product(shape)
}

// New creates a Dense with the given shape backed by a copy of data.
// Stage 1 (Validate): every dimension must be >= 0 and len(data) must equal
// the product of the dimensions.
// Stage 2 (Prepare): copy data, derive row-major strides.
// Stage 3 (Finalize): return the new Dense or ErrBadShape.
// Complexity: O(len(data)) time and memory.
func New(shape []int, data []float64) (*Dense, error) {
	size := 1
	for _, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("tensor: New(%v): %w", shape, ErrBadShape)
		}
		size *= n
	}
	if len(data) != size {
		return nil, fmt.Errorf("tensor: New(%v): data length %d, want %d: %w",
			shape, len(data), size, ErrBadShape)
	}

	d := &Dense{
		shape:   append([]int(nil), shape...),
		strides: rowMajorStrides(shape),
		data:    append([]float64(nil), data...),
	}

	return d, nil
}

// Zeros creates a zero-initialized Dense with the given shape.
// Complexity: O(product(shape)).
func Zeros(shape ...int) (*Dense, error) {
	size := 1
	for _, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("tensor: Zeros(%v): %w", shape, ErrBadShape)
		}
		size *= n
	}

	return &Dense{
		shape:   append([]int(nil), shape...),
		strides: rowMajorStrides(shape),
		data:    make([]float64, size),
	}, nil
}

// FromRows builds a 2-D Dense from a slice of equally sized rows.
// Ragged input is rejected with ErrShapeMismatch.
// Complexity: O(rows*cols).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return Zeros(0, 0)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("tensor: FromRows: row %d has %d elements, want %d: %w",
				i, len(row), cols, ErrShapeMismatch)
		}
		data = append(data, row...)
	}

	return New([]int{len(rows), cols}, data)
}

// Scalar creates a zero-dimensional Dense holding a single value.
func Scalar(v float64) *Dense {
	return &Dense{shape: nil, strides: nil, data: []float64{v}}
}

// rowMajorStrides derives the flat-index step per axis for a row-major
// layout: the last axis is contiguous.
func rowMajorStrides(shape []int) []int {
	if len(shape) == 0 {
		return nil
	}
	strides := make([]int, len(shape))
	strides[len(shape)-1] = 1
	for i := len(shape) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}

	return strides
}

// Shape returns a copy of the per-axis lengths.
// Complexity: O(ndim).
func (d *Dense) Shape() []int {
	return append([]int(nil), d.shape...)
}

// NDim returns the number of axes.
func (d *Dense) NDim() int {
	return len(d.shape)
}

// Size returns the total number of elements.
func (d *Dense) Size() int {
	return len(d.data)
}

// Len returns the length of one axis, or ErrBadAxis.
func (d *Dense) Len(axis int) (int, error) {
	if axis < 0 || axis >= len(d.shape) {
		return 0, fmt.Errorf("tensor: Len(%d) of %d-d tensor: %w", axis, len(d.shape), ErrBadAxis)
	}

	return d.shape[axis], nil
}

// Data returns a copy of the flat backing storage in row-major order.
// Complexity: O(size).
func (d *Dense) Data() []float64 {
	return append([]float64(nil), d.data...)
}

// offsetOf computes the flat offset for a multi-index, validating rank and
// per-axis bounds.
// Complexity: O(ndim).
func (d *Dense) offsetOf(idx []int) (int, error) {
	if len(idx) != len(d.shape) {
		return 0, fmt.Errorf("tensor: got %d indices for %d-d tensor: %w",
			len(idx), len(d.shape), ErrBadIndexRank)
	}
	off := 0
	for ax, i := range idx {
		if i < 0 || i >= d.shape[ax] {
			return 0, fmt.Errorf("tensor: index %d on axis %d (length %d): %w",
				i, ax, d.shape[ax], ErrOutOfRange)
		}
		off += i * d.strides[ax]
	}

	return off, nil
}

// At retrieves the element at the given multi-index. A zero-dimensional
// tensor is read with no indices.
func (d *Dense) At(idx ...int) (float64, error) {
	off, err := d.offsetOf(idx)
	if err != nil {
		return 0, err
	}

	return d.data[off], nil
}

// Set assigns v at the given multi-index. The only mutating method.
func (d *Dense) Set(v float64, idx ...int) error {
	off, err := d.offsetOf(idx)
	if err != nil {
		return err
	}
	d.data[off] = v

	return nil
}

// Clone returns a deep copy of the tensor.
// Complexity: O(size) time and memory.
func (d *Dense) Clone() *Dense {
	return &Dense{
		shape:   append([]int(nil), d.shape...),
		strides: append([]int(nil), d.strides...),
		data:    append([]float64(nil), d.data...),
	}
}

// Reshape returns a new Dense viewing a copy of the same elements under a
// different shape; the total size must be preserved.
// Complexity: O(size).
func (d *Dense) Reshape(shape ...int) (*Dense, error) {
	size := 1
	for _, n := range shape {
		if n < 0 {
			return nil, fmt.Errorf("tensor: Reshape(%v): %w", shape, ErrBadShape)
		}
		size *= n
	}
	if size != len(d.data) {
		return nil, fmt.Errorf("tensor: Reshape(%v): size %d, want %d: %w",
			shape, size, len(d.data), ErrBadShape)
	}

	return &Dense{
		shape:   append([]int(nil), shape...),
		strides: rowMajorStrides(shape),
		data:    append([]float64(nil), d.data...),
	}, nil
}

// String implements fmt.Stringer for easy debugging.
func (d *Dense) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense%v", d.shape)
	if len(d.data) <= 16 {
		fmt.Fprintf(&b, "%v", d.data)
	} else {
		fmt.Fprintf(&b, "[%v … %v]", d.data[0], d.data[len(d.data)-1])
	}

	return b.String()
}
