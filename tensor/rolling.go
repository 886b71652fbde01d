// Package tensor: rolling-window statistics along one axis.
package tensor

import "fmt"

// RollingMax computes a centered moving maximum of width window along the
// given axis (a movmax equivalent) and returns a tensor of the same shape.
// Positions whose window would overhang an edge replicate the nearest full
// window's maximum. A negative axis counts from the last axis (-1 is the
// innermost one).
//
// Stage 1 (Validate): resolve axis, ensure 1 <= window <= Len(axis).
// Stage 2 (Execute): per lane, compute windowed maxima and clamp the window
// start at the edges.
// Complexity: O(size * window) time, O(size) memory.
func RollingMax(d *Dense, window, axis int) (*Dense, error) {
	ndim := len(d.shape)
	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		return nil, fmt.Errorf("tensor: RollingMax on axis %d of %d-d tensor: %w",
			axis, ndim, ErrBadAxis)
	}
	n := d.shape[axis]
	if window < 1 || window > n {
		return nil, fmt.Errorf("tensor: RollingMax window %d on axis of length %d: %w",
			window, n, ErrBadWindow)
	}

	outer, inner := 1, 1
	for _, s := range d.shape[:axis] {
		outer *= s
	}
	for _, s := range d.shape[axis+1:] {
		inner *= s
	}

	out := d.Clone()
	half := window / 2
	for o := 0; o < outer; o++ {
		for in := 0; in < inner; in++ {
			base := o*n*inner + in
			for i := 0; i < n; i++ {
				// Clamp the window start so edge positions reuse the
				// nearest fully populated window.
				start := i - half
				if start < 0 {
					start = 0
				}
				if start > n-window {
					start = n - window
				}
				m := d.data[base+start*inner]
				for k := 1; k < window; k++ {
					if v := d.data[base+(start+k)*inner]; v > m {
						m = v
					}
				}
				out.data[base+i*inner] = m
			}
		}
	}

	return out, nil
}
