// Package slicetree: selectors.
// A Selector describes WHICH positions to keep along the sliced axis, in
// one of three slice-like forms: a range with stride, an ordered index
// list, or a boolean mask. Selectors are resolved against each leaf's axis
// length independently, because different leaves may expose different
// lengths along their sliceable axis.
package slicetree

import (
	"fmt"
	"math"
)

// Selector is the sealed interface over the three selector forms:
// Range, Indices and Mask. Use Resolve to lower a selector to concrete
// gather positions for an axis of a given length.
type Selector interface {
	isSelector()
}

// Auto marks an unspecified Range bound: the start of the axis for Start,
// the end of the axis for Stop (swapped when Step is negative, exactly like
// an omitted bound in ordinary slice notation).
const Auto = math.MinInt

// Range selects a half-open interval [Start, Stop) with stride Step.
//
//   - Negative bounds count from the end of the axis.
//   - Out-of-range bounds clamp; an empty interval selects nothing.
//   - Step < 0 walks the axis backwards (so FullRange reversed by
//     Reversed() yields the axis in reverse order).
//   - Step == 0 is treated as 1, so a zero-valued literal with explicit
//     Start/Stop behaves like ordinary [start:stop] notation.
//
// Prefer the constructors; when building a literal, remember that an
// unset Stop of 0 selects nothing — use Auto for "up to the end".
type Range struct {
	Start, Stop, Step int
}

// Indices selects explicit positions: output order follows list order,
// duplicates are allowed, negative entries count from the end of the axis.
type Indices []int

// Mask selects the positions holding true, preserving axis order. Its
// length must equal the matched axis length at every leaf it is applied to.
type Mask []bool

func (Range) isSelector()   {}
func (Indices) isSelector() {}
func (Mask) isSelector()    {}

// NewRange builds [start:stop] with stride 1.
func NewRange(start, stop int) Range {
	return Range{Start: start, Stop: stop, Step: 1}
}

// NewStepRange builds [start:stop:step].
func NewStepRange(start, stop, step int) Range {
	return Range{Start: start, Stop: stop, Step: step}
}

// FullRange builds [:], the identity selector.
func FullRange() Range {
	return Range{Start: Auto, Stop: Auto, Step: 1}
}

// From builds [start:].
func From(start int) Range {
	return Range{Start: start, Stop: Auto, Step: 1}
}

// Until builds [:stop].
func Until(stop int) Range {
	return Range{Start: Auto, Stop: stop, Step: 1}
}

// Reversed builds [::-1], the axis in reverse order.
func Reversed() Range {
	return Range{Start: Auto, Stop: Auto, Step: -1}
}

// SelectorFor adapts loosely-typed keys into a Selector: the three selector
// forms pass through, []int becomes Indices, []bool becomes Mask. A bare
// integer is rejected with ErrInvalidSelector — a single position implies
// indexing semantics (picking an element and dropping the axis), which the
// engine deliberately does not provide.
func SelectorFor(key any) (Selector, error) {
	switch k := key.(type) {
	case Range:
		return k, nil
	case Indices:
		return k, nil
	case Mask:
		return k, nil
	case []int:
		return Indices(k), nil
	case []bool:
		return Mask(k), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil, fmt.Errorf("slicetree: got single position %v: %w", k, ErrInvalidSelector)
	default:
		return nil, fmt.Errorf("slicetree: got %T: %w", key, ErrInvalidSelector)
	}
}

// Resolve lowers a selector to the concrete, already-validated gather
// positions for an axis of length n. The result always lists in-range,
// non-negative positions in output order; gathers can consume it directly.
//
// Errors: ErrIndexOutOfRange for an unresolvable index-list entry,
// ErrMaskLength for a mask of the wrong length, ErrInvalidSelector for a
// nil selector.
func Resolve(sel Selector, n int) ([]int, error) {
	switch s := sel.(type) {
	case Range:
		return s.resolve(n), nil
	case Indices:
		out := make([]int, 0, len(s))
		for _, i := range s {
			j := i
			if j < 0 {
				j += n
			}
			if j < 0 || j >= n {
				return nil, fmt.Errorf("slicetree: index %d on axis of length %d: %w",
					i, n, ErrIndexOutOfRange)
			}
			out = append(out, j)
		}

		return out, nil
	case Mask:
		if len(s) != n {
			return nil, fmt.Errorf("slicetree: mask length %d, axis length %d: %w",
				len(s), n, ErrMaskLength)
		}
		var out []int
		for i, keep := range s {
			if keep {
				out = append(out, i)
			}
		}

		return out, nil
	default:
		return nil, fmt.Errorf("slicetree: got %T: %w", sel, ErrInvalidSelector)
	}
}

// resolve normalizes the range against an axis of length n using ordinary
// slice semantics: negative bounds count from the end, everything clamps,
// and a negative step defaults the bounds to the reverse walk.
func (r Range) resolve(n int) []int {
	step := r.Step
	if step == 0 {
		step = 1
	}

	var start, stop int
	if step > 0 {
		start = normBound(r.Start, n, 0)
		stop = normBound(r.Stop, n, n)
		if start < 0 {
			start = 0
		}
		if stop > n {
			stop = n
		}
		var out []int
		for i := start; i < stop; i += step {
			out = append(out, i)
		}

		return out
	}

	// Negative stride: defaults swap to (last element, before-first).
	start = normBound(r.Start, n, n-1)
	stop = normBound(r.Stop, n, -1)
	if start > n-1 {
		start = n - 1
	}
	if stop < -1 {
		stop = -1
	}
	var out []int
	for i := start; i > stop; i += step {
		out = append(out, i)
	}

	return out
}

// normBound maps one range bound onto the axis: Auto takes the default,
// negative values count from the end.
func normBound(b, n, auto int) int {
	if b == Auto {
		return auto
	}
	if b < 0 {
		return b + n
	}

	return b
}
