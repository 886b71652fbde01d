// Package slicetree: the recursive engine. Slice walks an arbitrary nested
// value, and for every array leaf finds the single axis whose length equals
// the hint, applies the selector along it, and rebuilds the surrounding
// containers unchanged. Traversal is a pure function of (value, selector,
// hint, options): nothing is mutated in place, every container in the
// result is freshly built, and the engine performs no I/O and no logging.
package slicetree

import (
	"fmt"
	"reflect"
)

// Context is the transient per-node record passed to override rules. It is
// created fresh at each traversal step and discarded after the step
// produces its result; it carries no persistent identity.
type Context struct {
	// Path locates the node from the traversal root.
	Path Path

	// Node is the value under consideration.
	Node any

	// Selector and Hint are the top-level call's, threaded unchanged.
	Selector Selector
	Hint     int

	eng   *engine
	depth int
}

// Resume re-enters the engine for a value, usually a child of the claimed
// subtree, with the same selector, hint, override rule and remaining depth
// budget. The supplied path should be the value's true structural location
// (ctx.Path extended accordingly) so diagnostics and nested override
// lookups stay accurate. Resuming ctx.Node itself under ctx.Path would
// re-fire the same predicate and recurse forever — resume on children.
func (c Context) Resume(value any, path Path) (any, error) {
	return c.eng.walk(value, path, c.depth+1)
}

// engine carries the resolved per-call state through the traversal.
type engine struct {
	opts Options
	sel  Selector
	hint int
}

// Slice applies the selector to every array leaf of a nested value, using
// hint (the expected sliceable-axis length) to pick that leaf's axis, and
// returns a rebuilt structure of the same shape class.
//
//   - Mappings (string-keyed) are rebuilt value-wise with identical keys.
//   - Sequences are rebuilt element-wise in order.
//   - Array leaves are sliced along their single hint-matching axis:
//     zero matching axes is ErrAxisNotFound (unless the scalar-like
//     exception applies), several is ErrAxisAmbiguous.
//   - Scalar leaves (strings included) pass through unchanged.
//   - Anything unclassifiable is ErrUnsupportedNode.
//
// An override rule installed via WithOverride intercepts any node before
// default handling; see Handler. All errors are wrapped with the offending
// path and match their sentinel via errors.Is.
func Slice(value any, sel Selector, hint int, opts ...Option) (any, error) {
	if sel == nil {
		return nil, fmt.Errorf("slicetree: nil selector: %w", ErrInvalidSelector)
	}
	if hint < 0 {
		return nil, fmt.Errorf("slicetree: hint %d: %w", hint, ErrBadHint)
	}

	o := gatherOptions(opts)
	e := &engine{opts: o, sel: sel, hint: hint}

	return e.walk(value, o.startPath, 0)
}

// SliceKey is the loosely-typed entry point: the key is adapted through
// SelectorFor, so a bare integer position is rejected with
// ErrInvalidSelector before any traversal starts.
func SliceKey(value, key any, hint int, opts ...Option) (any, error) {
	sel, err := SelectorFor(key)
	if err != nil {
		return nil, err
	}

	return Slice(value, sel, hint, opts...)
}

// walk is the recursive core: override check first, then classified
// dispatch.
func (e *engine) walk(v any, p Path, depth int) (any, error) {
	if depth > e.opts.maxDepth {
		return nil, fmt.Errorf("slicetree: at %s (depth %d): %w", p, depth, ErrDepthExceeded)
	}

	if e.opts.pred != nil {
		ctx := Context{Path: p, Node: v, Selector: e.sel, Hint: e.hint, eng: e, depth: depth}
		if e.opts.pred(ctx) {
			// The handler fully owns this subtree; its result is verbatim.
			return e.opts.handler(ctx)
		}
	}

	switch Classify(v) {
	case KindScalar:
		return v, nil
	case KindMapping:
		return e.walkMapping(v, p, depth)
	case KindSequence:
		return e.walkSequence(v, p, depth)
	case KindArray:
		return e.sliceLeaf(v, p)
	default:
		return nil, fmt.Errorf("slicetree: at %s: cannot classify %T: %w", p, v, ErrUnsupportedNode)
	}
}

// walkMapping rebuilds a string-keyed map value-wise. map[string]any takes
// the direct path; other string-keyed map types go through reflection with
// an assignability check, so a handler substituting an incompatible value
// fails loudly rather than panicking inside the runtime.
func (e *engine) walkMapping(v any, p Path, depth int) (any, error) {
	if m, ok := v.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, val := range m {
			sliced, err := e.walk(val, p.Key(k), depth+1)
			if err != nil {
				return nil, err
			}
			out[k] = sliced
		}

		return out, nil
	}

	rv := reflect.ValueOf(v)
	elemT := rv.Type().Elem()
	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		kp := p.Key(iter.Key().String())
		sliced, err := e.walk(iter.Value().Interface(), kp, depth+1)
		if err != nil {
			return nil, err
		}
		sv, err := conform(sliced, elemT, kp)
		if err != nil {
			return nil, err
		}
		out.SetMapIndex(iter.Key(), sv)
	}

	return out.Interface(), nil
}

// walkSequence rebuilds a list-like container element-wise, preserving
// order and length.
func (e *engine) walkSequence(v any, p Path, depth int) (any, error) {
	if s, ok := v.([]any); ok {
		out := make([]any, len(s))
		for i, el := range s {
			sliced, err := e.walk(el, p.Index(i), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = sliced
		}

		return out, nil
	}

	rv := reflect.ValueOf(v)
	n := rv.Len()
	elemT := rv.Type().Elem()

	var out reflect.Value
	if rv.Kind() == reflect.Array {
		out = reflect.New(rv.Type()).Elem()
	} else {
		out = reflect.MakeSlice(rv.Type(), n, n)
	}
	for i := 0; i < n; i++ {
		ip := p.Index(i)
		sliced, err := e.walk(rv.Index(i).Interface(), ip, depth+1)
		if err != nil {
			return nil, err
		}
		sv, err := conform(sliced, elemT, ip)
		if err != nil {
			return nil, err
		}
		out.Index(i).Set(sv)
	}

	return out.Interface(), nil
}

// sliceLeaf slices one array leaf along its single hint-matching axis.
func (e *engine) sliceLeaf(v any, p Path) (any, error) {
	if arr, ok := v.(ArrayLike); ok {
		return e.sliceArrayLike(arr, p)
	}

	// Reflect-backed 1-D leaf: a typed scalar slice or an all-scalar []any.
	rv := reflect.ValueOf(v)
	n := rv.Len()
	if n != e.hint {
		if !e.opts.strictLeaves && n <= 1 {
			return v, nil // scalar-like: length-0/1 leaves pass through
		}

		return nil, fmt.Errorf("slicetree: at %s: shape [%d] has no axis of length %d: %w",
			p, n, e.hint, ErrAxisNotFound)
	}

	idxs, err := Resolve(e.sel, n)
	if err != nil {
		return nil, fmt.Errorf("slicetree: at %s: %w", p, err)
	}
	out := reflect.MakeSlice(sliceTypeOf(rv.Type()), len(idxs), len(idxs))
	for k, i := range idxs {
		out.Index(k).Set(rv.Index(i))
	}

	return out.Interface(), nil
}

// sliceArrayLike handles leaves with explicit multi-axis shape.
func (e *engine) sliceArrayLike(arr ArrayLike, p Path) (any, error) {
	shape := arr.Shape()
	if len(shape) == 0 {
		return arr, nil // zero-dimensional: treat as scalar
	}

	var candidates []int
	for ax, l := range shape {
		if l == e.hint {
			candidates = append(candidates, ax)
		}
	}

	switch len(candidates) {
	case 0:
		if !e.opts.strictLeaves && len(shape) == 1 && shape[0] <= 1 {
			return arr, nil // scalar-like: 1-D length-0/1 leaves pass through
		}

		return nil, fmt.Errorf("slicetree: at %s: shape %v has no axis of length %d: %w",
			p, shape, e.hint, ErrAxisNotFound)
	case 1:
		// fall through to the gather below
	default:
		return nil, fmt.Errorf("slicetree: at %s: shape %v: axes %v all have length %d: %w",
			p, shape, candidates, e.hint, ErrAxisAmbiguous)
	}

	axis := candidates[0]
	idxs, err := Resolve(e.sel, shape[axis])
	if err != nil {
		return nil, fmt.Errorf("slicetree: at %s: %w", p, err)
	}
	out, err := arr.TakeAxis(axis, idxs)
	if err != nil {
		return nil, fmt.Errorf("slicetree: at %s: %w", p, err)
	}

	return out, nil
}

// sliceTypeOf maps fixed-size array types to their slice counterpart, so a
// sliced [5]int leaf comes back as []int of the selected length.
func sliceTypeOf(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Array {
		return reflect.SliceOf(t.Elem())
	}

	return t
}

// conform validates that a recursion result can be stored back into a
// typed container slot; nil results become the slot's zero value when the
// slot can hold one.
func conform(sliced any, want reflect.Type, p Path) (reflect.Value, error) {
	if sliced == nil {
		switch want.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(want), nil
		default:
			return reflect.Value{}, fmt.Errorf("slicetree: at %s: cannot store nil in %s: %w",
				p, want, ErrUnsupportedNode)
		}
	}
	rv := reflect.ValueOf(sliced)
	if !rv.Type().AssignableTo(want) {
		return reflect.Value{}, fmt.Errorf("slicetree: at %s: cannot store %T in %s: %w",
			p, sliced, want, ErrUnsupportedNode)
	}

	return rv, nil
}
