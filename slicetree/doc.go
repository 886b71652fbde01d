// Package slicetree slices arbitrarily nested structures — maps, lists,
// typed slices and N-dimensional tensors — consistently along one logical
// axis, located per leaf by matching a caller-supplied length hint.
//
// 🚀 What is slicetree?
//
//	Given a nested value such as
//
//	    map[string]any{
//	        "a":      []float64{1, 2, 3, 4, 5},      // shape (5)
//	        "b":      dense2x5,                      // shape (2,5)
//	        "nested": map[string]any{"x": dense1x5}, // shape (1,5)
//	        "scalar": 42,
//	    }
//
//	a single call slices EVERY leaf along its axis of length 5:
//
//	    out, err := slicetree.Slice(data, slicetree.NewRange(1, 4), 5)
//
//	"a" becomes []float64{2, 3, 4}, "b" keeps its 2 rows but loses two
//	columns, "scalar" passes through untouched.
//
// ✨ Key features:
//   - three selector forms: Range ([start:stop:step], negative bounds,
//     reversal), Indices (fancy indexing, order and duplicates honored),
//     Mask (boolean compress, validated per leaf)
//   - strict axis inference: zero hint matches is ErrAxisNotFound,
//     several is ErrAxisAmbiguous — never a silent guess
//   - override rules: a (Predicate, Handler) pair claims whole subtrees by
//     structural Path and may call Context.Resume to slice their children
//   - bounded recursion (DefaultMaxDepth, WithMaxDepth) instead of
//     unbounded stack growth on pathological inputs
//   - purely functional: inputs are never mutated, results are rebuilt,
//     concurrent calls are safe by construction
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlslice/slicetree"
//
//	// keep positions 1..3 of every leaf whose axis has length 5
//	out, err := slicetree.Slice(data, slicetree.NewRange(1, 4), 5)
//
//	// reverse every leaf
//	out, err = slicetree.Slice(data, slicetree.Reversed(), 5)
//
//	// boolean compress with an override that nils one subtree
//	target := slicetree.NewPath().Key("treat_as_scalar")
//	out, err = slicetree.Slice(data,
//	    slicetree.Mask{false, true, true, true, false}, 5,
//	    slicetree.WithOverride(
//	        func(c slicetree.Context) bool { return c.Path.Equal(target) },
//	        func(c slicetree.Context) (any, error) { return nil, nil },
//	    ))
//
// Errors: ErrAxisNotFound, ErrAxisAmbiguous, ErrMaskLength,
// ErrUnsupportedNode, ErrInvalidSelector, ErrIndexOutOfRange, ErrBadHint,
// ErrDepthExceeded — all matched via errors.Is, all wrapped with the
// offending path.
//
// Complexity: O(total elements visited); each leaf's gather is linear in
// its result size.
package slicetree
