// Package lvlslice is your toolbox for slicing deeply nested data — from
// raw tensors to heterogeneous trees of maps, lists and records — with a
// single selector applied consistently to every sliceable leaf.
//
// 🚀 What is lvlslice?
//
//	A small, pure-Go library that brings together:
//		• slicetree — the recursive slice engine: walks any nested value,
//		  infers the sliceable axis of each leaf from a length hint, and
//		  rebuilds the whole structure with every leaf sliced consistently
//		• tensor — N-dimensional dense arrays (row-major, flat storage)
//		  with axis-wise gather and numeric helpers (RollingMax)
//		• record — declarative struct slicing: every exported field of a
//		  record sliced with one selector, steered by `slice:"…"` tags
//
// ✨ Why choose lvlslice?
//
//   - Predictable – ambiguity is an error, never a silent guess
//   - Pure – no I/O, no logging, no mutation; every container is rebuilt
//   - Extensible – path-keyed override rules intercept traversal anywhere
//   - Pure Go – no cgo, no hidden deps beyond the test stack
//
// Under the hood, everything is organized under three subpackages:
//
//	slicetree/ — recursive slice engine: selectors, paths, overrides
//	tensor/    — N-dimensional dense arrays and numeric helpers
//	record/    — struct-level slicing with per-field hints
//
// Quick example:
//
//	data := map[string]any{
//	    "a":      []float64{1, 2, 3, 4, 5},
//	    "scalar": 42,
//	}
//	out, err := slicetree.Slice(data, slicetree.NewRange(1, 4), 5)
//	// out = map[string]any{"a": []float64{2, 3, 4}, "scalar": 42}
//
// See each subpackage's doc.go for details and examples/ for runnable
// scenarios.
package lvlslice
