// Package record slices structured records: every exported field of a
// struct is sliced with one selector, so a "struct of arrays" behaves like
// one logical sequence.
//
// 🚀 What is record?
//
//	Given a record whose array fields share one logical axis:
//
//	    type Weather struct {
//	        City         string                         // scalar, passes through
//	        Temperatures []float64                      // sliced along axis 0
//	        Sitewise     *tensor.Dense `slice:"axis=1"` // shape (sites, T)
//	        SiteImage    *tensor.Dense `slice:"copy"`   // deep-copied, never sliced
//	    }
//
//	one call windows every field consistently:
//
//	    sub, err := record.Slice(w, slicetree.NewRange(1, 4))
//
// ✨ Key features:
//   - declarative per-field hints in the `slice:"…"` struct tag:
//     axis=N (slice an N-dimensional field along a declared axis, bypassing
//     hint-driven axis inference entirely), copy, scalar
//   - custom per-field functions via WithFieldFunc for anything the tags
//     cannot express (sliceable strings, nested containers, …)
//   - the same slicing-vs-indexing guard as the engine: SliceKey rejects a
//     bare integer with slicetree.ErrInvalidSelector
//   - pure: the input record is never mutated; the result is a fresh value
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/lvlslice/record"
//	    "github.com/katalvlaran/lvlslice/slicetree"
//	)
//
//	sub, err := record.Slice(w, slicetree.Indices{1, -2})
//	sub, err = record.Slice(w, slicetree.Mask{false, true, true, false})
//	sub, err = record.SliceKey(w, []int{1, 2}) // loose keys are adapted
//
// 1-D fields delegate to the slicetree engine with their own length as the
// hint; multi-dimensional fields require the axis=N tag (or a field func),
// so ambiguity never arises silently.
package record
