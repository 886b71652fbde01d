// Package tensor provides N-dimensional dense arrays over float64 values,
// the array-leaf type consumed by the slicetree engine.
//
// 🚀 What is tensor?
//
//	A minimal, dependency-free dense array:
//	  • row-major flat storage (cache friendly, single allocation)
//	  • explicit shape and strides, any number of axes (including zero)
//	  • axis-wise gather (Take) — the primitive every selector lowers to
//	  • numeric helpers: AllClose comparison, RollingMax (movmax)
//
// ✨ Key properties:
//   - Immutable by convention: Take, Reshape and Clone always return a
//     fresh Dense; only Set writes in place.
//   - Strict validation: every constructor and accessor returns a package
//     sentinel error (ErrBadShape, ErrOutOfRange, …) instead of panicking.
//   - Zero-dimensional tensors are legal and hold exactly one element —
//     the slicetree engine treats them as scalars.
//
// ⚙️ Usage:
//
//	d, err := tensor.New([]int{2, 5}, []float64{
//	    10, 20, 30, 40, 50,
//	    60, 70, 80, 90, 100,
//	})
//	sub, err := d.Take(1, []int{1, 2, 3}) // shape (2,3)
//
// Complexity: Take is O(size of result), At/Set are O(ndim).
package tensor
