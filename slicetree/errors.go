// Package slicetree: sentinel error set.
// Every message is prefixed with "slicetree: ..." for consistency. These
// sentinels are never returned bare from the traversal — the engine wraps
// them with the offending path (and shape/length context where it matters)
// via fmt.Errorf("...: %w", ...), so callers match with errors.Is and still
// see where in the tree the failure happened.
package slicetree

import "errors"

var (
	// ErrAxisNotFound — no axis of an array leaf has length equal to the
	// hint (and the leaf does not qualify for the scalar-like exception).
	ErrAxisNotFound = errors.New("slicetree: no axis matches the hint")

	// ErrAxisAmbiguous — more than one axis of an array leaf matches the
	// hint; the engine refuses to guess.
	ErrAxisAmbiguous = errors.New("slicetree: multiple axes match the hint")

	// ErrMaskLength — a boolean mask's length differs from the matched axis
	// length at a leaf.
	ErrMaskLength = errors.New("slicetree: mask length does not match axis length")

	// ErrUnsupportedNode — traversal met a value it cannot classify as
	// mapping, sequence, array leaf or scalar. Failing loudly here keeps
	// misclassification bugs from masquerading as pass-through.
	ErrUnsupportedNode = errors.New("slicetree: unsupported node type")

	// ErrInvalidSelector — the caller supplied something that is not a
	// slice-like selector (most commonly a bare integer, which implies
	// indexing semantics rather than slicing).
	ErrInvalidSelector = errors.New("slicetree: selector must be slice-like, not an index")

	// ErrIndexOutOfRange — an index-list selector entry falls outside the
	// matched axis after negative-index resolution.
	ErrIndexOutOfRange = errors.New("slicetree: selector index out of range")

	// ErrBadHint — the hint is negative.
	ErrBadHint = errors.New("slicetree: hint must be non-negative")

	// ErrDepthExceeded — the input nests deeper than the configured
	// maximum (DefaultMaxDepth unless WithMaxDepth says otherwise).
	ErrDepthExceeded = errors.New("slicetree: maximum traversal depth exceeded")
)
