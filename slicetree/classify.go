// Package slicetree: node classification.
// Traversal never duck-types on the fly: every value is first classified
// into exactly one NodeKind by a single closed function, and the engine
// dispatches on the tag. Anything outside the closed set is Unsupported
// and fails loudly instead of silently passing through.
package slicetree

import "reflect"

// ArrayLike is the contract a multi-dimensional array leaf must satisfy to
// be sliceable by the engine: report its shape, and gather already-resolved
// positions along one axis. tensor.Dense implements it; any other array
// representation can plug in the same way.
type ArrayLike interface {
	Shape() []int
	TakeAxis(axis int, indices []int) (any, error)
}

// NodeKind is the closed classification of traversal nodes.
type NodeKind uint8

const (
	// KindScalar — opaque leaf, passed through unchanged (strings, numbers,
	// booleans, nil).
	KindScalar NodeKind = iota

	// KindMapping — string-keyed map; values are recursed, keys preserved.
	KindMapping

	// KindSequence — list-like container whose elements are themselves
	// nodes; recursed element-wise in order.
	KindSequence

	// KindArray — array leaf with a shape; exactly one axis is sliced.
	KindArray

	// KindUnsupported — everything else; traversal fails with
	// ErrUnsupportedNode.
	KindUnsupported
)

// String names the kind for diagnostics.
func (k NodeKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindArray:
		return "array"
	default:
		return "unsupported"
	}
}

// arrayLikeType is cached for element-type checks on slices of arrays.
var arrayLikeType = reflect.TypeOf((*ArrayLike)(nil)).Elem()

// Classify places a value into exactly one NodeKind. The rules, in order:
//
//  1. nil and plain scalars (bool, integers, floats, complex, string) are
//     scalar leaves — strings deliberately included.
//  2. Any ArrayLike implementation is an array leaf.
//  3. String-keyed maps are mappings; maps with other key types are
//     unsupported.
//  4. Slices and arrays split on their element type: scalar elements make a
//     1-D array leaf; container or ArrayLike elements make a sequence; a
//     []any makes an array leaf only when every element is a scalar
//     (so JSON-decoded numeric rows slice), otherwise a sequence.
//  5. Everything else is unsupported.
func Classify(v any) NodeKind {
	if v == nil {
		return KindScalar
	}
	if _, ok := v.(ArrayLike); ok {
		return KindArray
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return KindScalar

	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindMapping
		}

		return KindUnsupported

	case reflect.Slice, reflect.Array:
		return classifySequence(rv)

	default:
		return KindUnsupported
	}
}

// classifySequence decides between a 1-D array leaf and a recursable
// sequence for slice/array values.
func classifySequence(rv reflect.Value) NodeKind {
	elem := rv.Type().Elem()

	if isScalarKind(elem.Kind()) {
		return KindArray // e.g. []float64, []int, []string
	}
	if elem.Implements(arrayLikeType) {
		return KindSequence // e.g. []*tensor.Dense
	}

	switch elem.Kind() {
	case reflect.Interface:
		// []any: a leaf only when every element is a scalar, so that
		// JSON-decoded rows like []any{1, 2, 3, 4, 5} slice as arrays
		// while mixed containers recurse element-wise.
		for i := 0; i < rv.Len(); i++ {
			if Classify(rv.Index(i).Interface()) != KindScalar {
				return KindSequence
			}
		}

		return KindArray

	case reflect.Slice, reflect.Array, reflect.Map:
		return KindSequence

	default:
		return KindUnsupported
	}
}

// isScalarKind reports whether a reflect.Kind is a plain scalar.
func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}
