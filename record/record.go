// Package record: the field-wise slicer.
// Slice rebuilds a struct value field by field: scalars ride along,
// 1-D array fields delegate to the slicetree engine with their own length
// as the hint, multi-axis fields follow their declared axis, and tags or
// field funcs override everything else.
package record

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlslice/slicetree"
)

// fieldMode is the parsed form of a `slice:"…"` tag.
type fieldMode uint8

const (
	modeDefault fieldMode = iota // slice 1-D leaves / ArrayLike along the axis
	modeScalar                   // pass the field through unchanged
	modeCopy                     // deep-copy the field, never slice it
)

// fieldHint carries one field's parsed tag.
type fieldHint struct {
	mode fieldMode
	axis int // meaningful for modeDefault; 0 unless axis=N
}

// Slice returns a copy of rec with every exported field sliced by sel.
// rec may be a struct or a non-nil pointer to one; the result has the same
// form. The input is never mutated.
//
// Per-field behavior (see package doc for the tag grammar):
//   - scalars pass through unchanged;
//   - 1-D array fields ([]float64, []string, …) are sliced along axis 0
//     by the slicetree engine;
//   - ArrayLike fields are gathered along their declared axis (default 0),
//     with no hint scanning and therefore no ambiguity;
//   - `slice:"copy"` deep-copies, `slice:"scalar"` passes through;
//   - WithFieldFunc replaces default handling for the named field.
//
// Errors wrap the field name around the underlying sentinel.
func Slice[T any](rec T, sel slicetree.Selector, opts ...Option) (T, error) {
	var zero T
	if sel == nil {
		return zero, fmt.Errorf("record: nil selector: %w", slicetree.ErrInvalidSelector)
	}
	o := gatherOptions(opts)

	rv := reflect.ValueOf(rec)
	isPtr := rv.Kind() == reflect.Pointer
	if isPtr {
		if rv.IsNil() {
			return zero, fmt.Errorf("record: nil pointer: %w", ErrNotStruct)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, fmt.Errorf("record: %T: %w", rec, ErrNotStruct)
	}
	rt := rv.Type()

	for name := range o.fieldFuncs {
		if _, ok := rt.FieldByName(name); !ok {
			return zero, fmt.Errorf("record: field func %q: %w", name, ErrUnknownField)
		}
	}

	out := reflect.New(rt).Elem()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			return zero, fmt.Errorf("record: field %q: %w", f.Name, ErrUnexportedField)
		}
		hint, err := parseTag(f)
		if err != nil {
			return zero, fmt.Errorf("record: field %q: %w", f.Name, err)
		}

		value := rv.Field(i).Interface()
		var sliced any
		if fn, ok := o.fieldFuncs[f.Name]; ok {
			sliced, err = fn(value, sel)
		} else {
			sliced, err = sliceField(value, sel, hint)
		}
		if err != nil {
			return zero, fmt.Errorf("record: field %q: %w", f.Name, err)
		}

		if sliced == nil {
			continue // leave the zero value in place
		}
		sv := reflect.ValueOf(sliced)
		if !sv.Type().AssignableTo(f.Type) {
			return zero, fmt.Errorf("record: field %q: cannot store %T in %s: %w",
				f.Name, sliced, f.Type, ErrFieldType)
		}
		out.Field(i).Set(sv)
	}

	if isPtr {
		return out.Addr().Interface().(T), nil
	}

	return out.Interface().(T), nil
}

// SliceKey is the loosely-typed entry point: the key is adapted through
// slicetree.SelectorFor, so a bare integer position is rejected with
// slicetree.ErrInvalidSelector before any field is touched.
func SliceKey[T any](rec T, key any, opts ...Option) (T, error) {
	sel, err := slicetree.SelectorFor(key)
	if err != nil {
		var zero T

		return zero, err
	}

	return Slice(rec, sel, opts...)
}

// parseTag reads the `slice:"…"` tag into a fieldHint.
func parseTag(f reflect.StructField) (fieldHint, error) {
	tag := f.Tag.Get("slice")
	switch {
	case tag == "":
		return fieldHint{mode: modeDefault}, nil
	case tag == "scalar":
		return fieldHint{mode: modeScalar}, nil
	case tag == "copy":
		return fieldHint{mode: modeCopy}, nil
	case strings.HasPrefix(tag, "axis="):
		axis, err := strconv.Atoi(strings.TrimPrefix(tag, "axis="))
		if err != nil || axis < 0 {
			return fieldHint{}, fmt.Errorf("axis %q: %w", tag, ErrBadTag)
		}

		return fieldHint{mode: modeDefault, axis: axis}, nil
	default:
		return fieldHint{}, fmt.Errorf("tag %q: %w", tag, ErrBadTag)
	}
}

// sliceField applies default handling to one field value.
func sliceField(value any, sel slicetree.Selector, hint fieldHint) (any, error) {
	switch hint.mode {
	case modeScalar:
		return value, nil
	case modeCopy:
		return deepCopy(value), nil
	}

	switch slicetree.Classify(value) {
	case slicetree.KindScalar:
		return value, nil

	case slicetree.KindArray:
		if arr, ok := value.(slicetree.ArrayLike); ok {
			return takeDeclaredAxis(arr, sel, hint.axis)
		}
		if hint.axis != 0 {
			return nil, fmt.Errorf("axis=%d is invalid for a 1-D field: %w", hint.axis, ErrBadTag)
		}
		// Delegate to the engine with the field's own length as the hint.
		return slicetree.Slice(value, sel, reflect.ValueOf(value).Len())

	default:
		return nil, fmt.Errorf("%s field: %w", slicetree.Classify(value), ErrUnsliceable)
	}
}

// takeDeclaredAxis gathers an ArrayLike field along its declared axis —
// the declarative fast path that never scans for hint matches.
func takeDeclaredAxis(arr slicetree.ArrayLike, sel slicetree.Selector, axis int) (any, error) {
	shape := arr.Shape()
	if len(shape) == 0 {
		return arr, nil // zero-dimensional: opaque scalar
	}
	if axis >= len(shape) {
		return nil, fmt.Errorf("axis=%d on shape %v: %w", axis, shape, ErrBadTag)
	}
	idxs, err := slicetree.Resolve(sel, shape[axis])
	if err != nil {
		return nil, err
	}

	return arr.TakeAxis(axis, idxs)
}

// deepCopy copies a value for `slice:"copy"` fields: a Clone method wins,
// slices/arrays/maps are copied recursively, everything else (scalars,
// opaque handles) is returned as-is.
func deepCopy(value any) any {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	if m := rv.MethodByName("Clone"); m.IsValid() &&
		m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
		return m.Call(nil)[0].Interface()
	}

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return value
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if ev := deepCopy(rv.Index(i).Interface()); ev != nil {
				out.Index(i).Set(reflect.ValueOf(ev))
			}
		}

		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return value
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			ev := reflect.Zero(rv.Type().Elem())
			if c := deepCopy(iter.Value().Interface()); c != nil {
				ev = reflect.ValueOf(c)
			}
			out.SetMapIndex(iter.Key(), ev)
		}

		return out.Interface()
	default:
		return value
	}
}
