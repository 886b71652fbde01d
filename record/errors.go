// Package record: sentinel error set. Field-scoped failures are wrapped as
// fmt.Errorf("record: field %q: %w", ...) so callers both see the field
// and can still match the underlying sentinel (including slicetree and
// tensor sentinels surfaced through delegation) via errors.Is.
package record

import "errors"

var (
	// ErrNotStruct — Slice was given something other than a struct or a
	// non-nil pointer to one.
	ErrNotStruct = errors.New("record: value is not a struct")

	// ErrBadTag — a `slice:"…"` tag is malformed or names an option that
	// does not apply to the field's type (e.g. axis=2 on a 1-D field).
	ErrBadTag = errors.New("record: invalid slice tag")

	// ErrUnknownField — WithFieldFunc names a field the struct lacks.
	ErrUnknownField = errors.New("record: unknown field")

	// ErrUnexportedField — the struct carries an unexported field, which a
	// rebuilt record could only silently zero; rejected instead.
	ErrUnexportedField = errors.New("record: unexported field")

	// ErrUnsliceable — a field is a nested container (map, sequence) that
	// default handling cannot slice; tag it or give it a field func.
	ErrUnsliceable = errors.New("record: field is not sliceable by default")

	// ErrFieldType — a field func or gather produced a value that does not
	// fit back into the field.
	ErrFieldType = errors.New("record: sliced value does not fit the field")
)
