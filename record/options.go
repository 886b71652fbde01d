// Package record: functional configuration.
package record

import "github.com/katalvlaran/lvlslice/slicetree"

// Internal panic messages (no magic strings).
const (
	panicEmptyFieldName = "record: WithFieldFunc: field name must be non-empty"
	panicNilFieldFunc   = "record: WithFieldFunc: fn must be non-nil"
)

// FieldFunc is a custom per-field slicing function: it receives the field's
// current value and the call's selector, and returns the replacement value.
// It fully owns the field — tags are ignored for fields that have one.
type FieldFunc func(value any, sel slicetree.Selector) (any, error)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	fieldFuncs map[string]FieldFunc
}

// WithFieldFunc installs a custom slicing function for one exported field,
// addressed by its Go name. Panics on an empty name or nil fn; an unknown
// name surfaces as ErrUnknownField when Slice runs against the record.
func WithFieldFunc(name string, fn FieldFunc) Option {
	if name == "" {
		panic(panicEmptyFieldName)
	}
	if fn == nil {
		panic(panicNilFieldFunc)
	}

	return func(o *Options) {
		if o.fieldFuncs == nil {
			o.fieldFuncs = make(map[string]FieldFunc)
		}
		o.fieldFuncs[name] = fn
	}
}

// gatherOptions applies setters over the defaults.
func gatherOptions(opts []Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
