// Package slicetree: functional configuration for the traversal.
// Options follow the usual shape: documented Default* constants as the
// single source of truth, an unexported Options state, WithX constructors
// that panic only on nonsensical values (programmer error), and an
// internal gatherOptions helper that applies them over the defaults.
package slicetree

// DefaultMaxDepth bounds the recursion of a single Slice call. Traversal
// depth equals the nesting depth of the input, so 512 comfortably covers
// real data while keeping pathological self-feeding inputs from growing the
// stack without bound. Override with WithMaxDepth.
const DefaultMaxDepth = 512

// Internal panic messages (no magic strings).
const (
	panicNilPredicate = "slicetree: WithOverride: predicate must be non-nil"
	panicNilHandler   = "slicetree: WithOverride: handler must be non-nil"
	panicBadMaxDepth  = "slicetree: WithMaxDepth: depth must be > 0"
)

// Predicate decides whether the paired Handler must fully own the subtree
// at the context's path, skipping default recursion for it.
type Predicate func(Context) bool

// Handler produces the replacement value for a subtree claimed by its
// Predicate. The returned value is used verbatim; a handler that wants
// default slicing for parts of its subtree calls Context.Resume on them.
type Handler func(Context) (any, error)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is unexported state: public entry points accept ...Option.
type Options struct {
	maxDepth     int       // > 0; DefaultMaxDepth
	strictLeaves bool      // disable the length-0/1 scalar-like exception
	pred         Predicate // nil means no override rule
	handler      Handler   // non-nil iff pred is non-nil
	startPath    Path      // root unless re-entered from a handler
}

// WithOverride installs the override rule: pred is evaluated at every node
// before default handling; when it returns true, handler's result replaces
// the whole subtree. Panics if either function is nil.
func WithOverride(pred Predicate, handler Handler) Option {
	if pred == nil {
		panic(panicNilPredicate)
	}
	if handler == nil {
		panic(panicNilHandler)
	}

	return func(o *Options) {
		o.pred = pred
		o.handler = handler
	}
}

// WithMaxDepth bounds the traversal depth. Panics when depth <= 0.
func WithMaxDepth(depth int) Option {
	if depth <= 0 {
		panic(panicBadMaxDepth)
	}

	return func(o *Options) { o.maxDepth = depth }
}

// WithStrictLeaves disables the scalar-like exception: 1-D leaves of
// length 0 or 1 that match no axis then fail with ErrAxisNotFound like any
// other leaf, instead of passing through unchanged.
func WithStrictLeaves() Option {
	return func(o *Options) { o.strictLeaves = true }
}

// WithPath sets the starting path of the traversal. Handlers re-entering
// the engine for a nested value use it so error messages and nested
// override lookups see the true structural location.
func WithPath(p Path) Option {
	return func(o *Options) { o.startPath = p }
}

// gatherOptions applies setters over the documented defaults.
func gatherOptions(opts []Option) Options {
	o := Options{maxDepth: DefaultMaxDepth}
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
