// Package slicetree: structural paths.
// A Path identifies a node's location from the traversal root as an ordered
// sequence of steps (mapping key or sequence index). Paths are pure lookup
// keys for override rules: appending returns a new, longer path and never
// mutates the receiver, so a Path captured by a predicate stays valid while
// the traversal moves on.
package slicetree

import (
	"fmt"
	"strings"
)

// stepKind discriminates the two step forms.
type stepKind uint8

const (
	stepKey stepKind = iota
	stepIndex
)

// Step is one traversal step: either a mapping key or a sequence index.
type Step struct {
	kind  stepKind
	key   string
	index int
}

// KeyStep builds a mapping-key step.
func KeyStep(key string) Step {
	return Step{kind: stepKey, key: key}
}

// IndexStep builds a sequence-index step.
func IndexStep(i int) Step {
	return Step{kind: stepIndex, index: i}
}

// Key returns the mapping key and true when the step is a key step.
func (s Step) Key() (string, bool) {
	return s.key, s.kind == stepKey
}

// Index returns the sequence index and true when the step is an index step.
func (s Step) Index() (int, bool) {
	return s.index, s.kind == stepIndex
}

// String renders a single step the way Path.String does.
func (s Step) String() string {
	if s.kind == stepKey {
		return s.key
	}

	return fmt.Sprintf("%d", s.index)
}

// Path is an immutable sequence of steps. The zero value is the root path.
type Path struct {
	steps []Step
}

// NewPath returns the root (empty) path.
func NewPath() Path {
	return Path{}
}

// Key returns a new path extended by a mapping key.
// The receiver is never modified.
func (p Path) Key(key string) Path {
	return p.append(KeyStep(key))
}

// Index returns a new path extended by a sequence index.
// The receiver is never modified.
func (p Path) Index(i int) Path {
	return p.append(IndexStep(i))
}

// append copies the step slice so sibling extensions cannot share storage.
func (p Path) append(s Step) Path {
	steps := make([]Step, len(p.steps), len(p.steps)+1)
	copy(steps, p.steps)

	return Path{steps: append(steps, s)}
}

// Len returns the number of steps.
func (p Path) Len() int {
	return len(p.steps)
}

// IsRoot reports whether the path is empty.
func (p Path) IsRoot() bool {
	return len(p.steps) == 0
}

// Steps returns a copy of the underlying steps.
func (p Path) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Equal reports step-wise equality: two paths are equal iff their step
// sequences are equal.
func (p Path) Equal(q Path) bool {
	if len(p.steps) != len(q.steps) {
		return false
	}
	for i := range p.steps {
		if p.steps[i] != q.steps[i] {
			return false
		}
	}

	return true
}

// String renders "/key/0/key" style paths; the root path renders as "/".
func (p Path) String() string {
	if len(p.steps) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range p.steps {
		b.WriteByte('/')
		b.WriteString(s.String())
	}

	return b.String()
}
