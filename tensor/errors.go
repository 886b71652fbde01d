// Package tensor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// tensor package. All operations return these sentinels (wrapped with
// context where essential) and tests check them via errors.Is. Panics are
// reserved for programmer errors in private helpers.
package tensor

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimension) or does not match the supplied backing data length.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that an index along some axis is outside its
	// valid bounds. Public indexers (At/Set/Take) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrBadAxis indicates that an axis number does not exist for the
	// tensor's dimensionality.
	ErrBadAxis = errors.New("tensor: axis out of range")

	// ErrShapeMismatch indicates incompatible shapes between operands,
	// e.g. ragged rows in FromRows or AllClose on different shapes.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrBadWindow is returned by RollingMax when the window size is not in
	// [1, Len(axis)].
	ErrBadWindow = errors.New("tensor: invalid window size")

	// ErrBadIndexRank indicates that At/Set received a number of indices
	// different from the tensor's dimensionality.
	ErrBadIndexRank = errors.New("tensor: wrong number of indices")
)
