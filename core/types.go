// SPDX-License-Identifier: MIT
// Package core: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the core
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No function panics on user input.

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNonPositiveSize is returned when a graph is requested with n <= 0.
	ErrNonPositiveSize = errors.New("core: size must be > 0")

	// ErrOutOfRange indicates that a city index is outside [0..n-1].
	// Public indexers (Distance/SetDistance) MUST return this, not panic.
	ErrOutOfRange = errors.New("core: city index out of range")

	// ErrDimensionMismatch indicates an input whose shape does not match the
	// instance (ragged matrix rows, tour of the wrong length, and so on).
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrAsymmetry signals that a distance matrix expected to be symmetric
	// violated symmetry within the structural tolerance.
	ErrAsymmetry = errors.New("core: distance matrix is not symmetric")

	// ErrNonZeroDiagonal signals a self-distance d(i,i) outside the zero
	// tolerance.
	ErrNonZeroDiagonal = errors.New("core: diagonal not zero")

	// ErrNegativeDistance signals a negative distance entry.
	ErrNegativeDistance = errors.New("core: negative distance")

	// ErrNaNInf signals a NaN or ±Inf value where finite distances are
	// required.
	ErrNaNInf = errors.New("core: NaN or Inf distance")

	// ErrNilGraph indicates that a nil *Graph was passed where an instance
	// is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrInvalidTour indicates a path that is not a Hamiltonian cycle over
	// the instance: wrong length, duplicate city, or broken closure.
	ErrInvalidTour = errors.New("core: invalid tour")
)
