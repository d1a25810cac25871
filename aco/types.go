// SPDX-License-Identifier: MIT
// Package aco: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and shared sentinel
// values used across the aco package. All operations MUST return these
// sentinels and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions.

package aco

import "errors"

// NoCity is the sentinel city index returned by selection when no
// unvisited city remains.
const NoCity = -1

// ERROR PRIORITY (documented, enforced in tests):
// nil collaborators -> configuration bounds -> shape/index -> deposit shape.

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed where a
	// problem instance is required.
	ErrNilGraph = errors.New("aco: graph is nil")

	// ErrNoPheromoneModel indicates a probabilistic operation was invoked
	// on an Ant constructed without a pheromone model.
	ErrNoPheromoneModel = errors.New("aco: pheromone model required")

	// ErrNonPositiveSize is returned when a pheromone or delta matrix is
	// requested with size <= 0.
	ErrNonPositiveSize = errors.New("aco: size must be > 0")

	// ErrOutOfRange indicates a city index outside [0..n-1].
	ErrOutOfRange = errors.New("aco: city index out of range")

	// ErrDimensionMismatch indicates incompatible matrix orders, e.g.
	// merging a delta buffer of a different size than the field.
	ErrDimensionMismatch = errors.New("aco: dimension mismatch")

	// ErrInvalidEvaporationRate is returned when rho is outside [0, 1].
	ErrInvalidEvaporationRate = errors.New("aco: evaporation rate outside [0,1]")

	// ErrTourTooShort is returned when a deposit path holds fewer than two
	// cities.
	ErrTourTooShort = errors.New("aco: tour must contain at least 2 cities")

	// ErrNonPositiveTourLength is returned when a deposit is requested for
	// a tour of length <= 0.
	ErrNonPositiveTourLength = errors.New("aco: tour length must be > 0")

	// ErrNegativeQuality is returned when a deposit quality is negative.
	ErrNegativeQuality = errors.New("aco: quality must be >= 0")

	// ErrNonPositiveAnts is returned when the configured ant count is <= 0.
	ErrNonPositiveAnts = errors.New("aco: number of ants must be > 0")

	// ErrNonPositiveIterations is returned when max iterations is <= 0.
	ErrNonPositiveIterations = errors.New("aco: max iterations must be > 0")

	// ErrNonPositiveWorkers is returned when the worker count is <= 0.
	ErrNonPositiveWorkers = errors.New("aco: number of workers must be > 0")

	// ErrNonPositiveStagnationLimit is returned when early stopping is
	// enabled with a stagnation limit <= 0.
	ErrNonPositiveStagnationLimit = errors.New("aco: stagnation limit must be > 0")

	// ErrNegativeTargetQuality is returned for a negative target quality
	// (zero disables the target).
	ErrNegativeTargetQuality = errors.New("aco: target quality must be >= 0")
)
