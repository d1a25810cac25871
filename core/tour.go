// Package core - tour invariants and round-trip cost.
//
// A tour is a closed Hamiltonian cycle stored as a vertex index sequence of
// length n+1 with tour[0] == tour[n]; each city in [0..n-1] appears exactly
// once in positions [0..n-1]. Helpers here operate on raw []int paths; the
// Tour type pairs a validated path with its cached length.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for all helpers; allocations limited to returned slices.
//   - Costs are stabilized to 1e−9 to avoid cross-platform FP drift.
package core

import "math"

// roundScale controls cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// CloseTour returns a closed copy of path: if path already ends where it
// starts it is copied verbatim, otherwise the starting city is appended.
// An empty path yields an empty (non-nil) slice.
//
// Complexity: O(n) time and space.
func CloseTour(path []int) []int {
	if len(path) == 0 {
		return []int{}
	}
	if path[0] == path[len(path)-1] && len(path) > 1 {
		out := make([]int, len(path))
		copy(out, path)
		return out
	}
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = path[0]
	return out
}

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each city v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrInvalidTour
	}
	if start < 0 || start >= n {
		return ErrOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrInvalidTour
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrOutOfRange
		}
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// TourLength sums edge distances along the cycle tour[i]→tour[i+1],
// including the closing edge when the input path is open.
//
// Contract:
//   - g non-nil; path holds at least 2 cities (open) or a closed pair.
//   - Every index within [0..n-1].
//
// The result is stabilized via round1e9.
//
// Complexity: O(n) time, O(1) extra space.
func TourLength(g *Graph, path []int) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum float64 // running cycle length
		w   float64 // current edge weight
		i   int
		err error
		last = len(path) - 1
	)
	for i = 0; i < last; i++ {
		w, err = g.Distance(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		sum += w
	}

	// Close the cycle when the caller passed an open path.
	if path[0] != path[last] {
		w, err = g.Distance(path[last], path[0])
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// Tour is a closed Hamiltonian cycle with its cached round-trip length.
// The zero value is not useful; construct via NewTour.
type Tour struct {
	path   []int   // closed representation, len == n+1, path[0] == path[n]
	length float64 // cached cycle length against the source graph
}

// NewTour validates path against g, closes it if open, computes the cycle
// length, and returns the immutable Tour.
//
// Contract:
//   - g non-nil and path a permutation of g's cities starting at path[0]
//     (open, len n) or the same with explicit closure (len n+1).
//
// Errors: ErrNilGraph, ErrInvalidTour, ErrOutOfRange, ErrDimensionMismatch.
//
// Complexity: O(n) time, O(n) space.
func NewTour(g *Graph, path []int) (*Tour, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(path) == 0 {
		return nil, ErrDimensionMismatch
	}

	closed := CloseTour(path)
	if err := ValidateTour(closed, g.Size(), closed[0]); err != nil {
		return nil, err
	}

	length, err := TourLength(g, closed)
	if err != nil {
		return nil, err
	}

	return &Tour{path: closed, length: length}, nil
}

// Path returns an independent copy of the closed city sequence.
// Complexity: O(n).
func (t *Tour) Path() []int {
	out := make([]int, len(t.path))
	copy(out, t.path)
	return out
}

// Length returns the cached Hamiltonian-cycle length.
// Complexity: O(1).
func (t *Tour) Length() float64 {
	return t.length
}

// Len returns the number of distinct cities on the tour.
// Complexity: O(1).
func (t *Tour) Len() int {
	if len(t.path) == 0 {
		return 0
	}
	return len(t.path) - 1
}
