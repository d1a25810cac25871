// Package core - dense symmetric distance oracle.
//
// Graph is a concrete, row-major distance matrix over n cities, storing
// entries in a flat slice for performance and cache friendliness. It is the
// single read-only collaborator shared by the engine and every ant during a
// run, so construction validates all structural invariants up front:
//
//   - d(i,i) == 0 within symTol,
//   - d(i,j) == d(j,i) within symTol,
//   - all entries finite and non-negative.
//
// Design principles:
//   - Deterministic, side-effect free accessors.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(1) reads on the hot path; O(n²) validation paid once at construction.
package core

import (
	"fmt"
	"math"
)

// symTol is the structural tolerance for symmetry/diagonal checks.
// It is a shape tolerance, not an algorithmic epsilon.
const symTol = 1e-12

// graphErrorf wraps an underlying sentinel with Graph method context.
func graphErrorf(method string, from, to int, err error) error {
	return fmt.Errorf("Graph.%s(%d,%d): %w", method, from, to, err)
}

// Graph is an immutable symmetric distance oracle over n cities.
// n is the city count and dist holds n*n entries in row-major order.
// Mutation is limited to SetDistance, intended for instance builders and
// tests before the graph is handed to an engine.
type Graph struct {
	n    int       // number of cities
	dist []float64 // flat backing storage, length == n*n
}

// NewGraph creates an n-city graph with all distances zero.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Graph or ErrNonPositiveSize.
// Complexity: O(n²) time and memory.
func NewGraph(n int) (*Graph, error) {
	// Validate requested order.
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	// Allocate flat slice.
	data := make([]float64, n*n)

	return &Graph{n: n, dist: data}, nil
}

// NewGraphFromMatrix builds a graph from a dense [][]float64 and validates
// every structural invariant:
//
//	square shape, zero diagonal, symmetry, non-negative finite entries.
//
// The input is copied; the caller keeps ownership of data.
//
// Errors: ErrNonPositiveSize, ErrDimensionMismatch (ragged rows),
// ErrNonZeroDiagonal, ErrAsymmetry, ErrNegativeDistance, ErrNaNInf.
//
// Complexity: O(n²) time and memory.
func NewGraphFromMatrix(data [][]float64) (*Graph, error) {
	n := len(data)
	if n == 0 {
		return nil, ErrNonPositiveSize
	}

	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int     // matrix indices
		v    float64 // entry under validation
	)
	for i = 0; i < n; i++ {
		// Ragged input violates the square-shape contract.
		if len(data[i]) != n {
			return nil, ErrDimensionMismatch
		}
		for j = 0; j < n; j++ {
			v = data[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			if v < 0 {
				return nil, ErrNegativeDistance
			}
			g.dist[i*n+j] = v
		}
	}

	// Diagonal: d(i,i) ≈ 0 within symTol.
	for i = 0; i < n; i++ {
		if g.dist[i*n+i] > symTol {
			return nil, ErrNonZeroDiagonal
		}
	}

	// Symmetry: |d(i,j) − d(j,i)| ≤ symTol on the upper triangle.
	var diff float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			diff = g.dist[i*n+j] - g.dist[j*n+i]
			if diff < 0 {
				diff = -diff
			}
			if diff > symTol {
				return nil, ErrAsymmetry
			}
		}
	}

	return g, nil
}

// Size returns the number of cities.
// Complexity: O(1).
func (g *Graph) Size() int {
	return g.n // return stored city count
}

// indexOf computes the flat index for (from, to) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Graph) indexOf(method string, from, to int) (int, error) {
	// Validate source index.
	if from < 0 || from >= g.n {
		return 0, graphErrorf(method, from, to, ErrOutOfRange)
	}
	// Validate destination index.
	if to < 0 || to >= g.n {
		return 0, graphErrorf(method, from, to, ErrOutOfRange)
	}

	return from*g.n + to, nil
}

// Distance returns d(from, to).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(1).
func (g *Graph) Distance(from, to int) (float64, error) {
	idx, err := g.indexOf("Distance", from, to)
	if err != nil {
		return 0, err
	}

	return g.dist[idx], nil
}

// SetDistance assigns d(from, to) = d(to, from) = distance, preserving
// symmetry by construction. Intended for instance builders and tests; do
// not mutate a graph already shared with a running engine.
//
// Contract:
//   - from, to ∈ [0..n-1],
//   - distance finite and ≥ 0,
//   - from == to requires distance == 0 (zero diagonal).
//
// Complexity: O(1).
func (g *Graph) SetDistance(from, to int, distance float64) error {
	idx, err := g.indexOf("SetDistance", from, to)
	if err != nil {
		return err
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return graphErrorf("SetDistance", from, to, ErrNaNInf)
	}
	if distance < 0 {
		return graphErrorf("SetDistance", from, to, ErrNegativeDistance)
	}
	if from == to && distance != 0 {
		return graphErrorf("SetDistance", from, to, ErrNonZeroDiagonal)
	}

	// Symmetric write: both directed entries carry the same value.
	g.dist[idx] = distance
	g.dist[to*g.n+from] = distance

	return nil
}

// Clone returns a deep copy of the graph.
// Complexity: O(n²) time and memory.
func (g *Graph) Clone() *Graph {
	copyData := make([]float64, len(g.dist))
	copy(copyData, g.dist)

	return &Graph{n: g.n, dist: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²).
func (g *Graph) String() string {
	s := fmt.Sprintf("Graph(%d cities)\n", g.n)
	var i, j int
	for i = 0; i < g.n; i++ {
		for j = 0; j < g.n; j++ {
			s += fmt.Sprintf("%8.3f ", g.dist[i*g.n+j])
		}
		s += "\n"
	}
	return s
}
