// Package aco - shared pheromone field τ.
//
// PheromoneModel is a dense n×n matrix of edge desirabilities stored
// row-major in a flat slice. Every write path clamps to MinPheromone so no
// edge ever loses selectability; evaporation and merging preserve that
// floor as an invariant.
//
// Concurrency contract:
//   - Read-only during the parallel construction phase of an iteration.
//   - Mutated only by the orchestrator between iterations (Evaporate, then
//     MergeDeltas), single-threaded. The model itself carries no lock; the
//     engine's phase discipline is the synchronization.
//
// Complexity: all whole-matrix operations are O(n²); per-edge accessors O(1).
package aco

// DefaultPheromone is the uniform value applied by Initialize when the
// caller does not request another level.
const DefaultPheromone = 1.0

// MinPheromone is the floor enforced on every write, guaranteeing every
// edge keeps a non-zero selection probability.
const MinPheromone = 0.01

// PheromoneModel is the shared τ matrix over n cities.
type PheromoneModel struct {
	n   int       // matrix order
	tau []float64 // flat backing storage, length == n*n
}

// NewPheromoneModel creates an n×n field initialized to DefaultPheromone.
// Returns ErrNonPositiveSize for n <= 0.
//
// Complexity: O(n²) time and memory.
func NewPheromoneModel(n int) (*PheromoneModel, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}

	m := &PheromoneModel{n: n, tau: make([]float64, n*n)}
	m.Initialize(DefaultPheromone)

	return m, nil
}

// Size returns the matrix order.
// Complexity: O(1).
func (m *PheromoneModel) Size() int {
	return m.n
}

// indexOf computes the flat index for (from, to) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *PheromoneModel) indexOf(from, to int) (int, error) {
	if from < 0 || from >= m.n || to < 0 || to >= m.n {
		return 0, ErrOutOfRange
	}

	return from*m.n + to, nil
}

// Pheromone returns τ(from, to).
// Complexity: O(1).
func (m *PheromoneModel) Pheromone(from, to int) (float64, error) {
	idx, err := m.indexOf(from, to)
	if err != nil {
		return 0, err
	}

	return m.tau[idx], nil
}

// SetPheromone assigns τ(from, to) = max(value, MinPheromone).
// Complexity: O(1).
func (m *PheromoneModel) SetPheromone(from, to int, value float64) error {
	idx, err := m.indexOf(from, to)
	if err != nil {
		return err
	}
	if value < MinPheromone {
		value = MinPheromone
	}
	m.tau[idx] = value

	return nil
}

// Initialize sets every entry to max(value, MinPheromone).
// Complexity: O(n²).
func (m *PheromoneModel) Initialize(value float64) {
	if value < MinPheromone {
		value = MinPheromone
	}

	var i int
	for i = range m.tau {
		m.tau[i] = value
	}
}

// Evaporate applies multiplicative decay to every entry:
//
//	τ ← max(τ·(1−rho), MinPheromone)
//
// Returns ErrInvalidEvaporationRate for rho outside [0, 1].
//
// Complexity: O(n²).
func (m *PheromoneModel) Evaporate(rho float64) error {
	if rho < 0 || rho > 1 {
		return ErrInvalidEvaporationRate
	}

	var (
		retain = 1.0 - rho
		i      int
		v      float64
	)
	for i = range m.tau {
		v = m.tau[i] * retain
		if v < MinPheromone {
			v = MinPheromone
		}
		m.tau[i] = v
	}

	return nil
}

// validateDeposit checks the shared deposit/accumulate contract and
// returns the per-edge increment Δτ = quality / tourLength.
//
// Contract:
//   - path holds at least 2 cities, every index within [0..n-1],
//   - tourLength > 0, quality >= 0.
//
// Complexity: O(len(path)).
func validateDeposit(n int, path []int, tourLength, quality float64) (float64, error) {
	if len(path) < 2 {
		return 0, ErrTourTooShort
	}
	if tourLength <= 0 {
		return 0, ErrNonPositiveTourLength
	}
	if quality < 0 {
		return 0, ErrNegativeQuality
	}

	var (
		i int
		c int
	)
	for i = 0; i < len(path); i++ {
		c = path[i]
		if c < 0 || c >= n {
			return 0, ErrOutOfRange
		}
	}

	return quality / tourLength, nil
}

// Deposit reinforces every edge of the tour by Δτ = quality / tourLength,
// clamping each result to MinPheromone. The path may be open ([0,1,2,3])
// or closed ([0,1,2,3,0]); the closing edge back to the first city is
// deposited exactly once either way.
//
// This is the direct-write variant used outside the parallel phase (e.g.
// an elitist update); workers use DeltaModel.Accumulate instead.
//
// Errors: ErrTourTooShort, ErrNonPositiveTourLength, ErrNegativeQuality,
// ErrOutOfRange.
//
// Complexity: O(len(path)).
func (m *PheromoneModel) Deposit(path []int, tourLength, quality float64) error {
	delta, err := validateDeposit(m.n, path, tourLength, quality)
	if err != nil {
		return err
	}

	var (
		i    int
		idx  int
		last = len(path) - 1
	)
	for i = 0; i < last; i++ {
		idx = path[i]*m.n + path[i+1]
		m.tau[idx] = clampMin(m.tau[idx] + delta)
	}

	// Closing edge, unless the caller already closed the cycle.
	if path[0] != path[last] {
		idx = path[last]*m.n + path[0]
		m.tau[idx] = clampMin(m.tau[idx] + delta)
	}

	return nil
}

// MergeDelta folds one worker buffer into the field: τ += Δ cell-wise,
// clamped to MinPheromone. Pure addition keeps the merge commutative and
// associative across buffers.
//
// Returns ErrDimensionMismatch when the buffer order differs from τ's.
//
// Complexity: O(n²).
func (m *PheromoneModel) MergeDelta(buf *DeltaModel) error {
	if buf == nil || buf.n != m.n {
		return ErrDimensionMismatch
	}

	var (
		i int
		d float64
	)
	for i = range m.tau {
		d = buf.delta[i]
		if d != 0 {
			m.tau[i] = clampMin(m.tau[i] + d)
		}
	}

	return nil
}

// MergeDeltas folds many worker buffers in the given order. Addition makes
// the final field independent of buffer order up to FP rounding; the
// engine passes buffers in worker-index order to keep runs bit-identical.
//
// Complexity: O(k·n²) for k buffers.
func (m *PheromoneModel) MergeDeltas(bufs []*DeltaModel) error {
	var (
		i   int
		err error
	)
	for i = range bufs {
		if err = m.MergeDelta(bufs[i]); err != nil {
			return err
		}
	}

	return nil
}

// clampMin enforces the MinPheromone floor on a single value.
// Complexity: O(1).
func clampMin(v float64) float64 {
	if v < MinPheromone {
		return MinPheromone
	}
	return v
}
