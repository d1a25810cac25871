// Package aco - per-worker pheromone delta buffer.
//
// DeltaModel is a private n×n accumulator of pending deposits. One buffer
// is owned exclusively by one worker for the duration of an iteration, so
// many workers can deposit pheromone concurrently without synchronizing on
// the shared field; the orchestrator merges all buffers single-threaded
// after the barrier (PheromoneModel.MergeDeltas) and resets them.
//
// Unlike the shared field, deltas carry no MinPheromone floor: they are
// raw pending additions, and the floor is applied when merging.
package aco

// DeltaModel accumulates pending pheromone contributions for one worker.
type DeltaModel struct {
	n     int       // matrix order
	delta []float64 // flat backing storage, length == n*n, zero-initialized
}

// NewDeltaModel creates a zeroed n×n buffer.
// Returns ErrNonPositiveSize for n <= 0.
//
// Complexity: O(n²) time and memory.
func NewDeltaModel(n int) (*DeltaModel, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}

	return &DeltaModel{n: n, delta: make([]float64, n*n)}, nil
}

// Size returns the matrix order.
// Complexity: O(1).
func (b *DeltaModel) Size() int {
	return b.n
}

// indexOf computes the flat index for (from, to) or returns ErrOutOfRange.
// Complexity: O(1).
func (b *DeltaModel) indexOf(from, to int) (int, error) {
	if from < 0 || from >= b.n || to < 0 || to >= b.n {
		return 0, ErrOutOfRange
	}

	return from*b.n + to, nil
}

// Delta returns Δ(from, to).
// Complexity: O(1).
func (b *DeltaModel) Delta(from, to int) (float64, error) {
	idx, err := b.indexOf(from, to)
	if err != nil {
		return 0, err
	}

	return b.delta[idx], nil
}

// SetDelta assigns Δ(from, to) = value. Raw access for tests and tooling.
// Complexity: O(1).
func (b *DeltaModel) SetDelta(from, to int, value float64) error {
	idx, err := b.indexOf(from, to)
	if err != nil {
		return err
	}
	b.delta[idx] = value

	return nil
}

// AddDelta adds value to Δ(from, to).
// Complexity: O(1).
func (b *DeltaModel) AddDelta(from, to int, value float64) error {
	idx, err := b.indexOf(from, to)
	if err != nil {
		return err
	}
	b.delta[idx] += value

	return nil
}

// Accumulate adds Δτ = quality / tourLength on every edge of the tour,
// under the same validation rules as PheromoneModel.Deposit. The path may
// be open or closed; the closing edge is accumulated exactly once.
//
// Errors: ErrTourTooShort, ErrNonPositiveTourLength, ErrNegativeQuality,
// ErrOutOfRange.
//
// Complexity: O(len(path)).
func (b *DeltaModel) Accumulate(path []int, tourLength, quality float64) error {
	delta, err := validateDeposit(b.n, path, tourLength, quality)
	if err != nil {
		return err
	}

	var (
		i    int
		last = len(path) - 1
	)
	for i = 0; i < last; i++ {
		b.delta[path[i]*b.n+path[i+1]] += delta
	}
	if path[0] != path[last] {
		b.delta[path[last]*b.n+path[0]] += delta
	}

	return nil
}

// Reset zeroes all entries so the buffer can serve the next iteration.
// Complexity: O(n²).
func (b *DeltaModel) Reset() {
	var i int
	for i = range b.delta {
		b.delta[i] = 0
	}
}
