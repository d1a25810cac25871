// Package aco - parallel iteration engine.
//
// Engine drives the ACO loop: per iteration it statically partitions the
// configured ants over a fixed worker pool, lets every worker construct
// tours against the read-only pheromone field while accumulating deposits
// into its own private delta buffer, joins the pool, reduces per-worker
// bests in worker-index order, evaporates the field, merges all buffers,
// updates the global best, and evaluates the stopping policy.
//
// Invariants:
//   - τ is read-only for the whole construction phase of an iteration.
//   - Evaporation runs before the merge; deposits of the current iteration
//     are never decayed by the current iteration's evaporation pass.
//   - The global best length is monotonically non-increasing.
//   - Iteration k fully completes (evaporate + merge) before k+1 starts.
//
// Reproducibility:
//   - Per-ant streams are derived from (Seed, iteration, ant, worker); the
//     partition and all reductions are deterministic for a fixed worker
//     count, so a fixed (Seed, NumWorkers) replays bit-identical runs.
package aco

import (
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/acotsp/core"
)

// Engine orchestrates one problem instance across runs.
type Engine struct {
	graph      *core.Graph
	opts       Options
	pheromones *PheromoneModel

	bestTour   []int   // best closed cycle found so far (nil before first)
	bestLength float64 // +Inf before the first completed iteration
}

// NewEngine validates the configuration eagerly and prepares the engine.
//
// Errors: ErrNilGraph; ErrNonPositiveAnts, ErrNonPositiveIterations,
// ErrNonPositiveWorkers, ErrInvalidEvaporationRate,
// ErrNonPositiveStagnationLimit, ErrNegativeTargetQuality. Invalid
// configuration is never downgraded to defaults.
//
// Complexity: O(n²) for the pheromone field.
func NewEngine(g *core.Graph, opts Options) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	pheromones, err := NewPheromoneModel(g.Size())
	if err != nil {
		return nil, err
	}

	e := &Engine{graph: g, opts: opts, pheromones: pheromones}
	e.Reset()

	return e, nil
}

// Options returns the engine's configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// BestTour returns an independent copy of the best closed cycle found so
// far, or nil before the first completed iteration.
func (e *Engine) BestTour() []int {
	if e.bestTour == nil {
		return nil
	}
	out := make([]int, len(e.bestTour))
	copy(out, e.bestTour)
	return out
}

// BestLength returns the length of the best tour found so far
// (+Inf before the first completed iteration).
func (e *Engine) BestLength() float64 {
	return e.bestLength
}

// Reset clears best-solution state and reinitializes the pheromone field
// to the configured uniform level, ready for a fresh Run.
//
// Complexity: O(n²).
func (e *Engine) Reset() {
	e.bestTour = nil
	e.bestLength = math.Inf(1)
	e.pheromones.Initialize(e.opts.InitialPheromone)
}

// Run executes the full optimization loop and returns its Result.
//
// The run stops at the first satisfied condition, evaluated at the end of
// every iteration: target quality reached (Converged), stagnation limit hit
// with early stopping enabled (EarlyStopped), budget boundary crossed
// (BudgetExceeded), or the iteration cap (Exhausted).
//
// Mid-run errors (a malformed tour, a failed merge) indicate logic defects
// and propagate immediately; partial statistics are not returned.
//
// Complexity: O(MaxIterations · NumAnts · n²) work, spread over NumWorkers.
func (e *Engine) Run() (Result, error) {
	start := time.Now()
	e.Reset()

	res := Result{
		ConvergenceIteration: -1,
		IterationBestLengths: make([]float64, 0, e.opts.MaxIterations),
		IterationMeanLengths: make([]float64, 0, e.opts.MaxIterations),
	}

	var monitor *budgetMonitor
	if e.opts.Budget != nil {
		monitor = newBudgetMonitor(*e.opts.Budget, start)
	}

	var (
		stagnation int
		boundary   string
		outcome    = OutcomeExhausted

		iteration int
		bestPath  []int
		bestLen   float64
		lengths   []float64
		err       error
	)

	for iteration = 0; iteration < e.opts.MaxIterations; iteration++ {
		bestPath, bestLen, lengths, err = e.runIteration(iteration)
		if err != nil {
			return Result{}, err
		}

		res.Iterations = iteration + 1

		// Global best update: the single spot where shared best state
		// changes, strictly after the barrier.
		if bestPath != nil && bestLen < e.bestLength {
			e.bestLength = bestLen
			e.bestTour = bestPath
			res.ConvergenceIteration = iteration
			stagnation = 0
		} else {
			stagnation++
		}

		res.IterationBestLengths = append(res.IterationBestLengths, e.bestLength)
		res.IterationMeanLengths = append(res.IterationMeanLengths, stat.Mean(lengths, nil))

		if e.opts.TargetQuality > 0 && e.bestLength <= e.opts.TargetQuality {
			outcome = OutcomeConverged
			break
		}
		if e.opts.EnableEarlyStopping && stagnation >= e.opts.StagnationLimit {
			outcome = OutcomeEarlyStopped
			break
		}
		if monitor != nil {
			monitor.sample()
			if hit, reason := monitor.exceeded(time.Now()); hit {
				outcome = OutcomeBudgetExceeded
				boundary = reason
				break
			}
		}
	}

	res.Elapsed = time.Since(start)
	res.StagnationCount = stagnation
	res.Outcome = outcome
	res.Converged = outcome == OutcomeConverged
	res.EarlyStopped = outcome == OutcomeEarlyStopped
	if e.bestTour != nil {
		res.BestTour = e.BestTour()
		res.BestLength = e.bestLength
	}
	if monitor != nil {
		res.BudgetViolations = monitor.finalViolations(res.Elapsed, e.opts.NumWorkers, boundary)
	}

	return res, nil
}

// runIteration executes one fork-join iteration and returns the iteration
// best (path, length), plus every ant's tour length in ant-index order.
//
// Each worker owns exactly one delta buffer, one best slot, and one
// lengths slot; no shared state is touched until the barrier.
//
// Complexity: O(NumAnts · n² / NumWorkers) per worker plus O(W·n²) merge.
func (e *Engine) runIteration(iteration int) ([]int, float64, []float64, error) {
	var (
		n       = e.graph.Size()
		workers = e.opts.NumWorkers
		numAnts = e.opts.NumAnts

		deltas    = make([]*DeltaModel, workers)
		bestPaths = make([][]int, workers)
		bestLens  = make([]float64, workers)
		lengths   = make([][]float64, workers)
		err       error
	)
	for w := 0; w < workers; w++ {
		if deltas[w], err = NewDeltaModel(n); err != nil {
			return nil, 0, nil, err
		}
		bestLens[w] = math.Inf(1)
	}

	// Static contiguous partition: worker w owns ants [w·chunk, (w+1)·chunk).
	chunk := (numAnts + workers - 1) / workers

	var grp errgroup.Group
	for w := 0; w < workers; w++ {
		worker := w
		lo := worker * chunk
		hi := min(lo+chunk, numAnts)
		if lo >= hi {
			continue // more workers than ants; idle worker, zeroed buffer
		}

		grp.Go(func() error {
			lengths[worker] = make([]float64, 0, hi-lo)

			var (
				antIdx int
				ant    *Ant
				tour   *core.Tour
				length float64
				werr   error
			)
			for antIdx = lo; antIdx < hi; antIdx++ {
				rng := rand.New(rand.NewSource(antSeed(e.opts.Seed, iteration, antIdx, worker)))
				ant, werr = NewAnt(e.graph, e.pheromones, e.opts.Alpha, e.opts.Beta, rng)
				if werr != nil {
					return werr
				}

				tour, werr = ant.ConstructTour()
				if werr != nil {
					return werr
				}

				length = tour.Length()
				lengths[worker] = append(lengths[worker], length)

				if length < bestLens[worker] {
					bestLens[worker] = length
					bestPaths[worker] = tour.Path()
				}

				// Q = 1/L deposit; zero-length degenerate tours deposit nothing.
				if length > 0 {
					if werr = deltas[worker].Accumulate(tour.Path(), length, 1.0/length); werr != nil {
						return werr
					}
				}
			}

			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return nil, 0, nil, err
	}

	// Reduce per-worker bests in worker-index order (deterministic for a
	// fixed worker count; ties keep the lower worker index).
	var (
		bestPath []int
		bestLen  = math.Inf(1)
	)
	for w := 0; w < workers; w++ {
		if bestPaths[w] != nil && bestLens[w] < bestLen {
			bestLen = bestLens[w]
			bestPath = bestPaths[w]
		}
	}

	// Evaporate strictly before merging: this iteration's deposits must
	// not be decayed by this iteration's evaporation pass.
	if err = e.pheromones.Evaporate(e.opts.Rho); err != nil {
		return nil, 0, nil, err
	}
	if err = e.pheromones.MergeDeltas(deltas); err != nil {
		return nil, 0, nil, err
	}

	// Flatten per-worker lengths; contiguous partitioning makes this
	// ant-index order.
	all := make([]float64, 0, numAnts)
	for w := 0; w < workers; w++ {
		all = append(all, lengths[w]...)
	}

	return bestPath, bestLen, all, nil
}
