// Package aco - run outcomes.
package aco

import "time"

// Outcome names the terminal state of an engine run.
type Outcome int

const (
	// OutcomeExhausted: the iteration cap was reached.
	OutcomeExhausted Outcome = iota
	// OutcomeConverged: the global best reached the target quality.
	OutcomeConverged
	// OutcomeEarlyStopped: the stagnation limit was hit with early
	// stopping enabled.
	OutcomeEarlyStopped
	// OutcomeBudgetExceeded: a boundary-checked budget constraint was
	// crossed.
	OutcomeBudgetExceeded
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeConverged:
		return "converged"
	case OutcomeEarlyStopped:
		return "early-stopped"
	case OutcomeBudgetExceeded:
		return "budget-exceeded"
	default:
		return "exhausted"
	}
}

// Result holds the outcome of one engine run.
type Result struct {
	// BestTour is the best closed cycle found: len n+1, first==last.
	// Nil when no iteration completed.
	BestTour []int

	// BestLength is the Hamiltonian-cycle length of BestTour.
	BestLength float64

	// ConvergenceIteration is the iteration index of the last global-best
	// improvement; −1 when no improvement was ever recorded.
	ConvergenceIteration int

	// IterationBestLengths records the global best length after each
	// iteration; IterationMeanLengths the mean tour length across all ants
	// of that iteration.
	IterationBestLengths []float64
	IterationMeanLengths []float64

	// Iterations is the number of iterations actually executed (may be
	// fewer than the cap under early stopping, convergence, or budget).
	Iterations int

	// Elapsed is total wall-clock run time.
	Elapsed time.Duration

	// Converged / EarlyStopped mirror the corresponding outcomes for
	// callers that prefer flags over the enum.
	Converged    bool
	EarlyStopped bool

	// StagnationCount is the number of consecutive non-improving
	// iterations at the moment the run stopped.
	StagnationCount int

	// Outcome is the terminal state of the run's stopping policy.
	Outcome Outcome

	// BudgetViolations lists every violated budget constraint (empty when
	// no budget was supplied or none was violated). A boundary violation
	// also sets Outcome to OutcomeBudgetExceeded; run-end speedup or
	// efficiency violations only appear here.
	BudgetViolations []string
}
