package aco_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/acotsp/aco"
	"github.com/katalvlaran/acotsp/core"
	"github.com/stretchr/testify/require"
)

// triangle3 has a single Hamiltonian cycle class: every tour is length 12,
// so no iteration can ever improve on the first one.
func triangle3(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFromMatrix([][]float64{
		{0, 3, 4},
		{3, 0, 5},
		{4, 5, 0},
	})
	require.NoError(t, err)
	return g
}

func TestNewEngine_Validation(t *testing.T) {
	g := square4(t)

	_, err := aco.NewEngine(nil, aco.DefaultOptions())
	require.ErrorIs(t, err, aco.ErrNilGraph)

	cases := []struct {
		name    string
		mutate  func(*aco.Options)
		wantErr error
	}{
		{"zero ants", func(o *aco.Options) { o.NumAnts = 0 }, aco.ErrNonPositiveAnts},
		{"zero iterations", func(o *aco.Options) { o.MaxIterations = 0 }, aco.ErrNonPositiveIterations},
		{"zero workers", func(o *aco.Options) { o.NumWorkers = 0 }, aco.ErrNonPositiveWorkers},
		{"negative rho", func(o *aco.Options) { o.Rho = -0.5 }, aco.ErrInvalidEvaporationRate},
		{"rho above one", func(o *aco.Options) { o.Rho = 1.5 }, aco.ErrInvalidEvaporationRate},
		{"early stop without limit", func(o *aco.Options) {
			o.EnableEarlyStopping = true
			o.StagnationLimit = 0
		}, aco.ErrNonPositiveStagnationLimit},
		{"negative target", func(o *aco.Options) { o.TargetQuality = -1 }, aco.ErrNegativeTargetQuality},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := aco.DefaultOptions()
			tc.mutate(&opts)
			_, err := aco.NewEngine(g, opts)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestEngine_FreshState(t *testing.T) {
	g := square4(t)
	e, err := aco.NewEngine(g, aco.DefaultOptions())
	require.NoError(t, err)

	require.Nil(t, e.BestTour())
	require.True(t, math.IsInf(e.BestLength(), 1))
}

func TestEngine_Run_FindsValidTour(t *testing.T) {
	g := square4(t)
	opts := aco.DefaultOptions()
	opts.NumAnts = 10
	opts.MaxIterations = 30

	e, err := aco.NewEngine(g, opts)
	require.NoError(t, err)
	res, err := e.Run()
	require.NoError(t, err)

	require.Equal(t, aco.OutcomeExhausted, res.Outcome)
	require.Equal(t, 30, res.Iterations)
	require.NoError(t, core.ValidateTour(res.BestTour, g.Size(), 0))

	// The reported length matches an independent recomputation, and the
	// tiny instance is fully sampled: the optimum 80 must be found.
	length, err := core.TourLength(g, res.BestTour)
	require.NoError(t, err)
	require.Equal(t, length, res.BestLength)
	require.Equal(t, 80.0, res.BestLength)
	require.Equal(t, res.BestTour, e.BestTour())
	require.Equal(t, res.BestLength, e.BestLength())
	require.GreaterOrEqual(t, res.ConvergenceIteration, 0)
	require.Positive(t, res.Elapsed)
}

// A fixed (Seed, NumWorkers) pair replays bit-identical runs.
func TestEngine_Run_Deterministic(t *testing.T) {
	g := square4(t)
	opts := aco.DefaultOptions()
	opts.NumAnts = 8
	opts.MaxIterations = 20
	opts.Seed = 7

	run := func() aco.Result {
		e, err := aco.NewEngine(g, opts)
		require.NoError(t, err)
		res, err := e.Run()
		require.NoError(t, err)
		return res
	}

	first, second := run(), run()
	require.Equal(t, first.BestTour, second.BestTour)
	require.Equal(t, first.BestLength, second.BestLength)
	require.Equal(t, first.IterationBestLengths, second.IterationBestLengths)
	require.Equal(t, first.IterationMeanLengths, second.IterationMeanLengths)
	require.Equal(t, first.ConvergenceIteration, second.ConvergenceIteration)
}

func TestEngine_Run_DeterministicMultiWorker(t *testing.T) {
	g := square4(t)
	opts := aco.DefaultOptions()
	opts.NumAnts = 10
	opts.MaxIterations = 15
	opts.NumWorkers = 4
	opts.Seed = 11

	run := func() aco.Result {
		e, err := aco.NewEngine(g, opts)
		require.NoError(t, err)
		res, err := e.Run()
		require.NoError(t, err)
		return res
	}

	first, second := run(), run()
	require.Equal(t, first.BestTour, second.BestTour)
	require.Equal(t, first.BestLength, second.BestLength)
	require.Equal(t, first.IterationBestLengths, second.IterationBestLengths)
	require.Equal(t, first.IterationMeanLengths, second.IterationMeanLengths)
}

// The per-iteration global best series never increases.
func TestEngine_Run_BestSeriesMonotone(t *testing.T) {
	g := square4(t)
	opts := aco.DefaultOptions()
	opts.NumAnts = 6
	opts.MaxIterations = 40

	e, err := aco.NewEngine(g, opts)
	require.NoError(t, err)
	res, err := e.Run()
	require.NoError(t, err)

	require.Len(t, res.IterationBestLengths, res.Iterations)
	require.Len(t, res.IterationMeanLengths, res.Iterations)
	for i := 1; i < len(res.IterationBestLengths); i++ {
		require.LessOrEqual(t, res.IterationBestLengths[i], res.IterationBestLengths[i-1], "iteration %d", i)
	}

	// The mean can never undercut the best of the same iteration.
	for i := range res.IterationMeanLengths {
		require.GreaterOrEqual(t, res.IterationMeanLengths[i], res.IterationBestLengths[i], "iteration %d", i)
	}
}

// On a graph where every cycle has equal length no iteration after the
// first can improve, so stagnation hits the limit exactly.
func TestEngine_Run_EarlyStopping(t *testing.T) {
	g := triangle3(t)
	opts := aco.DefaultOptions()
	opts.NumAnts = 4
	opts.MaxIterations = 100
	opts.EnableEarlyStopping = true
	opts.StagnationLimit = 20

	e, err := aco.NewEngine(g, opts)
	require.NoError(t, err)
	res, err := e.Run()
	require.NoError(t, err)

	require.True(t, res.EarlyStopped)
	require.Equal(t, aco.OutcomeEarlyStopped, res.Outcome)
	require.Less(t, res.Iterations, opts.MaxIterations)
	require.Equal(t, 21, res.Iterations)
	require.Equal(t, 20, res.StagnationCount)
	require.Equal(t, 0, res.ConvergenceIteration)
	require.Equal(t, 12.0, res.BestLength)
}

func TestEngine_Run_TargetQuality(t *testing.T) {
	g := square4(t)
	opts := aco.DefaultOptions()
	opts.NumAnts = 5
	opts.MaxIterations = 50
	opts.TargetQuality = 1000 // any tour satisfies it

	e, err := aco.NewEngine(g, opts)
	require.NoError(t, err)
	res, err := e.Run()
	require.NoError(t, err)

	require.True(t, res.Converged)
	require.Equal(t, aco.OutcomeConverged, res.Outcome)
	require.Equal(t, 1, res.Iterations)
	require.LessOrEqual(t, res.BestLength, opts.TargetQuality)
}

func TestEngine_Run_TimeBudget(t *testing.T) {
	g := square4(t)
	opts := aco.DefaultOptions()
	opts.NumAnts = 5
	opts.MaxIterations = 1000
	opts.Budget = &aco.Budget{MaxExecutionTime: time.Nanosecond}

	e, err := aco.NewEngine(g, opts)
	require.NoError(t, err)
	res, err := e.Run()
	require.NoError(t, err)

	require.Equal(t, aco.OutcomeBudgetExceeded, res.Outcome)
	require.Equal(t, 1, res.Iterations)
	require.NotEmpty(t, res.BudgetViolations)

	// A budget stop still reports the best tour seen so far.
	require.NoError(t, core.ValidateTour(res.BestTour, g.Size(), 0))
}

// Speedup/efficiency floors are evaluated at run end only: the run
// completes normally and the violations are reported alongside.
func TestEngine_Run_SpeedupViolationDoesNotStop(t *testing.T) {
	g := square4(t)
	opts := aco.DefaultOptions()
	opts.NumAnts = 4
	opts.MaxIterations = 5
	opts.Budget = &aco.Budget{
		MinSpeedup:           1000,
		MinEfficiencyPercent: 99,
		BaselineTime:         time.Nanosecond,
	}

	e, err := aco.NewEngine(g, opts)
	require.NoError(t, err)
	res, err := e.Run()
	require.NoError(t, err)

	require.Equal(t, aco.OutcomeExhausted, res.Outcome)
	require.Equal(t, 5, res.Iterations)
	require.Len(t, res.BudgetViolations, 2)
}

// Run resets engine state, so back-to-back runs on one engine are
// identical too.
func TestEngine_Run_Repeatable(t *testing.T) {
	g := square4(t)
	opts := aco.DefaultOptions()
	opts.NumAnts = 6
	opts.MaxIterations = 10

	e, err := aco.NewEngine(g, opts)
	require.NoError(t, err)

	first, err := e.Run()
	require.NoError(t, err)
	second, err := e.Run()
	require.NoError(t, err)

	require.Equal(t, first.BestTour, second.BestTour)
	require.Equal(t, first.IterationBestLengths, second.IterationBestLengths)
}

// More workers than ants leaves the surplus idle without corrupting the
// merge or the statistics.
func TestEngine_Run_MoreWorkersThanAnts(t *testing.T) {
	g := square4(t)
	opts := aco.DefaultOptions()
	opts.NumAnts = 2
	opts.MaxIterations = 5
	opts.NumWorkers = 8

	e, err := aco.NewEngine(g, opts)
	require.NoError(t, err)
	res, err := e.Run()
	require.NoError(t, err)

	require.Equal(t, 5, res.Iterations)
	require.NoError(t, core.ValidateTour(res.BestTour, g.Size(), 0))
	require.Len(t, res.IterationMeanLengths, 5)
	for _, mean := range res.IterationMeanLengths {
		require.False(t, math.IsNaN(mean))
	}
}

func BenchmarkEngineRun(b *testing.B) {
	g, err := core.NewGraphFromMatrix([][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	if err != nil {
		b.Fatal(err)
	}
	opts := aco.DefaultOptions()
	opts.NumAnts = 20
	opts.MaxIterations = 10

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := aco.NewEngine(g, opts)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = e.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
