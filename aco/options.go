// Package aco - run configuration.
//
// Options is a plain value struct in the spirit of the module's other
// algorithm surfaces: construct with DefaultOptions, override fields, pass
// by value. Validation happens once, in NewEngine — never silently
// downgraded to defaults, never re-checked on the hot path.
package aco

// Options configures a single engine run.
//
//   - Alpha: pheromone importance exponent in τ^α·η^β.
//   - Beta: heuristic (inverse distance) importance exponent.
//   - Rho: evaporation rate in [0, 1].
//   - NumAnts: tours constructed per iteration (> 0).
//   - MaxIterations: iteration cap (> 0).
//   - NumWorkers: fixed worker-pool size (> 0); ants are statically
//     partitioned across workers, so changing NumWorkers changes seeding.
//   - Seed: base seed for all per-ant streams; same (Seed, NumWorkers) ⇒
//     bit-identical runs.
//   - InitialPheromone: uniform τ value applied at the start of every run
//     (floored to MinPheromone).
//   - EnableEarlyStopping / StagnationLimit: stop after StagnationLimit
//     consecutive iterations without a global-best improvement.
//   - TargetQuality: stop as converged once the global best reaches this
//     length; 0 disables.
//   - Budget: optional performance budget checked at iteration boundaries;
//     nil disables.
type Options struct {
	Alpha               float64
	Beta                float64
	Rho                 float64
	NumAnts             int
	MaxIterations       int
	NumWorkers          int
	Seed                int64
	InitialPheromone    float64
	EnableEarlyStopping bool
	StagnationLimit     int
	TargetQuality       float64
	Budget              *Budget
}

// DefaultOptions returns the documented defaults: α=1, β=2, ρ=0.1,
// 50 ants, 100 iterations, 1 worker, seed 42, uniform pheromone 1.0,
// early stopping off with a stagnation limit of 100, no target, no budget.
func DefaultOptions() Options {
	return Options{
		Alpha:            1.0,
		Beta:             2.0,
		Rho:              0.1,
		NumAnts:          50,
		MaxIterations:    100,
		NumWorkers:       1,
		Seed:             42,
		InitialPheromone: DefaultPheromone,
		StagnationLimit:  100,
	}
}

// validate checks internal consistency of Options. All violations map to
// strict sentinels; the first failure wins, in documented priority order.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.NumAnts <= 0 {
		return ErrNonPositiveAnts
	}
	if o.MaxIterations <= 0 {
		return ErrNonPositiveIterations
	}
	if o.NumWorkers <= 0 {
		return ErrNonPositiveWorkers
	}
	if o.Rho < 0 || o.Rho > 1 {
		return ErrInvalidEvaporationRate
	}
	if o.EnableEarlyStopping && o.StagnationLimit <= 0 {
		return ErrNonPositiveStagnationLimit
	}
	if o.TargetQuality < 0 {
		return ErrNegativeTargetQuality
	}

	return nil
}
