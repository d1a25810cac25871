// Package aco implements parallel Ant Colony Optimization for the
// Traveling Salesman Problem.
//
// It provides four cooperating pieces:
//
//   - PheromoneModel — the shared τ matrix: initialization to a uniform
//     default, multiplicative evaporation with a minimum floor, additive
//     deposits along tour edges, and commutative merging of delta buffers.
//   - DeltaModel — a private per-worker accumulator of pending deposits,
//     merged into the shared field once per iteration so workers never
//     synchronize on the hot path.
//   - Ant — a stochastic tour builder: attractiveness τ^α·η^β with
//     η = 1/distance, roulette-wheel selection over unvisited cities, a
//     uniform-random fallback on degenerate (zero-attractiveness) states,
//     and a deterministic nearest-neighbor mode when no pheromone model is
//     attached.
//   - Engine — the iteration loop: ants statically partitioned over a
//     fixed worker pool, a fork-join barrier per iteration, evaporate-then-
//     merge pheromone updates, global-best tracking, and a stopping policy
//     (iteration cap, early stopping on stagnation, target quality,
//     optional performance budget).
//
// Determinism:
//   - Per-ant RNG streams derive from (seed, iteration, ant, worker) via a
//     SplitMix64 mix (see rng.go); a fixed seed and worker count replay
//     bit-identical runs regardless of goroutine scheduling.
//
// Concurrency:
//   - The pheromone field is read-only while workers construct tours and
//     is mutated only by the orchestrator between iterations. Each worker
//     owns exactly one DeltaModel and one RNG stream per iteration.
//
// Errors:
//   - Strict sentinels from types.go, checked via errors.Is; construction
//     validates configuration eagerly, and no function panics on user
//     input.
//
// Use core.NewGraphFromMatrix to build an instance, then NewEngine + Run.
package aco
