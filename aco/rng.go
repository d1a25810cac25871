// Package aco - RNG utilities shared by the stochastic construction paths.
//
// This file centralizes deterministic random generation for the engine and
// its ants.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines. The engine derives one independent stream per ant via
//     antSeed, so workers never contend on RNG state.
package aco

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - We want independent substreams derived from one base seed (per-ant
//     streams in parallel construction).
//   - We apply a SplitMix64-style avalanche mix to eliminate correlations.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They provide
//     strong bit diffusion; small changes in inputs produce large,
//     well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// antSeed is THE seed-composition scheme for per-ant streams: the base
// seed is mixed with the iteration, ant and worker indices by chaining
// deriveSeed once per index.
//
// This function is pure and load-bearing for reproducibility: a fixed
// (base, NumWorkers) configuration replays bit-identical runs, and the
// reproducibility tests pin this exact composition. Changing the chain
// order or the mix silently invalidates recorded results.
//
// Changing the worker count changes which worker index an ant carries and
// is therefore NOT required to reproduce runs across different pool sizes.
//
// Complexity: O(1).
func antSeed(base int64, iteration, ant, worker int) int64 {
	s := deriveSeed(base, uint64(iteration))
	s = deriveSeed(s, uint64(ant))
	s = deriveSeed(s, uint64(worker))
	return s
}
