// Package acotsp is a concurrent Ant Colony Optimization toolkit for the
// Traveling Salesman Problem — stochastic tour construction, a shared
// pheromone field, and a fork-join iteration engine with reproducible
// parallel runs.
//
// 🚀 What is acotsp?
//
//	A modern, deterministic-by-default library that brings together:
//		• Distance oracles: immutable symmetric matrices with strict validation
//		• Tours: closed Hamiltonian cycles with cached round-trip length
//		• Pheromone field: evaporation, deposit and commutative delta merges
//		• Ants: roulette-wheel construction with τ^α·η^β attractiveness
//		• Engine: static ant partitioning over a fixed worker pool,
//		  early stopping, target quality and performance budgets
//
// ✨ Why choose acotsp?
//
//   - Reproducible – per-ant seed derivation; fixed seed + fixed worker
//     count replays bit-identical runs
//   - Rock-solid guarantees – sentinel errors, no panics on user input,
//     in-code contracts and complexity notes
//   - Contention-free hot path – workers write only to private delta
//     buffers; the field is merged single-threaded between iterations
//
// Everything is organized under two subpackages:
//
//	core/ — distance oracle (Graph) and tour invariants (Tour)
//	aco/  — pheromone model, delta buffers, ants, and the parallel engine
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╳ │
//	    2───3
//
//	a complete 4-city instance; ants walk probabilistic Hamiltonian
//	cycles over it and reinforce the short ones.
//
// Dive into examples/ for a runnable route-planning demo.
//
//	go get github.com/katalvlaran/acotsp/aco
package acotsp
