// Package core provides the problem-instance primitives shared by every
// ACO solver in this module:
//
//   - Graph — an immutable, dense, symmetric distance oracle over n cities,
//     stored row-major in a flat slice for cache friendliness.
//   - Tour  — a closed Hamiltonian cycle (len n+1, first==last) with its
//     cached round-trip length.
//
// Validation is strict and eager: construction rejects asymmetric
// matrices, non-zero diagonals, negative or non-finite distances, and all
// indexers return sentinel errors (never panic) on out-of-range cities.
//
// Use this package to build instances for aco.Engine; it performs no I/O
// and holds no mutable shared state after construction.
package core
