// Package aco - performance budgets.
//
// A Budget is an external constraint the run is evaluated against, never a
// hard preemption: time and memory are checked only at iteration
// boundaries (a worker mid-construction always finishes its tour), and the
// speedup/efficiency floors are evaluated once at run end against a
// caller-supplied single-worker baseline. Violations flag the outcome;
// they do not fail the run.
package aco

import (
	"fmt"
	"runtime"
	"time"
)

// Budget bounds a run's resource consumption.
//
//   - MaxExecutionTime: wall-clock ceiling; 0 disables.
//   - MaxMemoryMB: heap-allocation ceiling in MiB; 0 disables.
//   - MinSpeedup: required BaselineTime/elapsed ratio; 0 disables.
//   - MinEfficiencyPercent: required 100·speedup/NumWorkers; 0 disables.
//   - BaselineTime: single-worker reference time for the two ratios above;
//     0 means unavailable, which disables them regardless of their floors.
type Budget struct {
	MaxExecutionTime     time.Duration
	MaxMemoryMB          uint64
	MinSpeedup           float64
	MinEfficiencyPercent float64
	BaselineTime         time.Duration
}

// budgetMonitor tracks a run against its Budget.
type budgetMonitor struct {
	budget    Budget
	start     time.Time
	peakAlloc uint64 // bytes, max HeapAlloc observed at boundaries
}

// newBudgetMonitor starts tracking at start.
func newBudgetMonitor(b Budget, start time.Time) *budgetMonitor {
	m := &budgetMonitor{budget: b, start: start}
	m.sample()
	return m
}

// sample records current heap allocation; called at iteration boundaries
// only, so the ReadMemStats cost stays off the construction hot path.
func (m *budgetMonitor) sample() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.HeapAlloc > m.peakAlloc {
		m.peakAlloc = ms.HeapAlloc
	}
}

// exceeded reports whether a boundary-checked constraint (time, memory)
// has been crossed, with a human-readable reason.
func (m *budgetMonitor) exceeded(now time.Time) (bool, string) {
	if m.budget.MaxExecutionTime > 0 {
		if elapsed := now.Sub(m.start); elapsed > m.budget.MaxExecutionTime {
			return true, fmt.Sprintf("execution time %v exceeds budget %v", elapsed, m.budget.MaxExecutionTime)
		}
	}
	if m.budget.MaxMemoryMB > 0 {
		peakMB := m.peakAlloc / (1 << 20)
		if peakMB > m.budget.MaxMemoryMB {
			return true, fmt.Sprintf("peak memory %d MiB exceeds budget %d MiB", peakMB, m.budget.MaxMemoryMB)
		}
	}

	return false, ""
}

// finalViolations evaluates the run-end constraints (speedup, efficiency)
// and returns every violated constraint as a message, including any
// boundary violation passed in from the loop.
func (m *budgetMonitor) finalViolations(elapsed time.Duration, workers int, boundary string) []string {
	var out []string
	if boundary != "" {
		out = append(out, boundary)
	}

	if m.budget.BaselineTime > 0 && elapsed > 0 {
		speedup := float64(m.budget.BaselineTime) / float64(elapsed)
		if m.budget.MinSpeedup > 0 && speedup < m.budget.MinSpeedup {
			out = append(out, fmt.Sprintf("speedup %.2f below budget %.2f", speedup, m.budget.MinSpeedup))
		}
		if m.budget.MinEfficiencyPercent > 0 && workers > 0 {
			efficiency := 100 * speedup / float64(workers)
			if efficiency < m.budget.MinEfficiencyPercent {
				out = append(out, fmt.Sprintf("efficiency %.1f%% below budget %.1f%%", efficiency, m.budget.MinEfficiencyPercent))
			}
		}
	}

	return out
}
