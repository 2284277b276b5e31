// Package stepbound defines sentinel errors, options, and runtime statistics
// for the step-lower-bound solver.
package stepbound

import "errors"

// Sentinel errors for solver construction, precompute, and bound queries.
var (
	// ErrInterrupted indicates the cancel flag fired during precompute.
	// Not fatal: bound queries remain valid for budgets already covered.
	ErrInterrupted = errors.New("stepbound: precompute interrupted")

	// ErrInternal indicates a child frontier was missing for a state that
	// should not have been pruned — a bug in template enumeration or
	// saturation logic. Surfaced instead of fabricating a bound, because an
	// incorrect bound silently produces an incorrect macro.
	ErrInternal = errors.New("stepbound: internal invariant violated")

	// ErrUnknownState indicates a bound query for a state whose reduction
	// and budget the precompute has not covered.
	ErrUnknownState = errors.New("stepbound: unknown state queried")

	// ErrBadSettings indicates the simulator settings failed validation.
	ErrBadSettings = errors.New("stepbound: invalid settings")
)

// RuntimeStats summarizes the precompute working set.
type RuntimeStats struct {
	// ParallelStates is the number of solved reduced states.
	ParallelStates int
	// ParetoValues is the total point count across all stored frontiers.
	ParetoValues int
}

// Option configures solver behavior via functional arguments.
type Option func(*Solver)

// WithWorkers fixes the precompute worker count. n <= 0 selects
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

// WithMaxBudget caps the deepest step-budget layer the precompute grows to.
// The default (and hard ceiling) is 255; tests use small caps to exercise
// the unknown-state path.
func WithMaxBudget(b uint8) Option {
	return func(s *Solver) {
		if b >= 1 {
			s.maxBudget = b
		}
	}
}
