// Package stepbound implements the step-lower-bound solver: a parallel
// precompute engine that materializes, for every reachable reduced craft
// state, the Pareto frontier of (progress, quality) outcomes achievable
// within a step budget, and answers admissible bound queries against it.
//
// 🚀 What is stepbound?
//
//	An outer branch-and-bound macro search needs a cheap, admissible lower
//	bound on the steps remaining to finish a craft. stepbound answers that
//	query from a precomputed table: reduce the state to its equivalence
//	class, look up the frontier at the candidate budget, and binary-search
//	the smallest point meeting the remaining progress requirement.
//
// ✨ Key ideas:
//
//   - State reduction: CP, progress, and quality are erased from the key;
//     the frontier's coordinates capture them. Raw states (~10^12) collapse
//     to reduced states (~10^6–10^7) without losing admissibility.
//   - Saturation instead of termination: frontier values clamp to the recipe
//     maxima, so "nearly done" states collapse to one or two points.
//   - Layered fixed point: solutions grow one step budget at a time; a
//     state's frontier only consults children of strictly smaller budget.
//   - Template filtering: equivalence classes whose frontier already
//     saturates both targets are evicted, guarded by a strict under-estimate
//     of the quality their Inner Quiet level has banked.
//
// ⚙️ Usage:
//
//	flag := parmap.NewFlag()
//	solver, err := stepbound.New(settings, flag)
//	if err != nil { ... }
//	defer solver.Close()
//
//	if err := solver.Precompute(); err != nil { ... }
//
//	bound, err := solver.StepLowerBound(state, 1)
//
// Concurrency:
//
//	Exactly one layer runs at a time; within a layer the instantiated states
//	are partitioned across workers that read the solved map without locks
//	(it is immutable during the parallel region) and own a pareto.Builder
//	each. The driver merges results between layers — a happens-before
//	barrier — and polls the cancel flag; a layer cut short by cancellation
//	is discarded whole, so determinism is independent of worker count.
//
// Complexity:
//
//   - Precompute: O(layers · states · combos · front) time; the solved map
//     dominates memory and can reach multi-gigabyte on specialist recipes.
//   - StepLowerBound: O(Δbudget · log front) after precompute.
//
// See solver_test.go for the invariants the package guarantees.
package stepbound
