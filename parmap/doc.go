// Package parmap provides the cooperative cancellation flag and the
// parallel-map facility the bound precompute runs on.
//
// 🚀 What is parmap?
//
//	One layer of the precompute is an embarrassingly parallel map over a set
//	of reduced states, where each worker owns an arena-like scratch object
//	(a pareto.Builder) reused across states. MapInit partitions the work
//	across a pool of goroutines, hands each worker one scratch value from
//	init, and funnels results back to the caller.
//
// ✨ Key features:
//   - per-worker scratch via init — no locking on the hot path
//   - cooperative cancellation through a done channel (channerics.OrDone)
//   - first body error aborts the layer and surfaces via errgroup
//
// ⚙️ Usage:
//
//	flag := parmap.NewFlag()
//	results, err := parmap.MapInit(flag.Done(), states, 0,
//	  func() *pareto.Builder { return pareto.NewBuilder(maxP, maxQ) },
//	  func(b *pareto.Builder, s ReducedState) (Solved, error) { ... },
//	)
//
// Performance:
//
//   - Time:   O(len(items) / workers) given uniform item cost
//   - Memory: one scratch per worker plus the result slice
//
// Result order is unspecified; callers that need determinism must not
// depend on it (the precompute collects results into a map).
package parmap
