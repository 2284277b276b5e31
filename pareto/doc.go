// Package pareto implements the (progress, quality) front algebra used by
// the bound precompute: push, shift, and dominance-pruned merge over a
// scratch stack of fronts.
//
// 🚀 What is a front?
//
//	A finite sequence of (progress, quality) points sorted so progress is
//	strictly increasing and quality is strictly decreasing — no point
//	dominates another. The sort order is the invariant every downstream
//	algorithm exploits: the last point always carries the maximum progress,
//	and a binary search by progress answers "best quality at threshold".
//
// ✨ Key features:
//   - two-pointer linear-time dominance merge
//   - saturation: progress and quality clamp to the recipe maxima before
//     pruning, collapsing "nearly done" fronts to one or two points
//   - arena-like scratch stack reused across millions of solves — one
//     Builder per worker, zero steady-state allocations
//
// ⚙️ Usage:
//
//	b := pareto.NewBuilder(maxProgress, maxQuality)
//	b.PushEmpty()            // [(0,0)] — the "do nothing" option
//	b.PushSlice(childFront)  // a solved child frontier
//	b.ShiftTop(dp, dq)       // add the action's deltas to every point
//	b.Merge()                // dominance-pruned union of the top two fronts
//	front := b.CloneTop()    // owned, immutable result
//
// Performance:
//
//   - Time:   O(n + m) per Merge, O(n) per ShiftTop
//   - Memory: amortized zero allocations; the stack grows to the high-water
//     mark of the largest solve and is reused via Clear
//
// The Builder is per-worker scratch and must not be shared across goroutines.
package pareto
