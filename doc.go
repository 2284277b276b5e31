// Package craftbound computes admissible step lower bounds for a turn-based
// crafting minigame.
//
// 🚀 What is craftbound?
//
//	A deterministic, CPU-bound precompute engine that, for every reachable
//	reduced craft state, materializes a Pareto frontier of (progress, quality)
//	outcomes reachable within a step budget. An outer branch-and-bound macro
//	search consults the frontier as an admissible lower bound on the steps
//	still needed — the tightness of this bound dominates end-to-end solve time.
//
// ✨ Why choose craftbound?
//
//   - Admissible by construction — step bounds never exceed the true minimum
//   - Rock-solid                 — deterministic across runs and worker counts
//   - Parallel                   — layered fixed-point precompute over all cores
//   - Pure Go                    — no cgo, small dependency surface
//
// Under the hood, everything is organized under four subpackages:
//
//	sim/       — effects bitfield, simulation state, action catalog, pure simulator
//	pareto/    — (progress, quality) front algebra: push, shift, dominance merge
//	parmap/    — cooperative cancel flag + parallel map with per-worker scratch
//	stepbound/ — reduced states, templates, layered precompute, bound queries
//
// Quick ASCII example:
//
//	budget 1:  (0,30)───(30,0)
//	budget 2:  (0,63)───(30,30)───(60,0)
//	budget 3:  (0,99)───(30,63)───(60,30)───(90,0)
//
//	each layer grows the frontier by one step; dominated points are pruned.
//
// Dive into the per-package doc.go files for algorithms, invariants, and
// complexity notes.
//
//	go get github.com/craftbound/craftbound
package craftbound
