// Package sim provides the pure crafting simulator: the bit-packed effects
// encoding, simulation state and settings, the static action catalog, and the
// single-step transition function Apply.
//
// 🚀 What is sim?
//
//	The crafting minigame evolves a (durability, CP, progress, quality,
//	effects) state under a fixed catalog of actions. Apply is a pure function
//	with no hidden state: given settings, a state, and an action it either
//	returns the successor state or a sentinel error explaining why the action
//	cannot be used.
//
// ✨ Key properties:
//   - Effects is a plain uint32 value — hashable, comparable, canonical
//     zero encoding for every inactive field
//   - Apply is total over valid inputs and never mutates its arguments
//   - compound actions (touch combos) are expanded atomically by UseCombo
//   - deterministic: no RNG, no wall clock, no global state
//
// ⚙️ Usage:
//
//	import "github.com/craftbound/craftbound/sim"
//
//	settings := sim.Settings{
//	  MaxProgress:   2000,
//	  MaxQuality:    5000,
//	  MaxDurability: 80,
//	  MaxCP:         600,
//	  BaseProgress:  240,
//	  BaseQuality:   290,
//	  JobLevel:      100,
//	  AllowedActions: sim.AllActions,
//	}
//	state := settings.Initial()
//	next, err := sim.Apply(&settings, state, sim.BasicSynthesis)
//
// Performance:
//
//   - Time:   O(1) per Apply call
//   - Memory: zero allocations on the hot path
//
// See examples in example_test.go.
package sim
