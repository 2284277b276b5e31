package sim_test

import (
	"fmt"

	"github.com/craftbound/craftbound/sim"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleApply
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Open with Muscle Memory (first step only), buff progress with
//	Veneration, then cash both in with Careful Synthesis:
//	  300%  → 300 progress
//	  150% × (1 + 0.5 veneration + 1.0 muscle memory) → 375 progress
//
// Use case:
//
//	The pure transition function consumed by the bound precompute and the
//	outer macro search alike.
//
// Complexity: O(1) per call.
func ExampleApply() {
	settings := sim.Settings{
		MaxProgress:    4000,
		MaxQuality:     4000,
		MaxDurability:  80,
		MaxCP:          600,
		BaseProgress:   100,
		BaseQuality:    100,
		JobLevel:       100,
		AllowedActions: sim.AllActions,
	}

	state := settings.Initial()
	for _, action := range []sim.Action{sim.MuscleMemory, sim.Veneration, sim.CarefulSynthesis} {
		next, err := sim.Apply(&settings, state, action)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		state = next
	}
	fmt.Printf("progress=%d durability=%d cp=%d\n", state.Progress, state.Durability, state.CP)
	// Output: progress=675 durability=60 cp=569
}
