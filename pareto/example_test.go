package pareto_test

import (
	"fmt"

	"github.com/craftbound/craftbound/pareto"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuilder
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	From some craft state, two actions are available:
//	  - a synthesis worth (45, 0) on top of a child frontier
//	  - a touch worth (0, 30) on top of the same child frontier
//	The merged frontier holds every non-dominated combined outcome.
//
// Use case:
//
//	The per-state solve of the bound precompute: push child, shift by the
//	action's deltas, merge — repeated for every candidate action.
//
// Complexity: O(n + m) per merge.
func ExampleBuilder() {
	child := []pareto.Value{{Progress: 0, Quality: 30}, {Progress: 45, Quality: 0}}

	b := pareto.NewBuilder(100, 100)
	b.PushEmpty()

	b.PushSlice(child)
	b.ShiftTop(45, 0)
	if err := b.Merge(); err != nil {
		fmt.Println("error:", err)

		return
	}

	b.PushSlice(child)
	b.ShiftTop(0, 30)
	if err := b.Merge(); err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, v := range b.Peek() {
		fmt.Printf("(%d,%d) ", v.Progress, v.Quality)
	}
	// Output: (0,60) (45,30) (90,0)
}
