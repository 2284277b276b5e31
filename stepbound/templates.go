package stepbound

import "github.com/craftbound/craftbound/sim"

// maxStepBudget is the deepest representable layer; step budgets are uint8.
const maxStepBudget = uint8(255)

// generateTemplates enumerates the reachable equivalence-class skeleton by
// BFS from the seed template (max durability, initial effects canonicalized).
// Each dequeued template is instantiated with an effectively infinite step
// budget and expanded through every candidate combo; children that survive
// with positive durability are reduced back to templates and enqueued once.
//
// Termination: the seen-set bounds the walk by the finite
// (durability, effects) space.
//
// Complexity: O(T · C) simulator calls for T reachable templates and C
// candidate combos; O(T) memory.
func generateTemplates(settings *sim.Settings) []Template {
	seed := Template{
		Durability: settings.MaxDurability,
		Effects:    normalizeEffects(settings.Initial().Effects, maxStepBudget),
	}

	seen := map[Template]struct{}{seed: {}}
	queue := []Template{seed}
	order := []Template{seed}

	for len(queue) > 0 {
		template := queue[0]
		queue = queue[1:]

		state := template.Instantiate(maxStepBudget).ToState()
		for _, combo := range sim.FullSearchCombos {
			next, err := sim.UseCombo(settings, state, combo)
			if err != nil {
				continue
			}
			child := FromState(next, maxStepBudget)
			if child.Durability == 0 {
				continue
			}
			candidate := Template{Durability: child.Durability, Effects: child.Effects}
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			queue = append(queue, candidate)
			order = append(order, candidate)
		}
	}

	return order
}
