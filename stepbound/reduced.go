package stepbound

import (
	"math"

	"github.com/craftbound/craftbound/sim"
)

// ReducedState is the equivalence class a full simulation state collapses
// to: durability, canonicalized effects, and the remaining step budget.
// CP, progress, and quality are erased — the Pareto frontier captures them.
// The zero StepsBudget is invalid; FromState and Instantiate enforce >= 1.
type ReducedState struct {
	Durability  uint16
	Effects     sim.Effects
	StepsBudget uint8
}

// Template is the budget-independent half of a ReducedState: the reachable
// equivalence-class skeleton enumerated once per solver.
type Template struct {
	Durability uint16
	Effects    sim.Effects
}

// FromState canonicalizes a full state into its equivalence class:
//
//  1. the adversarial guard is cleared — the precompute evaluates
//     optimistically, which is all admissibility requires;
//  2. the combo tag is forced to ComboNone — combos are enumerated as
//     atomic chains, so a stale tag only splits equivalence classes;
//  3. every turn counter is clamped to the step budget — a buff outliving
//     the horizon is indistinguishable from one that expires exactly on it;
//  4. quality-disabled states drop their quality-only counters and stacks.
//
// The function is total and idempotent.
func FromState(state sim.SimulationState, budget uint8) ReducedState {
	if budget == 0 {
		budget = 1
	}

	return ReducedState{
		Durability:  state.Durability,
		Effects:     normalizeEffects(state.Effects, budget),
		StepsBudget: budget,
	}
}

// Instantiate attaches a step budget to the template skeleton.
func (t Template) Instantiate(budget uint8) ReducedState {
	return FromState(sim.SimulationState{Durability: t.Durability, Effects: t.Effects}, budget)
}

// ToState re-inflates the equivalence class into a full state. CP is set to
// its optimistic maximum: the reduction assumes CP is free, and the outer
// search re-adds the true CP budget through the step counter. Progress and
// quality start at zero; the frontier holds the deltas.
func (r ReducedState) ToState() sim.SimulationState {
	return sim.SimulationState{
		Durability: r.Durability,
		CP:         math.MaxUint16,
		Effects:    r.Effects,
	}
}

func normalizeEffects(fx sim.Effects, budget uint8) sim.Effects {
	fx = fx.WithAdversarialGuard(false).WithCombo(sim.ComboNone)
	fx = clampTimers(fx, budget)
	if !fx.AllowQualityActions() {
		fx = fx.WithInnerQuiet(0).WithInnovation(0).WithGreatStrides(0)
	}

	return fx
}

func clampTimers(fx sim.Effects, budget uint8) sim.Effects {
	if fx.Innovation() > budget {
		fx = fx.WithInnovation(budget)
	}
	if fx.Veneration() > budget {
		fx = fx.WithVeneration(budget)
	}
	if fx.GreatStrides() > budget {
		fx = fx.WithGreatStrides(budget)
	}
	if fx.MuscleMemory() > budget {
		fx = fx.WithMuscleMemory(budget)
	}
	if fx.WasteNot() > budget {
		fx = fx.WithWasteNot(budget)
	}
	if fx.Manipulation() > budget {
		fx = fx.WithManipulation(budget)
	}

	return fx
}

// OptimizeActionMask prunes provably dominated actions from the settings'
// mask and clears the adversarial flag. Monotone: if A dominates B under the
// CP-erased reduction and both are allowed, removing B preserves the
// optimum. Applied once per solver lifetime, at construction.
func OptimizeActionMask(settings sim.Settings) sim.Settings {
	settings.Adversarial = false
	mask := settings.AllowedActions & sim.AllActions

	for a := sim.Action(0); a < sim.NumActions; a++ {
		if mask.Contains(a) && settings.JobLevel < a.Level() {
			mask = mask.Without(a)
		}
	}

	// A zero quality target makes every quality-only action a no-op.
	if settings.MaxQuality == 0 {
		for _, a := range []sim.Action{
			sim.BasicTouch, sim.StandardTouch, sim.AdvancedTouch,
			sim.PrudentTouch, sim.PreparatoryTouch, sim.RefinedTouch,
			sim.TrainedFinesse, sim.ByregotsBlessing, sim.Reflect,
			sim.Innovation, sim.GreatStrides, sim.QuickInnovation,
		} {
			mask = mask.Without(a)
		}
	}

	// CP is erased in the reduced space, so CarefulSynthesis (same
	// durability, same step, higher efficiency, no effect grants on either
	// side) strictly dominates BasicSynthesis.
	if mask.Contains(sim.BasicSynthesis) && mask.Contains(sim.CarefulSynthesis) {
		mask = mask.Without(sim.BasicSynthesis)
	}

	settings.AllowedActions = mask

	return settings
}
