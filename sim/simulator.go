package sim

// Apply executes one action on state and returns the successor state.
// It is a pure function: neither argument is mutated, no hidden state exists.
//
// Validation order (first failure wins):
//  1. action permitted by settings.AllowedActions (ErrActionNotAllowed)
//  2. settings.JobLevel meets the action requirement (ErrLevelTooLow)
//  3. craft still alive: durability > 0 (ErrNoDurability)
//  4. first-step-only actions require the SynthesisBegin combo (ErrComboRequired)
//  5. once-per-craft gauges still charged (ErrAlreadyUsed)
//  6. Inner Quiet preconditions (ErrNoInnerQuiet)
//  7. prudent actions blocked during Waste Not (ErrWasteNotActive)
//  8. quality actions blocked on quality-disabled states (ErrQualityDisabled)
//  9. CP cost payable after combo discounts (ErrNotEnoughCP)
//
// Complexity: O(1), zero allocations.
func Apply(settings *Settings, state SimulationState, action Action) (SimulationState, error) {
	if action >= numActions || !settings.AllowedActions.Contains(action) {
		return state, ErrActionNotAllowed
	}
	data := &actionTable[action]
	if settings.JobLevel < data.level {
		return state, ErrLevelTooLow
	}
	if state.Durability == 0 {
		return state, ErrNoDurability
	}
	fx := state.Effects
	if data.firstStep && fx.ComboTag() != ComboSynthesisBegin {
		return state, ErrComboRequired
	}
	if data.oncePer {
		switch action {
		case TrainedPerfection:
			if !fx.TrainedPerfectionAvailable() {
				return state, ErrAlreadyUsed
			}
		case HeartAndSoul:
			if !fx.HeartAndSoulAvailable() {
				return state, ErrAlreadyUsed
			}
		case QuickInnovation:
			if !fx.QuickInnovationAvailable() {
				return state, ErrAlreadyUsed
			}
		}
	}
	if data.needsIQ && fx.InnerQuiet() == 0 {
		return state, ErrNoInnerQuiet
	}
	if data.needsMaxIQ && fx.InnerQuiet() != 10 {
		return state, ErrNoInnerQuiet
	}
	if data.noWasteNot && fx.WasteNot() > 0 {
		return state, ErrWasteNotActive
	}
	if data.qualEff > 0 && !fx.AllowQualityActions() {
		return state, ErrQualityDisabled
	}

	cpCost := comboCPCost(action, fx.ComboTag())
	if cpCost > state.CP {
		return state, ErrNotEnoughCP
	}

	durCost := durabilityCost(data, fx)

	// Progress delta. Groundwork-style actions lose half their efficiency
	// when the remaining durability cannot cover the full cost.
	progEff := data.progEff
	if action == Groundwork && uint32(state.Durability) < uint32(durCost) {
		progEff /= 2
	}
	var progressDelta uint32
	if progEff > 0 {
		mult := uint64(100)
		if fx.Veneration() > 0 {
			mult += 50
		}
		if fx.MuscleMemory() > 0 {
			mult += 100
			fx = fx.WithMuscleMemory(0)
		}
		progressDelta = uint32(uint64(settings.BaseProgress) * uint64(progEff) * mult / (100 * 100))
	}

	// Quality delta. Inner Quiet scales the base; Innovation and Great
	// Strides stack additively on top.
	qualEff := uint64(data.qualEff)
	if action == ByregotsBlessing {
		qualEff = 100 + 20*uint64(fx.InnerQuiet())
	}
	var qualityDelta uint32
	if qualEff > 0 {
		mult := uint64(100)
		if fx.Innovation() > 0 {
			mult += 50
		}
		if fx.GreatStrides() > 0 {
			mult += 100
			fx = fx.WithGreatStrides(0)
		}
		iq := uint64(fx.InnerQuiet())
		qualityDelta = uint32(uint64(settings.BaseQuality) * qualEff * (10 + iq) * mult / (100 * 10 * 100))
	}

	next := state
	next.CP -= cpCost
	if durCost >= next.Durability {
		next.Durability = 0
	} else {
		next.Durability -= durCost
	}
	next.Progress += progressDelta
	next.Quality += qualityDelta

	// Inner Quiet grants. Byregots spends the whole stack.
	if action == ByregotsBlessing {
		fx = fx.WithInnerQuiet(0)
	} else if grant := iqGrant(action, state.Effects.ComboTag()); grant > 0 && fx.AllowQualityActions() {
		fx = fx.WithInnerQuiet(fx.InnerQuiet() + grant)
	}

	fx = fx.TickTimers()
	fx = applyGrants(action, data, fx)

	// Durability restoration and Manipulation regen, only while the craft
	// survives.
	if next.Durability > 0 {
		if data.restoreFull {
			next.Durability = settings.MaxDurability
		} else if data.restore > 0 {
			next.Durability = minDurability(next.Durability+data.restore, settings.MaxDurability)
		}
		if action != Manipulation && state.Effects.Manipulation() > 0 {
			next.Durability = minDurability(next.Durability+5, settings.MaxDurability)
		}
	}

	fx = fx.WithCombo(nextCombo(action, state.Effects.ComboTag()))
	next.Effects = fx

	return next, nil
}

// comboCPCost returns the CP cost of action given the in-flight combo.
func comboCPCost(action Action, combo Combo) uint16 {
	switch {
	case action == StandardTouch && combo == ComboBasicTouch:
		return 18
	case action == AdvancedTouch && combo == ComboStandardTouch:
		return 18
	default:
		return actionTable[action].cp
	}
}

// durabilityCost resolves the base cost against Trained Perfection and
// Waste Not. Trained Perfection waives the first nonzero cost entirely.
func durabilityCost(data *actionData, fx Effects) uint16 {
	if data.durability == 0 {
		return 0
	}
	if fx.TrainedPerfectionActive() {
		return 0
	}
	if fx.WasteNot() > 0 {
		return (data.durability + 1) / 2
	}

	return data.durability
}

// iqGrant returns the Inner Quiet stacks granted by action; RefinedTouch
// grants double when comboed from BasicTouch.
func iqGrant(action Action, combo Combo) uint8 {
	grant := actionTable[action].iqGrant
	if action == RefinedTouch && combo == ComboBasicTouch {
		grant = 2
	}

	return grant
}

// applyGrants writes the action's buff grants and gauge transitions into fx.
// Runs after TickTimers so a fresh buff keeps its full duration.
func applyGrants(action Action, data *actionData, fx Effects) Effects {
	if data.innovation > 0 && data.innovation > fx.Innovation() {
		fx = fx.WithInnovation(data.innovation)
	}
	if data.veneration > 0 {
		fx = fx.WithVeneration(data.veneration)
	}
	if data.greatStrides > 0 {
		fx = fx.WithGreatStrides(data.greatStrides)
	}
	if data.muscleMemory > 0 {
		fx = fx.WithMuscleMemory(data.muscleMemory)
	}
	if data.wasteNot > 0 {
		fx = fx.WithWasteNot(data.wasteNot)
	}
	if data.manipulation > 0 {
		fx = fx.WithManipulation(data.manipulation)
	}
	switch action {
	case TrainedPerfection:
		fx = fx.WithTrainedPerfectionAvailable(false).WithTrainedPerfectionActive(true)
	case HeartAndSoul:
		fx = fx.WithHeartAndSoulAvailable(false).WithHeartAndSoulActive(true)
	case QuickInnovation:
		fx = fx.WithQuickInnovationAvailable(false)
	}
	if actionTable[action].durability > 0 && fx.TrainedPerfectionActive() {
		fx = fx.WithTrainedPerfectionActive(false)
	}

	return fx
}

// nextCombo computes the combo tag after action. Any action outside the
// recognized continuations breaks the chain.
func nextCombo(action Action, prev Combo) Combo {
	switch action {
	case BasicTouch:
		return ComboBasicTouch
	case StandardTouch:
		if prev == ComboBasicTouch {
			return ComboStandardTouch
		}

		return ComboNone
	case Observe:
		return ComboStandardTouch
	default:
		return ComboNone
	}
}

func minDurability(a, b uint16) uint16 {
	if a < b {
		return a
	}

	return b
}
