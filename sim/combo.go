package sim

// ActionCombo is a short fixed sequence of actions charged atomically: either
// the whole sequence applies, or none of it does. Multi-action combos let the
// bound solver treat discounted touch chains as single candidates instead of
// tracking the combo tag across reduced states — chains always run complete,
// from a cold combo, so mid-chain states never need to be represented.
type ActionCombo struct {
	actions [3]Action
	n       uint8
}

// Single wraps one catalog action.
func Single(a Action) ActionCombo {
	return ActionCombo{actions: [3]Action{a}, n: 1}
}

// Pair wraps a two-action combo chain.
func Pair(a, b Action) ActionCombo {
	return ActionCombo{actions: [3]Action{a, b}, n: 2}
}

// Triple wraps a three-action combo chain.
func Triple(a, b, c Action) ActionCombo {
	return ActionCombo{actions: [3]Action{a, b, c}, n: 3}
}

// Steps returns the number of turns the combo consumes.
func (c ActionCombo) Steps() uint8 { return c.n }

// Actions returns the constituent actions in execution order.
func (c ActionCombo) Actions() []Action { return c.actions[:c.n] }

// String renders the combo for diagnostics.
func (c ActionCombo) String() string {
	s := c.actions[0].String()
	for _, a := range c.actions[1:c.n] {
		s += "+" + a.String()
	}

	return s
}

// FullSearchCombos is the solver's candidate list: every catalog single plus
// the discounted touch chains. Order follows the catalog, chains last, so
// enumeration is deterministic.
var FullSearchCombos = func() []ActionCombo {
	combos := make([]ActionCombo, 0, int(numActions)+4)
	for a := Action(0); a < numActions; a++ {
		combos = append(combos, Single(a))
	}
	combos = append(combos,
		Pair(BasicTouch, StandardTouch),
		Triple(BasicTouch, StandardTouch, AdvancedTouch),
		Pair(Observe, AdvancedTouch),
		Pair(BasicTouch, RefinedTouch),
	)

	return combos
}()

// UseCombo applies every constituent of combo in order via Apply. The first
// failure aborts the whole combo and returns the original state untouched.
func UseCombo(settings *Settings, state SimulationState, combo ActionCombo) (SimulationState, error) {
	next := state
	var err error
	for _, action := range combo.Actions() {
		next, err = Apply(settings, next, action)
		if err != nil {
			return state, err
		}
	}

	return next, nil
}
