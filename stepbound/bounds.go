package stepbound

import (
	"fmt"
	"math"
	"sort"

	"github.com/craftbound/craftbound/sim"
)

// Unreachable is the StepLowerBound result for states that can never reach
// the quality target: the bound is infinity in a uint8.
const Unreachable = uint8(math.MaxUint8)

// StepLowerBound returns an admissible lower bound on the number of steps
// needed to bring state to the quality target, never less than hint.
//
// The search walks budgets upward from max(hint, 1) until QualityUpperBound
// certifies the target is reachable; because the frontier at budget b holds
// every Pareto-optimal outcome of b steps, the first sufficient budget is a
// true lower bound. States that can no longer produce quality while short of
// the target are Unreachable outright.
//
// Errors: ErrUnknownState (wrapped ErrInternal) when a queried budget was
// not covered by the precompute — expected after cancellation, fatal
// otherwise.
func (s *Solver) StepLowerBound(state sim.SimulationState, hint uint8) (uint8, error) {
	if !state.Effects.AllowQualityActions() && state.Quality < s.settings.MaxQuality {
		return Unreachable, nil
	}

	budget := hint
	if budget == 0 {
		budget = 1
	}
	for {
		ub, ok, err := s.QualityUpperBound(state, budget)
		if err != nil {
			return 0, err
		}
		if ok && ub >= s.settings.MaxQuality {
			return budget, nil
		}
		if budget == maxStepBudget {
			// The frontier saturated below the target: no step count helps.
			return Unreachable, nil
		}
		budget++
	}
}

// QualityUpperBound returns an admissible upper bound on the quality
// reachable from state within the given step budget, provided the progress
// target can also be met. ok reports whether any frontier point satisfies
// the remaining progress requirement.
//
// Muscle Memory is single-use and only augments the next progress action;
// the shortcut assumes it is spent perfectly — the largest single-action
// progress increase is deducted from the requirement and the counter is
// cleared before reduction. Over-optimistic, therefore still admissible,
// and it removes a whole state dimension from the precompute.
func (s *Solver) QualityUpperBound(state sim.SimulationState, budget uint8) (uint32, bool, error) {
	if budget == 0 {
		return 0, false, fmt.Errorf("%w: zero step budget", ErrInternal)
	}

	var requiredProgress uint32
	if state.Progress < s.settings.MaxProgress {
		requiredProgress = s.settings.MaxProgress - state.Progress
	}
	if state.Effects.MuscleMemory() > 0 {
		if requiredProgress > s.largestPIncrease {
			requiredProgress -= s.largestPIncrease
		} else {
			requiredProgress = 0
		}
		state.Effects = state.Effects.WithMuscleMemory(0)
	}

	reduced := FromState(state, budget)
	front, ok := s.solved[reduced]
	if !ok {
		return 0, false, fmt.Errorf("%w: %w (budget=%d)", ErrInternal, ErrUnknownState, budget)
	}

	idx := sort.Search(len(front), func(i int) bool {
		return front[i].Progress >= requiredProgress
	})
	if idx == len(front) {
		return 0, false, nil
	}

	return state.Quality + front[idx].Quality, true, nil
}
