package stepbound

import "github.com/craftbound/craftbound/sim"

// computeIQQualityLUT returns, for each Inner Quiet level 0..=10, a strict
// under-estimate of the quality a state at that level has already banked.
// The template filter subtracts it from the quality target; over-estimating
// would evict templates too early and surface as a missing child during
// precompute, so every transition uses unbuffed, floor-rounded deltas and
// the cheapest stack-granting route wins.
//
// DP over stack grants: lut[k] = min over (action granting g stacks at
// level k-g) of lut[k-g] + minQualityDelta(action, k-g). Unreachable levels
// inherit the previous entry, which only loosens the estimate downward.
func computeIQQualityLUT(settings *sim.Settings) [11]uint32 {
	type grant struct {
		action sim.Action
		stacks uint8
	}
	var grants []grant
	for a := sim.Action(0); a < sim.NumActions; a++ {
		if !settings.AllowedActions.Contains(a) {
			continue
		}
		if g := a.InnerQuietGrant(); g > 0 {
			grants = append(grants, grant{a, g})
		}
		if a == sim.RefinedTouch {
			// Chained from BasicTouch the grant doubles.
			grants = append(grants, grant{a, 2})
		}
	}

	var lut [11]uint32
	for k := 1; k <= 10; k++ {
		best := uint32(0)
		found := false
		for _, g := range grants {
			if int(g.stacks) > k {
				continue
			}
			from := k - int(g.stacks)
			delta := minQualityDelta(settings, g.action, uint8(from))
			if cost := lut[from] + delta; !found || cost < best {
				best = cost
				found = true
			}
		}
		if !found {
			best = lut[k-1]
		}
		lut[k] = best
	}

	return lut
}

// minQualityDelta is the unbuffed, floor-rounded quality produced by action
// at the given Inner Quiet level — the least quality any use can add.
func minQualityDelta(settings *sim.Settings, action sim.Action, iq uint8) uint32 {
	eff := uint64(action.QualityEfficiency())

	return uint32(uint64(settings.BaseQuality) * eff * (10 + uint64(iq)) / (100 * 10))
}

// largestProgressIncrease is the biggest single-action progress delta under
// the most favorable buffs (Veneration and Muscle Memory both active). An
// over-estimate is safe here: it is subtracted from the required progress in
// the Muscle Memory shortcut, which can only raise the upper bound.
func largestProgressIncrease(settings *sim.Settings) uint32 {
	var best uint32
	for a := sim.Action(0); a < sim.NumActions; a++ {
		if !settings.AllowedActions.Contains(a) || !a.IncreasesProgress() {
			continue
		}
		delta := uint32(uint64(settings.BaseProgress) * uint64(a.ProgressEfficiency()) * 250 / (100 * 100))
		if delta > best {
			best = delta
		}
	}

	return best
}
