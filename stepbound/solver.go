package stepbound

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/craftbound/craftbound/parmap"
	"github.com/craftbound/craftbound/pareto"
	"github.com/craftbound/craftbound/sim"
)

var log = commonlog.GetLogger("craftbound.stepbound")

// Solver precomputes, for every reachable reduced state, the Pareto frontier
// of (progress, quality) outcomes achievable within its step budget, and
// answers admissible bound queries against it.
//
// Lifecycle: Constructed → Precomputing (one Precompute call) → Ready.
// Bound queries are valid for any state whose reduction and budget the
// precompute covered; Close logs runtime statistics.
type Solver struct {
	settings  sim.Settings
	flag      *parmap.Flag
	solved    map[ReducedState][]pareto.Value
	templates []Template

	iqQualityLUT     [11]uint32
	largestPIncrease uint32

	workers     int
	maxBudget   uint8
	precomputed bool
}

// New builds a solver for the given recipe settings. The settings are
// normalized once: adversarial evaluation is disabled (admissibility only
// requires optimistic evaluation) and the action mask is pruned of dominated
// actions. Template enumeration runs eagerly; the heavy lifting waits for
// Precompute.
func New(settings sim.Settings, flag *parmap.Flag, opts ...Option) (*Solver, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSettings, err)
	}
	if flag == nil {
		flag = parmap.NewFlag()
	}

	settings = OptimizeActionMask(settings)

	s := &Solver{
		settings:         settings,
		flag:             flag,
		solved:           make(map[ReducedState][]pareto.Value),
		iqQualityLUT:     computeIQQualityLUT(&settings),
		largestPIncrease: largestProgressIncrease(&settings),
		maxBudget:        maxStepBudget,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.templates = generateTemplates(&s.settings)

	return s, nil
}

// solvedEntry pairs a reduced state with its finished frontier for the
// parallel layer collection.
type solvedEntry struct {
	state ReducedState
	front []pareto.Value
}

// Precompute grows solutions one step-budget layer at a time until every
// template's frontier saturates the recipe targets, the budget ceiling is
// reached, or the cancel flag fires. Returns ErrInterrupted on cancellation;
// partial results for budgets already covered remain queryable. Subsequent
// calls are no-ops.
func (s *Solver) Precompute() error {
	if s.precomputed {
		return nil
	}
	s.precomputed = true

	for budget := uint8(1); len(s.templates) > 0; {
		if s.flag.IsSet() {
			return ErrInterrupted
		}
		if err := s.precomputeLayer(budget); err != nil {
			return err
		}
		if err := s.filterTemplates(budget); err != nil {
			return err
		}
		log.Debugf("layer %d: templates=%d solved=%d", budget, len(s.templates), len(s.solved))
		if budget == s.maxBudget {
			break
		}
		budget++
	}

	return nil
}

// precomputeLayer instantiates every alive template at the given budget,
// deduplicates the resulting reduced states (effect clamping merges many
// templates at low budgets), and solves them in parallel. Workers only read
// s.solved — the map is immutable during the parallel region; new entries
// merge afterwards on the driver goroutine. A layer interrupted by the
// cancel flag is discarded whole so the layering invariant holds.
func (s *Solver) precomputeLayer(budget uint8) error {
	dedup := make(map[ReducedState]struct{}, len(s.templates))
	states := make([]ReducedState, 0, len(s.templates))
	for _, template := range s.templates {
		state := template.Instantiate(budget)
		if _, ok := dedup[state]; ok {
			continue
		}
		dedup[state] = struct{}{}
		states = append(states, state)
	}

	entries, err := parmap.MapInit(s.flag.Done(), states, s.workers,
		func() *pareto.Builder {
			return pareto.NewBuilder(s.settings.MaxProgress, s.settings.MaxQuality)
		},
		func(builder *pareto.Builder, state ReducedState) (solvedEntry, error) {
			front, err := s.solveState(builder, state)
			if err != nil {
				return solvedEntry{}, err
			}

			return solvedEntry{state: state, front: front}, nil
		},
	)
	if err != nil {
		return err
	}
	if s.flag.IsSet() {
		return ErrInterrupted
	}

	for _, entry := range entries {
		s.solved[entry.state] = entry.front
	}

	return nil
}

// solveState computes the frontier for one reduced state using only children
// of strictly smaller budget, which previous layers already solved. The
// running merge keeps the top of the builder stack equal to the best
// frontier seen so far; the "do nothing" frontier [(0,0)] is always valid.
func (s *Solver) solveState(builder *pareto.Builder, state ReducedState) ([]pareto.Value, error) {
	builder.Clear()
	builder.PushEmpty()

	full := state.ToState()
	for _, combo := range sim.FullSearchCombos {
		if state.StepsBudget < combo.Steps() {
			continue
		}
		newBudget := state.StepsBudget - combo.Steps()
		next, err := sim.UseCombo(&s.settings, full, combo)
		if err != nil {
			continue
		}
		dp, dq := next.Progress, next.Quality
		if newBudget > 0 && next.Durability > 0 {
			child := FromState(next, newBudget)
			front, ok := s.solved[child]
			if !ok {
				if child.Effects.AllowQualityActions() {
					return nil, fmt.Errorf(
						"%w: missing child frontier (parent=%+v child=%+v combo=%s)",
						ErrInternal, state, child, combo)
				}
				// Quality-disabled states are filtered as soon as they
				// saturate progress alone; a missing one must already have
				// reached max progress at a lower budget.
				front = []pareto.Value{{Progress: s.settings.MaxProgress}}
			}
			builder.PushSlice(front)
			builder.ShiftTop(dp, dq)
			if err := builder.Merge(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInternal, err)
			}
		} else if dp > 0 {
			builder.PushSlice([]pareto.Value{{Progress: dp, Quality: dq}})
			if err := builder.Merge(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInternal, err)
			}
		}
	}

	return builder.CloneTop(), nil
}

// filterTemplates drops templates whose frontier at the current budget
// already saturates both the progress target and the quality the template
// could still need. Frontiers are progress-sorted, so the last point carries
// the maximum progress; its quality is compared against the target minus the
// quality the state's Inner Quiet level has provably banked
// (under-estimated — see computeIQQualityLUT).
func (s *Solver) filterTemplates(budget uint8) error {
	alive := s.templates[:0]
	for _, template := range s.templates {
		state := template.Instantiate(budget)
		front, ok := s.solved[state]
		if !ok || len(front) == 0 {
			return fmt.Errorf("%w: template frontier missing at budget %d (%+v)",
				ErrInternal, budget, template)
		}
		last := front[len(front)-1]

		var maxNeededQuality uint32
		if state.Effects.AllowQualityActions() {
			banked := s.iqQualityLUT[state.Effects.InnerQuiet()]
			if banked < s.settings.MaxQuality {
				maxNeededQuality = s.settings.MaxQuality - banked
			}
		}

		if last.Progress < s.settings.MaxProgress || last.Quality < maxNeededQuality {
			alive = append(alive, template)
		}
	}
	s.templates = alive

	return nil
}

// RuntimeStats reports the solved-state and Pareto-value counts.
func (s *Solver) RuntimeStats() RuntimeStats {
	stats := RuntimeStats{ParallelStates: len(s.solved)}
	for _, front := range s.solved {
		stats.ParetoValues += len(front)
	}

	return stats
}

// Close logs runtime statistics. The solver owns no OS resources; Close
// exists so callers can account for the precompute working set on teardown.
func (s *Solver) Close() {
	stats := s.RuntimeStats()
	log.Debugf("solver closed: states=%d values=%d", stats.ParallelStates, stats.ParetoValues)
}
