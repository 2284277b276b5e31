package sim

// Action identifies one entry of the static catalog.
type Action uint8

// The catalog. Order is load-bearing: ActionMask bits and the solver's
// deterministic candidate enumeration both follow it.
const (
	BasicSynthesis Action = iota
	CarefulSynthesis
	PrudentSynthesis
	Groundwork
	DelicateSynthesis
	MuscleMemory
	Veneration
	BasicTouch
	StandardTouch
	AdvancedTouch
	PrudentTouch
	PreparatoryTouch
	RefinedTouch
	TrainedFinesse
	ByregotsBlessing
	Innovation
	GreatStrides
	Observe
	MasterMend
	ImmaculateMend
	Manipulation
	WasteNot
	WasteNot2
	Reflect
	TrainedPerfection
	HeartAndSoul
	QuickInnovation

	numActions
)

// NumActions is the catalog size; valid actions are 0..NumActions-1.
const NumActions = numActions

// ActionMask is a bit set over the catalog.
type ActionMask uint32

// AllActions permits the entire catalog.
const AllActions ActionMask = 1<<numActions - 1

// Mask builds an ActionMask from individual actions.
func Mask(actions ...Action) ActionMask {
	var m ActionMask
	for _, a := range actions {
		m |= 1 << a
	}

	return m
}

// Contains reports whether a is permitted.
func (m ActionMask) Contains(a Action) bool { return m&(1<<a) != 0 }

// With returns m with a permitted.
func (m ActionMask) With(a Action) ActionMask { return m | 1<<a }

// Without returns m with a removed.
func (m ActionMask) Without(a Action) ActionMask { return m &^ (1 << a) }

// Count returns the number of permitted actions.
func (m ActionMask) Count() int {
	n := 0
	for ; m != 0; m &= m - 1 {
		n++
	}

	return n
}

// actionData is one row of the static catalog.
type actionData struct {
	name       string
	level      uint8  // minimum job level
	cp         uint16 // CP cost (base; combo discounts applied in Apply)
	durability uint16 // base durability cost
	progEff    uint32 // progress efficiency, percent
	qualEff    uint32 // quality efficiency, percent
	iqGrant    uint8  // inner quiet stacks granted on success

	// buff grants, in turns
	innovation   uint8
	veneration   uint8
	greatStrides uint8
	muscleMemory uint8
	wasteNot     uint8
	manipulation uint8

	restore    uint16 // durability restored (ImmaculateMend uses restoreFull)
	firstStep  bool   // requires the SynthesisBegin combo
	oncePer    bool   // consumes a once-per-craft gauge
	needsIQ    bool   // requires inner quiet > 0
	needsMaxIQ bool   // requires inner quiet == 10
	noWasteNot bool   // unusable while Waste Not is active

	restoreFull bool
}

// actionTable holds the per-action cost vectors and effect transforms.
// Efficiencies are flat percentages; level gates still apply.
var actionTable = [numActions]actionData{
	BasicSynthesis:    {name: "BasicSynthesis", level: 1, cp: 0, durability: 10, progEff: 100},
	CarefulSynthesis:  {name: "CarefulSynthesis", level: 62, cp: 7, durability: 10, progEff: 150},
	PrudentSynthesis:  {name: "PrudentSynthesis", level: 88, cp: 18, durability: 5, progEff: 180, noWasteNot: true},
	Groundwork:        {name: "Groundwork", level: 72, cp: 18, durability: 20, progEff: 300},
	DelicateSynthesis: {name: "DelicateSynthesis", level: 76, cp: 32, durability: 10, progEff: 100, qualEff: 100, iqGrant: 1},
	MuscleMemory:      {name: "MuscleMemory", level: 54, cp: 6, durability: 10, progEff: 300, muscleMemory: 5, firstStep: true},
	Veneration:        {name: "Veneration", level: 15, cp: 18, veneration: 4},
	BasicTouch:        {name: "BasicTouch", level: 5, cp: 18, durability: 10, qualEff: 100, iqGrant: 1},
	StandardTouch:     {name: "StandardTouch", level: 18, cp: 32, durability: 10, qualEff: 125, iqGrant: 1},
	AdvancedTouch:     {name: "AdvancedTouch", level: 84, cp: 46, durability: 10, qualEff: 150, iqGrant: 1},
	PrudentTouch:      {name: "PrudentTouch", level: 66, cp: 25, durability: 5, qualEff: 100, iqGrant: 1, noWasteNot: true},
	PreparatoryTouch:  {name: "PreparatoryTouch", level: 71, cp: 40, durability: 20, qualEff: 200, iqGrant: 2},
	RefinedTouch:      {name: "RefinedTouch", level: 92, cp: 24, durability: 10, qualEff: 100, iqGrant: 1},
	TrainedFinesse:    {name: "TrainedFinesse", level: 90, cp: 32, qualEff: 100, needsMaxIQ: true},
	ByregotsBlessing:  {name: "ByregotsBlessing", level: 50, cp: 24, durability: 10, qualEff: 100, needsIQ: true},
	Innovation:        {name: "Innovation", level: 26, cp: 18, innovation: 4},
	GreatStrides:      {name: "GreatStrides", level: 21, cp: 32, greatStrides: 3},
	Observe:           {name: "Observe", level: 13, cp: 7},
	MasterMend:        {name: "MasterMend", level: 7, cp: 88, restore: 30},
	ImmaculateMend:    {name: "ImmaculateMend", level: 98, cp: 112, restoreFull: true},
	Manipulation:      {name: "Manipulation", level: 65, cp: 96, manipulation: 8},
	WasteNot:          {name: "WasteNot", level: 15, cp: 56, wasteNot: 4},
	WasteNot2:         {name: "WasteNot2", level: 47, cp: 98, wasteNot: 8},
	Reflect:           {name: "Reflect", level: 69, cp: 6, durability: 10, qualEff: 300, iqGrant: 2, firstStep: true},
	TrainedPerfection: {name: "TrainedPerfection", level: 100, cp: 0, oncePer: true},
	HeartAndSoul:      {name: "HeartAndSoul", level: 86, cp: 0, oncePer: true},
	QuickInnovation:   {name: "QuickInnovation", level: 96, cp: 0, innovation: 1, oncePer: true},
}

// String returns the catalog name of a.
func (a Action) String() string {
	if a >= numActions {
		return "Action(?)"
	}

	return actionTable[a].name
}

// Level returns the minimum job level for a.
func (a Action) Level() uint8 { return actionTable[a].level }

// CPCost returns the base CP cost of a (combo discounts excluded).
func (a Action) CPCost() uint16 { return actionTable[a].cp }

// DurabilityCost returns the base durability cost of a.
func (a Action) DurabilityCost() uint16 { return actionTable[a].durability }

// ProgressEfficiency returns a's progress efficiency in percent.
func (a Action) ProgressEfficiency() uint32 { return actionTable[a].progEff }

// QualityEfficiency returns a's base quality efficiency in percent.
// ByregotsBlessing scales further with Inner Quiet at apply time.
func (a Action) QualityEfficiency() uint32 { return actionTable[a].qualEff }

// InnerQuietGrant returns the stacks a grants on use (combo bonuses excluded).
func (a Action) InnerQuietGrant() uint8 { return actionTable[a].iqGrant }

// IncreasesProgress reports whether a has a nonzero progress efficiency.
func (a Action) IncreasesProgress() bool { return actionTable[a].progEff > 0 }

// IncreasesQuality reports whether a can produce quality or Inner Quiet.
func (a Action) IncreasesQuality() bool {
	return actionTable[a].qualEff > 0 || actionTable[a].iqGrant > 0
}
