package scaling

// MaxPopulation is the hard bot population ceiling imposed by the engine.
// Enemy and friendly counts are clamped to it individually and jointly.
const MaxPopulation = 32

// Revision selects which historical formula set is in effect.
type Revision int32

const (
	// RevisionCurrent scales stronghold, raid and entrenchment and leaves
	// unrecognized modes alone.
	RevisionCurrent Revision = iota
	// RevisionLegacy scales only stronghold (steeper enemy growth), adjusts
	// the round capture time with the player count, and explicitly disables
	// the bot count override in every other mode.
	RevisionLegacy
)

func (r Revision) String() string {
	if r == RevisionLegacy {
		return "legacy"
	}
	return "current"
}

// Plan is the population plan for one round, computed fresh on every round
// start and never cached.
type Plan struct {
	Mode   string
	Humans int

	Enemies    int
	Friendlies int

	CaptureTime    int // seconds
	SetCaptureTime bool

	// Apply means a scaling branch matched and the bot counts are to be
	// written. Disable means the plan asks for an explicit override-off
	// write instead.
	Apply   bool
	Disable bool
}

// Compute derives the population plan for the given mode and human player
// count. It is a pure function; clamping guarantees the plan never exceeds
// the population ceiling, whatever the inputs.
func Compute(rev Revision, mode string, humans int) Plan {
	if humans < 0 {
		humans = 0
	}
	p := Plan{Mode: mode, Humans: humans}

	if rev == RevisionLegacy {
		if mode != ModeStronghold {
			p.Disable = true
			return p
		}
		p.Enemies = clampPop(3 + 3*humans)
		p.Friendlies = clampPop(min(5+humans, MaxPopulation-p.Enemies))
		p.CaptureTime = 180 + 30*humans
		p.SetCaptureTime = true
		p.Apply = true
		return p
	}

	var enemyBase, friendlyBase int
	switch mode {
	case ModeStronghold, ModeRaid:
		enemyBase, friendlyBase = 3, 5
	case ModeEntrenchment:
		enemyBase, friendlyBase = 6, 3
	default:
		return p
	}

	p.Enemies = clampPop(enemyBase + 2*humans)
	p.Friendlies = clampPop(min(friendlyBase+humans, MaxPopulation-p.Enemies))
	p.Apply = true
	return p
}

func clampPop(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxPopulation {
		return MaxPopulation
	}
	return n
}
