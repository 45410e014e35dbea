package scaling

// Modes with scaling formulas attached.
const (
	ModeStronghold   = "stronghold"
	ModeRaid         = "raid"
	ModeEntrenchment = "entrenchment"
)

// ModeState holds the last game mode observed via an exec command. The state
// is sticky: once a mode has been seen it is only ever replaced by another
// mode, never cleared. A round start without an intervening exec reuses the
// stored mode.
type ModeState struct {
	current string
	known   bool
}

func (ms *ModeState) Current() (string, bool) { return ms.current, ms.known }

func (ms *ModeState) Set(mode string) {
	ms.current, ms.known = mode, true
}
