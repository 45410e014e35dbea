// Package scaling adjusts the server's bot population to the number of
// connected human players, per game mode. The active mode is learned by
// watching which server config file was executed last.
package scaling

import (
	"errors"
	"log"

	"github.com/wartide/garrison/internal/command"
	"github.com/wartide/garrison/internal/cvar"
	"github.com/wartide/garrison/internal/event"
	"github.com/wartide/garrison/internal/event/lifecycle"
)

// Roster is the part of the client roster the controller reads.
type Roster interface {
	NumHumans() int
}

// Recorder receives a copy of every applied plan, e.g. for the round history.
type Recorder interface {
	RecordRound(mode string, humans, enemies, friendlies int)
}

type Config struct {
	Revision Revision
	// DisableOnUnknown writes an explicit bot_count_override 0 when a round
	// starts with an unrecognized mode, instead of leaving the variables
	// untouched. The legacy revision always does this.
	DisableOnUnknown bool
}

// Controller owns the mode state and performs the round start recomputation.
// All methods are called from the server's event loop; the exec interceptor
// is the only writer of the mode state and the round start handler its only
// reader.
type Controller struct {
	cfg      Config
	vars     *cvar.Registry
	roster   Roster
	logger   *log.Logger
	recorder Recorder

	mode ModeState
}

func NewController(cfg Config, vars *cvar.Registry, roster Roster, logger *log.Logger) *Controller {
	return &Controller{
		cfg:    cfg,
		vars:   vars,
		roster: roster,
		logger: logger,
	}
}

func (ctrl *Controller) SetRecorder(r Recorder) { ctrl.recorder = r }

// Register wires the controller into the server: it watches exec commands to
// learn the active mode and recomputes bot counts on every round start.
func (ctrl *Controller) Register(bus *event.Bus, in *command.Interceptors) {
	in.Intercept("exec", ctrl.InterceptExec)
	bus.Subscribe(lifecycle.RoundStart, ctrl.RoundStart)
}

// Mode returns the last observed mode, if any.
func (ctrl *Controller) Mode() (string, bool) { return ctrl.mode.Current() }

// InterceptExec observes an exec command. A matching config file name updates
// the stored mode; anything else is ignored. The command itself is never
// consumed, exec proceeds normally either way.
func (ctrl *Controller) InterceptExec(args string) command.Action {
	if mode, ok := ParseMode(args); ok {
		ctrl.mode.Set(mode)
	}
	return command.Continue
}

// RoundStart recomputes the population plan from the current human player
// count and the stored mode, and writes it to the variable store. Min and max
// are set to the same value on purpose: that pins the exact bot count instead
// of a range.
func (ctrl *Controller) RoundStart() {
	mode, _ := ctrl.mode.Current()
	plan := Compute(ctrl.cfg.Revision, mode, ctrl.roster.NumHumans())

	if !plan.Apply {
		if plan.Disable || ctrl.cfg.DisableOnUnknown {
			ctrl.setInt("bot_count_override", 0)
		}
		return
	}

	ctrl.setInt("bot_count_override", 1)
	ctrl.setInt("bot_count_enemy_min", plan.Enemies)
	ctrl.setInt("bot_count_enemy_max", plan.Enemies)
	ctrl.setInt("bot_count_friendly_min", plan.Friendlies)
	ctrl.setInt("bot_count_friendly_max", plan.Friendlies)
	if plan.SetCaptureTime {
		ctrl.setInt("sv_capture_time", plan.CaptureTime)
	}

	ctrl.logger.Printf("scaling %s for %d players: %d enemy, %d friendly bots", plan.Mode, plan.Humans, plan.Enemies, plan.Friendlies)

	if ctrl.recorder != nil {
		ctrl.recorder.RecordRound(plan.Mode, plan.Humans, plan.Enemies, plan.Friendlies)
	}
}

// setInt writes one variable, skipping it if the engine does not know it.
func (ctrl *Controller) setInt(name string, value int) {
	v, err := ctrl.vars.Find(name)
	if err != nil {
		if errors.Is(err, cvar.ErrNotFound) {
			ctrl.logger.Printf("scaling: skipping %s: %v", name, err)
			return
		}
		ctrl.logger.Printf("scaling: %s: %v", name, err)
		return
	}
	ctrl.vars.SetInt(v, value, false, true)
}
