// Package unlock removes the artificial ceilings and flags the shipped game
// imposes on certain configuration variables, so operators can exceed the
// default limits.
package unlock

import (
	"errors"
	"log"

	"github.com/wartide/garrison/internal/cvar"
	"github.com/wartide/garrison/internal/cvar/cvarflag"
	"github.com/wartide/garrison/internal/event"
	"github.com/wartide/garrison/internal/event/lifecycle"
)

// slotsReserve is subtracted from the server's player slots when computing
// slot-derived bounds, leaving room for human players.
const slotsReserve = 24

// Unlocker applies a fixed batch of bound raises and flag clears. It holds no
// state between applications; Apply is idempotent.
type Unlocker struct {
	vars       *cvar.Registry
	batch      Batch
	maxClients int
	logger     *log.Logger
}

func New(vars *cvar.Registry, batch Batch, maxClients int, logger *log.Logger) *Unlocker {
	return &Unlocker{
		vars:       vars,
		batch:      batch,
		maxClients: maxClients,
		logger:     logger,
	}
}

// Register subscribes the unlocker to every lifecycle event on which the
// engine may have reset variables to their shipped defaults. Reapplying each
// time is intentional.
func (u *Unlocker) Register(bus *event.Bus) {
	for _, e := range []lifecycle.Event{
		lifecycle.ServerSpawn,
		lifecycle.GameInit,
		lifecycle.GameStart,
		lifecycle.NewMap,
	} {
		bus.Subscribe(e, u.Apply)
	}
}

// Apply runs both sub-batches. A missing variable is skipped with a log line;
// it never aborts the rest of the batch.
func (u *Unlocker) Apply() {
	for _, b := range u.batch.Bounds {
		v, err := u.vars.Find(b.Cvar)
		if err != nil {
			u.skip(b.Cvar, err)
			continue
		}
		max := b.Max
		if b.FromSlots {
			max = float64(u.maxClients - slotsReserve)
			if max < 0 {
				max = 0
			}
		}
		v.SetUpperBound(true, max)
	}

	for _, f := range u.batch.Flags {
		v, err := u.vars.Find(f.Cvar)
		if err != nil {
			u.skip(f.Cvar, err)
			continue
		}
		flag, err := cvarflag.Parse(f.Flag)
		if err != nil {
			u.logger.Printf("unlock: %s: %v", f.Cvar, err)
			continue
		}
		v.SetFlags(v.Flags().Clear(flag))
	}
}

func (u *Unlocker) skip(name string, err error) {
	if errors.Is(err, cvar.ErrNotFound) {
		u.logger.Printf("unlock: skipping %s: %v", name, err)
		return
	}
	u.logger.Printf("unlock: %s: %v", name, err)
}
