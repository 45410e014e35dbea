// Package round drives the round lifecycle: it fires a round start on every
// round interval and can be paused between rounds.
package round

import (
	"sync"
	"time"

	"github.com/ivahaev/timer"
)

type Clock struct {
	mu      sync.Mutex
	length  time.Duration
	fire    func()
	t       *timer.Timer
	stopped bool
}

// NewClock returns a stopped clock. fire runs on the timer's goroutine; the
// server wraps it to hand the event off to its own loop.
func NewClock(length time.Duration, fire func()) *Clock {
	return &Clock{
		length: length,
		fire:   fire,
	}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = false
	c.schedule()
}

func (c *Clock) schedule() {
	c.t = timer.AfterFunc(c.length, func() {
		c.fire()
		c.mu.Lock()
		if !c.stopped {
			c.schedule()
		}
		c.mu.Unlock()
	})
	c.t.Start()
}

// Pause holds the current interval; Resume continues with the remaining
// duration.
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.t != nil {
		c.t.Pause()
	}
}

func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.t != nil {
		c.t.Start()
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	if c.t != nil {
		c.t.Stop()
		c.t = nil
	}
}
