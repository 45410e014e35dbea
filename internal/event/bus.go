package event

import "github.com/wartide/garrison/internal/event/lifecycle"

type Handler func()

// Bus dispatches lifecycle events to subscribed handlers. Dispatch is
// synchronous: handlers run to completion on the calling goroutine, in
// registration order, before Dispatch returns. All dispatching happens from
// the server's single event loop, so handlers need no locking among
// themselves.
type Bus struct {
	handlers map[lifecycle.Event][]Handler
}

func NewBus() *Bus {
	return &Bus{
		handlers: map[lifecycle.Event][]Handler{},
	}
}

func (b *Bus) Subscribe(e lifecycle.Event, h Handler) {
	b.handlers[e] = append(b.handlers[e], h)
}

func (b *Bus) Dispatch(e lifecycle.Event) {
	for _, h := range b.handlers[e] {
		h()
	}
}
