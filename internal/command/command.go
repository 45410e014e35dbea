package command

import "strings"

// Action is what an interceptor tells the server to do with a command after
// seeing it.
type Action int

const (
	// Continue lets the server process the command normally.
	Continue Action = iota
	// Handled suppresses the server's own processing of the command.
	Handled
)

// Handler observes one command invocation, receiving the raw argument string
// (everything after the command name).
type Handler func(args string) Action

// Interceptors lets components observe commands before the server processes
// them, e.g. to watch which config files get executed.
type Interceptors struct {
	handlers map[string][]Handler
}

func NewInterceptors() *Interceptors {
	return &Interceptors{
		handlers: map[string][]Handler{},
	}
}

func (in *Interceptors) Intercept(name string, h Handler) {
	in.handlers[name] = append(in.handlers[name], h)
}

// Dispatch runs all interceptors registered for the command in line. It
// returns Handled as soon as one handler claims the command; remaining
// handlers for that command are not called, matching the engine's command
// forwarding.
func (in *Interceptors) Dispatch(line string) Action {
	line = strings.TrimSpace(line)
	name, args := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		name, args = line[:i], strings.TrimSpace(line[i+1:])
	}
	for _, h := range in.handlers[name] {
		if h(args) == Handled {
			return Handled
		}
	}
	return Continue
}
