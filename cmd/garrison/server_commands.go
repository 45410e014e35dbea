package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wartide/garrison/internal/command"
	"github.com/wartide/garrison/internal/event/lifecycle"
)

// HandleCommand processes one command line and returns the reply sent back to
// the operator. Interceptors see the command first; a Handled result
// suppresses the built-in processing.
func (s *Server) HandleCommand(msg string) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return ""
	}

	if s.Interceptors.Dispatch(msg) == command.Handled {
		return ""
	}

	parts := strings.SplitN(msg, " ", 2)
	cmd, args := parts[0], ""
	if len(parts) == 2 {
		args = strings.TrimSpace(parts[1])
	}

	switch cmd {
	case "help", "commands":
		return "available commands: exec <file>, connect <name> [bot], disconnect <cn>, round, map <name>, start, pause, resume, get <cvar>, set <cvar> <value>, status, history [n]"

	case "exec":
		return s.ExecConfig(args)

	case "connect":
		return s.connect(strings.Fields(args))

	case "disconnect":
		return s.disconnect(strings.Fields(args))

	case "round", "roundstart", "round_start":
		s.StartRound()
		return fmt.Sprintf("round %d started", s.Round)

	case "map", "changemap":
		if args == "" {
			return "map: missing map name"
		}
		s.ChangeMap(args)
		return "map changed to " + args

	case "start", "gamestart":
		s.Bus.Dispatch(lifecycle.GameStart)
		s.Clock.Start()
		return "game started"

	case "pause":
		s.Clock.Pause()
		return "round clock paused"

	case "resume":
		s.Clock.Resume()
		return "round clock resumed"

	case "get", "getvar":
		return s.getVar(args)

	case "set", "setvar":
		return s.setVar(strings.Fields(args))

	case "status":
		return s.status()

	case "history", "rounds":
		return s.recentRounds(args)

	default:
		return "unknown command"
	}
}

func (s *Server) connect(args []string) string {
	if len(args) < 1 {
		return "connect: missing name"
	}
	bot := len(args) > 1 && args[1] == "bot"
	c := s.Clients.Connect(args[0], bot)
	kind := "player"
	if bot {
		kind = "bot"
	}
	return fmt.Sprintf("%s %s connected as cn %d", kind, c.Name, c.CN)
}

func (s *Server) disconnect(args []string) string {
	if len(args) < 1 {
		return "disconnect: missing cn"
	}
	cn, err := strconv.Atoi(args[0])
	if err != nil {
		return "disconnect: bad cn"
	}
	if !s.Clients.Disconnect(int32(cn)) {
		return fmt.Sprintf("disconnect: no client with cn %d", cn)
	}
	return fmt.Sprintf("cn %d disconnected", cn)
}

func (s *Server) getVar(name string) string {
	if name == "" {
		return "get: missing cvar name"
	}
	v, err := s.Vars.Find(name)
	if err != nil {
		return fmt.Sprintf("get: %s: %v", name, err)
	}
	reply := fmt.Sprintf("%s = %d", v.Name(), v.Int())
	if max, ok := v.Max(); ok {
		reply += fmt.Sprintf(" (max %g)", max)
	}
	if f := v.Flags(); f != 0 {
		reply += " [" + f.String() + "]"
	}
	return reply
}

func (s *Server) setVar(args []string) string {
	if len(args) < 2 {
		return "set: usage: set <cvar> <value>"
	}
	v, err := s.Vars.Find(args[0])
	if err != nil {
		return fmt.Sprintf("set: %s: %v", args[0], err)
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return "set: bad value"
	}
	s.Vars.SetInt(v, value, true, false)
	return fmt.Sprintf("%s = %d", v.Name(), v.Int())
}

func (s *Server) status() string {
	mode, known := s.Controller.Mode()
	if !known {
		mode = "unknown"
	}
	return fmt.Sprintf(
		"up %s, map %s, mode %s, round %d, %d clients (%d human)",
		time.Since(s.UpSince).Round(time.Second), s.Map, mode, s.Round,
		s.NumClients(), s.Clients.NumHumans(),
	)
}

func (s *Server) recentRounds(args string) string {
	if s.History == nil {
		return "history: not enabled"
	}
	n := 10
	if args != "" {
		var err error
		if n, err = strconv.Atoi(args); err != nil || n < 1 {
			return "history: bad count"
		}
	}
	rounds, err := s.History.Recent(n)
	if err != nil {
		return fmt.Sprintf("history: %v", err)
	}
	if len(rounds) == 0 {
		return "history: no rounds recorded"
	}
	lines := make([]string, 0, len(rounds))
	for _, r := range rounds {
		lines = append(lines, fmt.Sprintf(
			"%s %s: %d players, %d enemy, %d friendly bots",
			r.At.Format("2006-01-02 15:04:05"), r.Mode, r.Humans, r.Enemies, r.Friendlies,
		))
	}
	return strings.Join(lines, "\n")
}
