package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/wartide/garrison/internal/client"
	"github.com/wartide/garrison/internal/command"
	"github.com/wartide/garrison/internal/cvar"
	"github.com/wartide/garrison/internal/event"
	"github.com/wartide/garrison/internal/event/lifecycle"
	"github.com/wartide/garrison/internal/history"
	"github.com/wartide/garrison/internal/round"
	"github.com/wartide/garrison/internal/scaling"
)

// maxExecDepth caps nested exec calls, so a config file execing itself (or a
// cycle of files) cannot recurse without bound.
const maxExecDepth = 8

type Server struct {
	*Config
	*State
	execDepth    int
	Vars         *cvar.Registry
	Bus          *event.Bus
	Interceptors *command.Interceptors
	Clients      *client.Manager
	Controller   *scaling.Controller
	Clock        *round.Clock
	History      *history.Store // nil when no history DB is configured
}

// StartRound begins the next round: every round start subscriber (most
// importantly the scaling controller) recomputes from scratch.
func (s *Server) StartRound() {
	s.Round++
	s.Bus.Dispatch(lifecycle.RoundStart)
}

// ChangeMap loads a new map. The engine resets all variables to their shipped
// defaults on a map change, which the new-map dispatch undoes again through
// the unlocker.
func (s *Server) ChangeMap(name string) {
	s.Map = name
	s.Vars.Reset()
	s.Bus.Dispatch(lifecycle.NewMap)
}

// ExecConfig runs every line of a config file as a server command. Missing
// files are not an error for the interceptors: they have already seen the
// exec by the time this is called.
func (s *Server) ExecConfig(path string) string {
	name := strings.Trim(path, ` "`)
	if name == "" {
		return "exec: missing config file name"
	}

	if s.execDepth >= maxExecDepth {
		log.Printf("exec: skipping %s: configs nested more than %d deep", name, maxExecDepth)
		return "exec: configs nested too deep"
	}
	s.execDepth++
	defer func() { s.execDepth-- }()

	buf, err := os.ReadFile(filepath.Join(s.ConfigDir, filepath.Base(name)))
	if err != nil {
		log.Printf("exec: %v", err)
		return "exec: could not read " + name
	}

	for _, line := range strings.Split(string(buf), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}
		s.HandleCommand(line)
	}
	return "executed " + name
}
