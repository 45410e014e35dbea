package main

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sauerbraten/jsonfile"

	"github.com/wartide/garrison/internal/client"
	"github.com/wartide/garrison/internal/command"
	"github.com/wartide/garrison/internal/console"
	"github.com/wartide/garrison/internal/cvar"
	"github.com/wartide/garrison/internal/event"
	"github.com/wartide/garrison/internal/event/lifecycle"
	"github.com/wartide/garrison/internal/history"
	"github.com/wartide/garrison/internal/round"
	"github.com/wartide/garrison/internal/scaling"
	"github.com/wartide/garrison/internal/unlock"
)

// global server state
var s *Server

type commandRequest struct {
	line  string
	reply chan string
}

func main() {
	var conf *Config
	err := jsonfile.ParseFile("config.json", &conf)
	if err != nil {
		log.Fatalln(err)
	}
	if err := env.Parse(conf); err != nil {
		log.Fatalln(err)
	}
	roundLength := time.Duration(conf.RoundLengthInSeconds) * time.Second // stored without unit in config file and env

	scalingConf, err := conf.scalingConfig()
	if err != nil {
		log.Fatalln(err)
	}

	batch := unlock.DefaultBatch()
	if conf.UnlockBatchFile != "" {
		batch, err = unlock.LoadBatch(conf.UnlockBatchFile)
		if err != nil {
			log.Fatalln(err)
		}
	}

	logger := log.Default()
	vars := cvar.Stock(logger)
	bus := event.NewBus()
	interceptors := command.NewInterceptors()
	cm := &client.Manager{}

	unlocker := unlock.New(vars, batch, conf.MaxClients, logger)
	unlocker.Register(bus)

	controller := scaling.NewController(scalingConf, vars, cm, logger)
	controller.Register(bus, interceptors)

	var store *history.Store
	if conf.HistoryDB != "" {
		store, err = history.Open(conf.HistoryDB, logger)
		if err != nil {
			log.Fatalln(err)
		}
		controller.SetRecorder(store)
	}

	roundTicks := make(chan struct{}, 1)
	clock := round.NewClock(roundLength, func() {
		roundTicks <- struct{}{}
	})

	s = &Server{
		Config: conf,
		State: &State{
			UpSince:    time.Now(),
			NumClients: cm.NumClients,
		},
		Vars:         vars,
		Bus:          bus,
		Interceptors: interceptors,
		Clients:      cm,
		Controller:   controller,
		Clock:        clock,
		History:      store,
	}

	bus.Dispatch(lifecycle.ServerSpawn)
	bus.Dispatch(lifecycle.GameInit)

	if conf.FallbackMode != "" {
		s.HandleCommand("exec server_" + conf.FallbackMode + ".cfg")
	}

	commands := make(chan commandRequest)
	cons := console.NewServer(func(line string) string {
		req := commandRequest{line: line, reply: make(chan string, 1)}
		commands <- req
		return <-req.reply
	}, logger)
	go func() {
		log.Fatalln(cons.ListenAndServe(conf.ListenAddress))
	}()

	log.Println("console listening on", conf.ListenAddress)

	// single event loop: commands and round ticks are processed one at a
	// time, so handlers never run concurrently
	for {
		select {
		case req := <-commands:
			req.reply <- s.HandleCommand(req.line)
		case <-roundTicks:
			s.StartRound()
		}
	}
}
