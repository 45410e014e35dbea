package main

import "time"

type State struct {
	Map     string
	Round   int
	UpSince time.Time

	NumClients func() int // number of clients connected
}
