package main

import (
	"fmt"

	"github.com/wartide/garrison/internal/scaling"
)

type Config struct {
	ListenAddress string `json:"listen_address" env:"GARRISON_LISTEN_ADDRESS"`
	MaxClients    int    `json:"max_clients" env:"GARRISON_MAX_CLIENTS"`

	ConfigDir    string `json:"config_dir" env:"GARRISON_CONFIG_DIR"`
	FallbackMode string `json:"fallback_mode" env:"GARRISON_FALLBACK_MODE"`

	ScalingRevision          string `json:"scaling_revision" env:"GARRISON_SCALING_REVISION"` // "current" or "legacy"
	DisableBotsOnUnknownMode bool   `json:"disable_bots_on_unknown_mode" env:"GARRISON_DISABLE_BOTS_ON_UNKNOWN_MODE"`

	UnlockBatchFile string `json:"unlock_batch_file" env:"GARRISON_UNLOCK_BATCH_FILE"`
	HistoryDB       string `json:"history_db" env:"GARRISON_HISTORY_DB"`

	RoundLengthInSeconds int `json:"round_length_in_seconds" env:"GARRISON_ROUND_LENGTH_IN_SECONDS"`
}

func (c *Config) scalingConfig() (scaling.Config, error) {
	cfg := scaling.Config{
		DisableOnUnknown: c.DisableBotsOnUnknownMode,
	}
	switch c.ScalingRevision {
	case "", "current":
		cfg.Revision = scaling.RevisionCurrent
	case "legacy":
		cfg.Revision = scaling.RevisionLegacy
	default:
		return cfg, fmt.Errorf("unknown scaling revision %q", c.ScalingRevision)
	}
	return cfg, nil
}
