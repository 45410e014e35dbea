package cvar

import (
	"log"

	"github.com/wartide/garrison/internal/cvar/cvarflag"
)

// Stock returns a registry populated with the variables the shipped game
// registers, including the restrictive bounds and cheat/notify flags the
// unlock batch is there to remove.
func Stock(logger *log.Logger) *Registry {
	r := NewRegistry(logger)

	// bot population
	r.RegisterBounded("bot_count_min", 0, 8, cvarflag.Replicated)
	r.RegisterBounded("bot_count_max", 8, 8, cvarflag.Replicated)
	r.Register("bot_count_override", 0, cvarflag.Notify)
	r.Register("bot_count_enemy_min", 0, 0)
	r.Register("bot_count_enemy_max", 0, 0)
	r.Register("bot_count_friendly_min", 0, 0)
	r.Register("bot_count_friendly_max", 0, 0)
	r.RegisterBounded("bot_wave_size", 4, 8, cvarflag.Replicated)

	// bot tuning, cheat-protected in the shipped game
	r.Register("bot_attack_interval", 2, cvarflag.Cheat)
	r.Register("bot_accuracy_scale", 1, cvarflag.Cheat)
	r.Register("bot_reaction_time", 1, cvarflag.Cheat)
	r.Register("bot_sight_range", 1500, cvarflag.Cheat)
	r.Register("bot_hearing_range", 900, cvarflag.Cheat)
	r.Register("bot_grenade_chance", 10, cvarflag.Cheat)
	r.Register("bot_melee_range", 64, cvarflag.Cheat)
	r.Register("bot_objective_bias", 50, cvarflag.Cheat)
	r.Register("bot_difficulty", 2, cvarflag.Notify)
	r.RegisterBounded("bot_difficulty_max", 3, 3, 0)

	// round timing
	r.RegisterBounded("sv_round_time_max", 300, 300, 0)
	r.RegisterBounded("sv_capture_time_max", 240, 240, 0)
	r.Register("sv_capture_time", 180, cvarflag.Replicated)
	r.RegisterBounded("sv_respawn_wave_max", 30, 30, 0)

	// voice
	r.RegisterBounded("sv_voice_range", 1200, 1200, cvarflag.Notify)
	r.RegisterBounded("sv_voice_range_max", 1200, 1200, cvarflag.Notify)

	// misc
	r.RegisterBounded("sv_team_balance_margin", 2, 2, 0)

	return r
}
