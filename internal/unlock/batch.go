package unlock

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BoundOverride raises the upper bound of one variable. With FromSlots set,
// the bound is computed from the server's player slots instead of Max.
type BoundOverride struct {
	Cvar      string  `yaml:"cvar"`
	Max       float64 `yaml:"max"`
	FromSlots bool    `yaml:"from_slots,omitempty"`
}

// FlagClear removes one classification flag from one variable.
type FlagClear struct {
	Cvar string `yaml:"cvar"`
	Flag string `yaml:"flag"`
}

type Batch struct {
	Bounds []BoundOverride `yaml:"bounds"`
	Flags  []FlagClear     `yaml:"flags"`
}

// DefaultBatch is the batch shipped with the server: it lifts the artificial
// bot population and timer ceilings and strips the cheat/notify
// classification from the bot tuning and voice range variables.
func DefaultBatch() Batch {
	return Batch{
		Bounds: []BoundOverride{
			{Cvar: "bot_count_max", FromSlots: true},
			{Cvar: "bot_count_min", FromSlots: true},
			{Cvar: "bot_wave_size", FromSlots: true},
			{Cvar: "sv_round_time_max", Max: 600},
			{Cvar: "sv_capture_time_max", Max: 600},
			{Cvar: "sv_respawn_wave_max", Max: 600},
			{Cvar: "sv_voice_range", Max: 10000},
			{Cvar: "sv_voice_range_max", Max: 10000},
			{Cvar: "bot_difficulty_max", Max: 10},
			{Cvar: "sv_team_balance_margin", Max: 32},
		},
		Flags: []FlagClear{
			{Cvar: "bot_attack_interval", Flag: "cheat"},
			{Cvar: "bot_accuracy_scale", Flag: "cheat"},
			{Cvar: "bot_reaction_time", Flag: "cheat"},
			{Cvar: "bot_sight_range", Flag: "cheat"},
			{Cvar: "bot_hearing_range", Flag: "cheat"},
			{Cvar: "bot_grenade_chance", Flag: "cheat"},
			{Cvar: "bot_melee_range", Flag: "cheat"},
			{Cvar: "bot_objective_bias", Flag: "cheat"},
			{Cvar: "sv_voice_range", Flag: "notify"},
			{Cvar: "sv_voice_range_max", Flag: "notify"},
			{Cvar: "bot_count_override", Flag: "notify"},
			{Cvar: "bot_difficulty", Flag: "notify"},
		},
	}
}

// LoadBatch reads a batch definition from a YAML file, replacing the default
// batch wholesale.
func LoadBatch(path string) (Batch, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Batch{}, err
	}
	var b Batch
	if err := yaml.Unmarshal(buf, &b); err != nil {
		return Batch{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return b, nil
}
