// Package config provides YAML-based configuration for the platform:
// default rules, runtime settings and storage location.
package config

import (
	"fmt"

	"github.com/quadcell/tetra/internal/game"
)

// Config is the full platform configuration.
type Config struct {
	Rules   RulesConfig   `yaml:"rules"`
	Runtime RuntimeConfig `yaml:"runtime"`
}

// RulesConfig selects the default rule set for new matches.
type RulesConfig struct {
	// BattleSystem is "original", "dice" or "deterministic".
	BattleSystem string `yaml:"battle_system"`
	// DiceSides applies when BattleSystem is "dice".
	DiceSides uint8 `yaml:"dice_sides"`
}

// RuntimeConfig holds platform-level settings.
type RuntimeConfig struct {
	FPS    int    `yaml:"fps"`
	DBPath string `yaml:"db_path"`
}

// System maps the configured rule names onto a battle system.
func (r RulesConfig) System() (game.BattleSystem, error) {
	switch r.BattleSystem {
	case "original", "":
		return game.OriginalSystem(), nil
	case "dice":
		sides := r.DiceSides
		if sides == 0 {
			sides = 6
		}
		if sides < 2 {
			return game.BattleSystem{}, fmt.Errorf("config: dice_sides must be at least 2, got %d", sides)
		}
		return game.DiceSystem(sides), nil
	case "deterministic":
		return game.DeterministicSystem(), nil
	default:
		return game.BattleSystem{}, fmt.Errorf("config: unknown battle_system %q", r.BattleSystem)
	}
}

// Variant returns the registered variant ID matching the configured rules.
func (r RulesConfig) Variant() string {
	switch r.BattleSystem {
	case "dice":
		return "tetra_dice"
	case "deterministic":
		return "tetra_det"
	default:
		return "tetra"
	}
}
