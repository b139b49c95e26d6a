package config

import (
	_ "embed"
)

//go:embed defaults/tetra.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. It is the final
// fallback when no YAML source can be read.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			BattleSystem: "original",
			DiceSides:    6,
		},
		Runtime: RuntimeConfig{
			FPS:    30,
			DBPath: "~/.tetra/matches.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML, useful for writing a
// starter config file.
func DefaultYAML() []byte {
	return defaultYAML
}
