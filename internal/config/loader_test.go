package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quadcell/tetra/internal/game"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// run from a temp dir so no local configs/ is picked up
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rules.BattleSystem != "original" {
		t.Errorf("battle_system = %q, want original", cfg.Rules.BattleSystem)
	}
	if cfg.Runtime.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.Runtime.FPS)
	}
	if cfg.Runtime.DBPath == "" {
		t.Error("db_path is empty")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.yaml")
	content := "rules:\n  battle_system: dice\n  dice_sides: 8\nruntime:\n  fps: 60\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rules.BattleSystem != "dice" || cfg.Rules.DiceSides != 8 {
		t.Errorf("rules = %+v, want dice/8", cfg.Rules)
	}
	if cfg.Runtime.FPS != 60 {
		t.Errorf("fps = %d, want 60", cfg.Runtime.FPS)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}
}

func TestRulesSystem(t *testing.T) {
	tests := []struct {
		rules RulesConfig
		kind  game.BattleKind
		ok    bool
	}{
		{RulesConfig{BattleSystem: "original"}, game.BattleOriginal, true},
		{RulesConfig{BattleSystem: ""}, game.BattleOriginal, true},
		{RulesConfig{BattleSystem: "dice", DiceSides: 6}, game.BattleDice, true},
		{RulesConfig{BattleSystem: "dice"}, game.BattleDice, true}, // sides default to 6
		{RulesConfig{BattleSystem: "deterministic"}, game.BattleDeterministic, true},
		{RulesConfig{BattleSystem: "dice", DiceSides: 1}, 0, false},
		{RulesConfig{BattleSystem: "coinflip"}, 0, false},
	}
	for _, tt := range tests {
		sys, err := tt.rules.System()
		if tt.ok != (err == nil) {
			t.Errorf("System(%+v) error = %v, want ok=%v", tt.rules, err, tt.ok)
			continue
		}
		if tt.ok && sys.Kind != tt.kind {
			t.Errorf("System(%+v) kind = %v, want %v", tt.rules, sys.Kind, tt.kind)
		}
	}
}

func TestRulesVariant(t *testing.T) {
	tests := []struct {
		system string
		want   string
	}{
		{"original", "tetra"},
		{"", "tetra"},
		{"dice", "tetra_dice"},
		{"deterministic", "tetra_det"},
	}
	for _, tt := range tests {
		if got := (RulesConfig{BattleSystem: tt.system}).Variant(); got != tt.want {
			t.Errorf("Variant(%q) = %q, want %q", tt.system, got, tt.want)
		}
	}
}
