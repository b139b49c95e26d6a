package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quadcell/tetra/internal/core"
	"github.com/quadcell/tetra/internal/platform/tui"
	"github.com/quadcell/tetra/internal/registry"
	"github.com/quadcell/tetra/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a match against the CPU",
	Long: `Start a match with the given rule set. Without an argument the
rule set comes from the config file.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Confirm
  Tab          - Cycle hand cards
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  tetra play
  tetra play tetra_dice
  tetra play tetra_det --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	appCfg := loadConfig()

	variant := appCfg.Rules.Variant()
	if len(args) > 0 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown rule set %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'tetra list' to see available rule sets.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: effectiveFPS(appCfg),
		Seed:     flagSeed,
	}

	g, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(effectiveDBPath(appCfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
