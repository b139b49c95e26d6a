package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quadcell/tetra/internal/core"
	"github.com/quadcell/tetra/internal/platform/tui"
	"github.com/quadcell/tetra/internal/registry"
	"github.com/quadcell/tetra/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive rule set picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a rule set.
After a match ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select rule set
  Tab          - Match history
  Q            - Quit

Examples:
  tetra menu
  tetra menu --fps 30
  tetra menu --db ./matches.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	appCfg := loadConfig()

	store, err := storage.Open(effectiveDBPath(appCfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: effectiveFPS(appCfg),
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		g, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Reseed for each match
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(g, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
