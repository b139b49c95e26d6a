// tetra is a terminal card battler: place cards on a 4x4 grid, flip your
// opponent's cards and win the board.
//
// Usage:
//
//	tetra list               - List available rule sets
//	tetra play [variant]     - Play a match against the CPU
//	tetra menu               - Interactive rule set picker
//	tetra serve              - Start SSH server for remote play
//	tetra scores [variant]   - Show recorded match history
//	tetra probtable          - Print the battle win probability table
//	tetra gen                - Regenerate lookup tables
//	tetra bench              - Compare benchmark runs
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (0 = from config)
//	--seed <value>   - Set RNG seed for reproducible matches
//	--db <path>      - Set database path (default from config)
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadcell/tetra/internal/config"

	// Import the game to register its variants
	_ "github.com/quadcell/tetra/internal/games/tetra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetra",
	Short: "Tetra Master - card battles in your terminal",
	Long: `Tetra Master is a terminal card battler. Pick a hand of five cards,
place them on a 4x4 grid and flip your opponent's cards through arrows
and battles. Whoever owns more cards when the board fills wins.

Available commands:
  list       - Show all available rule sets
  play       - Play a match directly
  menu       - Interactive rule set picker
  serve      - Start SSH server for remote play
  scores     - View recorded match history
  probtable  - Print the battle win probability table
  gen        - Regenerate lookup tables
  bench      - Compare benchmark runs

Examples:
  tetra list
  tetra play tetra
  tetra play tetra_dice --seed 42
  tetra menu
  tetra serve --ssh :2222
  tetra scores tetra`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(probtableCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(benchCmd)
}

// loadConfig loads the platform config, honoring the --config flag.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return config.Default()
	}
	return cfg
}

// effectiveFPS resolves the tick rate from the flag and config.
func effectiveFPS(cfg config.Config) int {
	if flagFPS > 0 {
		return flagFPS
	}
	if cfg.Runtime.FPS > 0 {
		return cfg.Runtime.FPS
	}
	return 30
}

// effectiveDBPath resolves the database path from the flag and config.
func effectiveDBPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if cfg.Runtime.DBPath != "" {
		return cfg.Runtime.DBPath
	}
	return "~/.tetra/matches.db"
}
