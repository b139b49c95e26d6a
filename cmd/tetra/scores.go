package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadcell/tetra/internal/registry"
	"github.com/quadcell/tetra/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded match history",
	Long: `Display the most recent matches and win statistics for a rule set.
Without an argument, statistics for all rule sets are shown.

Examples:
  tetra scores
  tetra scores tetra
  tetra scores tetra_dice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	appCfg := loadConfig()

	store, err := storage.Open(effectiveDBPath(appCfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printAllStats(store)
		return
	}

	variant := args[0]
	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown rule set %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'tetra list' to see available rule sets.")
		os.Exit(1)
	}

	g, err := registry.Create(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.Stats(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	matches, err := store.RecentMatches(variant, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Match History - %s\n", g.Title())
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tetra play %s' to record the first match!\n", variant)
		return
	}

	fmt.Printf("%d matches: %dW / %dL / %dD\n", stats.Matches, stats.P1Wins, stats.P2Wins, stats.Draws)
	fmt.Println()

	fmt.Printf("  %-8s  %-7s  %-6s  %-14s  %s\n", "Result", "Cards", "Time", "Seed", "Date")
	fmt.Printf("  %-8s  %-7s  %-6s  %-14s  %s\n", "------", "-----", "----", "----", "----")

	for _, rec := range matches {
		result := "Draw"
		switch rec.Winner {
		case "p1":
			result = "Won"
		case "p2":
			result = "Lost"
		}
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %d-%-5d  %-6s  %-14d  %s\n",
			result, rec.P1Cards, rec.P2Cards, fmt.Sprintf("%ds", rec.Duration), rec.Seed, dateStr)
	}
}

// printAllStats prints a per-variant summary of all recorded matches.
func printAllStats(store *storage.Store) {
	stats, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Println("Match statistics:")
	fmt.Println()
	fmt.Printf("  %-12s  %-8s  %-5s  %-5s  %-5s  %s\n", "Rule set", "Matches", "Won", "Lost", "Draw", "Last played")
	fmt.Printf("  %-12s  %-8s  %-5s  %-5s  %-5s  %s\n", "--------", "-------", "---", "----", "----", "-----------")

	for _, v := range registry.List() {
		vs, ok := stats[v.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-8d  %-5d  %-5d  %-5d  %s\n",
			vs.Variant, vs.Matches, vs.P1Wins, vs.P2Wins, vs.Draws,
			vs.LastPlayed.Format("2006-01-02 15:04"))
	}
}
