package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/quadcell/tetra/internal/game"
	"github.com/quadcell/tetra/internal/gen"
)

var flagProbSides uint8

var probtableCmd = &cobra.Command{
	Use:   "probtable [system]",
	Short: "Print the battle win probability table",
	Long: `Print the 16x16 table of battle win probabilities: for each attack
stat (rows) and defense stat (columns), the chance that the attacker
wins the battle.

Systems: original, dice, deterministic (default: original)

Examples:
  tetra probtable
  tetra probtable dice
  tetra probtable dice --sides 8
  tetra probtable deterministic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runProbtable,
}

func init() {
	probtableCmd.Flags().Uint8Var(&flagProbSides, "sides", 6, "Dice sides for the dice system")
}

// Probability color thresholds, in percent.
var (
	certainWinStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))   // > 95
	likelyWinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))   // > 80
	certainLossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))   // < 5
	likelyLossStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))   // < 20
	evenStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // otherwise
)

func runProbtable(cmd *cobra.Command, args []string) {
	name := "original"
	if len(args) > 0 {
		name = args[0]
	}

	var system game.BattleSystem
	switch name {
	case "original":
		system = game.OriginalSystem()
	case "dice":
		system = game.DiceSystem(flagProbSides)
	case "deterministic":
		system = game.DeterministicSystem()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown battle system %q\n", name)
		fmt.Fprintln(os.Stderr, "Systems: original, dice, deterministic")
		os.Exit(1)
	}

	table, err := gen.WinTable(system)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing table: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Attacker win probability (%%), system %s\n\n", system)

	// Header: defense values
	var header strings.Builder
	header.WriteString("att\\def")
	for def := 0; def < 16; def++ {
		header.WriteString(fmt.Sprintf("%6X", def))
	}
	fmt.Println(header.String())

	for att := 0; att < 16; att++ {
		var row strings.Builder
		row.WriteString(fmt.Sprintf("%7X", att))
		for def := 0; def < 16; def++ {
			pct := table[att][def] * 100
			cell := fmt.Sprintf("%6.1f", pct)
			switch {
			case pct > 95:
				cell = certainWinStyle.Render(cell)
			case pct > 80:
				cell = likelyWinStyle.Render(cell)
			case pct < 5:
				cell = certainLossStyle.Render(cell)
			case pct < 20:
				cell = likelyLossStyle.Render(cell)
			default:
				cell = evenStyle.Render(cell)
			}
			row.WriteString(cell)
		}
		fmt.Println(row.String())
	}
}
