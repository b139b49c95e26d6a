package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadcell/tetra/internal/gen"
)

var flagGenOut string

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Regenerate lookup tables",
	Long: `Regenerate the checked-in lookup tables used by the CPU opponent.

The tables are committed so that builds do not depend on generation, but
they must be regenerated whenever the underlying rules change.`,
}

var genInteractionsCmd = &cobra.Command{
	Use:   "interactions",
	Short: "Regenerate the arrow interaction table",
	Long: `Regenerate the table mapping every arrow mask and board cell to the
set of neighbouring cells the card interacts with.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := flagGenOut
		if out == "" {
			out = "internal/ai/interactions.go"
		}
		writeGenerated(out, gen.WriteInteractions)
	},
}

var genProbabilitiesCmd = &cobra.Command{
	Use:   "probabilities",
	Short: "Regenerate the battle win probability tables",
	Long: `Regenerate the per-system tables of battle win probabilities for
every attack and defense stat pairing.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := flagGenOut
		if out == "" {
			out = "internal/ai/probs.go"
		}
		writeGenerated(out, gen.WriteProbabilities)
	},
}

func init() {
	genCmd.PersistentFlags().StringVar(&flagGenOut, "out", "", "Output file (default: the checked-in location)")
	genCmd.AddCommand(genInteractionsCmd)
	genCmd.AddCommand(genProbabilitiesCmd)
}

// writeGenerated runs an emitter and writes its output atomically enough
// for a source file: full buffer first, then one WriteFile.
func writeGenerated(path string, emit func(w io.Writer) error) {
	var buf bytes.Buffer
	if err := emit(&buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", path, buf.Len())
}
