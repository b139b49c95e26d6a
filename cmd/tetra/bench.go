package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quadcell/tetra/internal/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench <old> <new>",
	Short: "Compare two benchmark runs",
	Long: `Compare two saved "go test -bench" outputs and print a colorized
delta report.

Capture runs with:
  go test -bench . -benchmem ./... > old.txt
  # make changes
  go test -bench . -benchmem ./... > new.txt

Then compare:
  tetra bench old.txt new.txt`,
	Args: cobra.ExactArgs(2),
	Run:  runBench,
}

func runBench(cmd *cobra.Command, args []string) {
	old := parseBenchFile(args[0])
	new := parseBenchFile(args[1])

	deltas := bench.Diff(old, new)
	if len(deltas) == 0 {
		fmt.Println("No benchmarks found in either file.")
		return
	}

	fmt.Print(bench.Report(deltas))
}

func parseBenchFile(path string) []bench.Result {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()

	results, err := bench.Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", path, err)
		os.Exit(1)
	}
	return results
}
