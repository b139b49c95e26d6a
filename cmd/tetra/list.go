package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quadcell/tetra/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available rule sets",
	Long:  `Shows a list of all registered rule set variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No rule sets available.")
		return
	}

	fmt.Println("Available rule sets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, v := range variants {
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tetra play <id>' to start a match.")
}
