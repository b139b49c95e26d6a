// Package gen produces the checked-in lookup tables consumed by the CPU
// opponent: the arrow interaction table and the battle win-probability
// tables. Both are emitted as Go source and regenerated with "tetra gen"
// whenever the underlying rules change.
package gen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/quadcell/tetra/internal/game"
)

const interactionsHeader = `// Code generated by "tetra gen interactions"; DO NOT EDIT.

package ai

// Interactions returns the cells a card with the given arrows on the given
// cell points at, as a bitmask where bit c corresponds to cell c.
func Interactions(arrows uint8, cell int) uint16 {
	return interactions[arrows][cell]
}
`

// WriteInteractions emits the full interaction table, one row per arrow
// byte in ascending order, one value per cell in ascending order. Values
// are grouped in binary nibbles so each bit can be read off against the
// board layout, and every row carries its arrow byte as a comment.
func WriteInteractions(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, interactionsHeader)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "var interactions = [256][16]uint16{")
	for arrows := 0; arrows < 256; arrows++ {
		fmt.Fprintf(bw, "\t// Arrows: %04b_%04b\n", arrows>>4, arrows&0xF)
		fmt.Fprintln(bw, "\t{")
		for cell := 0; cell < game.BoardCells; cell++ {
			mask := game.ComputeInteraction(game.Arrows(arrows), cell)
			fmt.Fprintf(bw, "\t\t0b%04b_%04b_%04b_%04b,\n",
				mask>>12&0xF, mask>>8&0xF, mask>>4&0xF, mask&0xF)
		}
		fmt.Fprintln(bw, "\t},")
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
