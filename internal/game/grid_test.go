package game

import (
	"math/bits"
	"testing"
)

func TestNeighbourCounts(t *testing.T) {
	want := map[int]int{
		0x0: 3, 0x3: 3, 0xC: 3, 0xF: 3, // corners
		0x1: 5, 0x2: 5, 0x4: 5, 0x7: 5, 0x8: 5, 0xB: 5, 0xD: 5, 0xE: 5, // edges
		0x5: 8, 0x6: 8, 0x9: 8, 0xA: 8, // interior
	}

	for cell := 0; cell < BoardCells; cell++ {
		if got := len(Neighbours(cell)); got != want[cell] {
			t.Errorf("cell %X: %d neighbours, want %d", cell, got, want[cell])
		}
	}
}

func TestNeighbourSymmetry(t *testing.T) {
	// if Y is reachable from X via arrow A, X must be reachable from Y via
	// the reversed arrow
	for cell := 0; cell < BoardCells; cell++ {
		for _, n := range Neighbours(cell) {
			found := false
			for _, back := range Neighbours(n.Cell) {
				if back.Cell == cell && back.Arrow == n.Arrow.Reverse() {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("cell %X lists (%X, %s) but %X does not list (%X, %s)",
					cell, n.Cell, n.Arrow, n.Cell, cell, n.Arrow.Reverse())
			}
		}
	}
}

func TestNeighboursInBounds(t *testing.T) {
	for cell := 0; cell < BoardCells; cell++ {
		row, col := cell/BoardCols, cell%BoardCols
		seen := make(map[int]bool)
		for _, n := range Neighbours(cell) {
			if n.Cell < 0 || n.Cell >= BoardCells {
				t.Fatalf("cell %X: neighbour %X out of range", cell, n.Cell)
			}
			if n.Cell == cell {
				t.Errorf("cell %X lists itself as a neighbour", cell)
			}
			if seen[n.Cell] {
				t.Errorf("cell %X lists neighbour %X twice", cell, n.Cell)
			}
			seen[n.Cell] = true

			nr, nc := n.Cell/BoardCols, n.Cell%BoardCols
			if dr, dc := nr-row, nc-col; dr < -1 || dr > 1 || dc < -1 || dc > 1 {
				t.Errorf("cell %X: neighbour %X is not one step away", cell, n.Cell)
			}
		}
	}
}

func TestComputeInteractionNoArrows(t *testing.T) {
	for cell := 0; cell < BoardCells; cell++ {
		if mask := ComputeInteraction(NoArrows, cell); mask != 0 {
			t.Errorf("cell %X with no arrows: mask %016b, want 0", cell, mask)
		}
	}
}

func TestComputeInteractionStaysAdjacent(t *testing.T) {
	// no (arrows, cell) pair may produce a bit outside the cell's
	// adjacency list
	for arrows := 0; arrows < 256; arrows++ {
		for cell := 0; cell < BoardCells; cell++ {
			var adjacent uint16
			for _, n := range Neighbours(cell) {
				adjacent |= 1 << n.Cell
			}

			mask := ComputeInteraction(Arrows(arrows), cell)
			if mask&^adjacent != 0 {
				t.Fatalf("arrows %08b cell %X: mask %016b has non-adjacent bits (adjacent %016b)",
					arrows, cell, mask, adjacent)
			}
		}
	}
}

func TestComputeInteractionDeterministic(t *testing.T) {
	for arrows := 0; arrows < 256; arrows++ {
		for cell := 0; cell < BoardCells; cell++ {
			a := ComputeInteraction(Arrows(arrows), cell)
			b := ComputeInteraction(Arrows(arrows), cell)
			if a != b {
				t.Fatalf("arrows %08b cell %X: %016b then %016b", arrows, cell, a, b)
			}
		}
	}
}

func TestComputeInteractionScenarios(t *testing.T) {
	tests := []struct {
		name   string
		arrows Arrows
		cell   int
		want   uint16
	}{
		{"left arrow on cell 1 reaches cell 0", Left, 0x1, 1 << 0x0},
		{"all arrows on interior cell 5", AllArrows, 0x5,
			1<<0x0 | 1<<0x1 | 1<<0x2 | 1<<0x4 | 1<<0x6 | 1<<0x8 | 1<<0x9 | 1<<0xA},
		{"all arrows on corner cell 0", AllArrows, 0x0, 1<<0x1 | 1<<0x4 | 1<<0x5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeInteraction(tt.arrows, tt.cell); got != tt.want {
				t.Errorf("ComputeInteraction(%08b, %X) = %016b, want %016b",
					uint8(tt.arrows), tt.cell, got, tt.want)
			}
		})
	}
}

func TestComputeInteractionBitCountMatchesArrows(t *testing.T) {
	// every arrow that stays on the board contributes exactly one bit
	for arrows := 0; arrows < 256; arrows++ {
		for cell := 0; cell < BoardCells; cell++ {
			onBoard := 0
			for _, n := range Neighbours(cell) {
				if Arrows(arrows).Has(n.Arrow) {
					onBoard++
				}
			}

			mask := ComputeInteraction(Arrows(arrows), cell)
			if got := bits.OnesCount16(mask); got != onBoard {
				t.Fatalf("arrows %08b cell %X: %d bits set, want %d",
					arrows, cell, got, onBoard)
			}
		}
	}
}
