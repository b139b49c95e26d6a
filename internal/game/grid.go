package game

// Board geometry. Cells are numbered row-major:
//
//	 0 | 1 | 2 | 3
//	---+---+---+---
//	 4 | 5 | 6 | 7
//	---+---+---+---
//	 8 | 9 | A | B
//	---+---+---+---
//	 C | D | E | F
const (
	BoardRows  = 4
	BoardCols  = 4
	BoardCells = BoardRows * BoardCols
)

// Neighbour pairs a neighbouring cell with the arrow a card on the subject
// cell needs in order to point at it.
type Neighbour struct {
	Cell  int
	Arrow Arrows
}

// arrowDeltas maps each arrow to its row/column step, clockwise from the top.
var arrowDeltas = [8]struct {
	arrow  Arrows
	dr, dc int
}{
	{Up, -1, 0},
	{UpRight, -1, 1},
	{Right, 0, 1},
	{DownRight, 1, 1},
	{Down, 1, 0},
	{DownLeft, 1, -1},
	{Left, 0, -1},
	{UpLeft, -1, -1},
}

// adjacency holds, for every cell, the cells reachable by one step in each
// arrow direction. It is derived from the grid arithmetic rather than written
// out by hand so the listing and the geometry can never disagree. Corner
// cells get 3 entries, non-corner edge cells 5, interior cells 8.
var adjacency = buildAdjacency()

func buildAdjacency() [BoardCells][]Neighbour {
	var adj [BoardCells][]Neighbour
	for cell := 0; cell < BoardCells; cell++ {
		row, col := cell/BoardCols, cell%BoardCols
		for _, d := range arrowDeltas {
			r, c := row+d.dr, col+d.dc
			if r < 0 || r >= BoardRows || c < 0 || c >= BoardCols {
				continue
			}
			adj[cell] = append(adj[cell], Neighbour{Cell: r*BoardCols + c, Arrow: d.arrow})
		}
	}
	return adj
}

// Neighbours returns the adjacency list for the given cell: every cell one
// step away, tagged with the arrow that points at it. The returned slice is
// shared and must not be mutated.
func Neighbours(cell int) []Neighbour {
	return adjacency[cell]
}

// ComputeInteraction returns the cells a card on the given cell points at
// with the given arrows, as a bitmask where bit c corresponds to cell c.
// Neighbour bits are toggled rather than or-ed; on the current grid every
// neighbour is reachable along exactly one arrow so the two are equivalent,
// but toggling keeps the accumulation faithful should the adjacency relation
// ever grow duplicate paths.
func ComputeInteraction(arrows Arrows, cell int) uint16 {
	var mask uint16
	for _, n := range adjacency[cell] {
		if arrows.Has(n.Arrow) {
			mask ^= 1 << n.Cell
		}
	}
	return mask
}
