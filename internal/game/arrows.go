// Package game implements the rules of the arrow card game: a 4x4 board,
// cards with directional arrows and battle stats, and the turn resolution
// that flips cards between the two players.
package game

import (
	"math/bits"
	"strings"
)

// Arrows is the set of directional arrows on a card, stored as a bitmask.
// Bits run clockwise from the top, most significant bit first:
//
//	Up        1000_0000
//	UpRight   0100_0000
//	Right     0010_0000
//	DownRight 0001_0000
//	Down      0000_1000
//	DownLeft  0000_0100
//	Left      0000_0010
//	UpLeft    0000_0001
//
// The bit layout is a wire-level contract: the generated interaction table
// is indexed by the raw mask, so changing it requires regenerating the table.
type Arrows uint8

const (
	Up        Arrows = 0b1000_0000
	UpRight   Arrows = 0b0100_0000
	Right     Arrows = 0b0010_0000
	DownRight Arrows = 0b0001_0000
	Down      Arrows = 0b0000_1000
	DownLeft  Arrows = 0b0000_0100
	Left      Arrows = 0b0000_0010
	UpLeft    Arrows = 0b0000_0001

	NoArrows  Arrows = 0b0000_0000
	AllArrows Arrows = 0b1111_1111
)

// Reverse returns the arrows rotated by 180 degrees. A card defends against
// an attack along arrow d exactly when it carries d.Reverse().
func (a Arrows) Reverse() Arrows {
	// wrapping shift by 4 bits
	return a>>4 | a<<4
}

// Has reports whether any of the given arrows are set.
func (a Arrows) Has(other Arrows) bool {
	return a&other != 0
}

// Count returns the number of set arrows.
func (a Arrows) Count() int {
	return bits.OnesCount8(uint8(a))
}

var arrowNames = []struct {
	arrow Arrows
	name  string
}{
	{Up, "U"},
	{UpRight, "UR"},
	{Right, "R"},
	{DownRight, "DR"},
	{Down, "D"},
	{DownLeft, "DL"},
	{Left, "L"},
	{UpLeft, "UL"},
}

// String returns a compact comma-separated listing, e.g. "U,R,DL".
func (a Arrows) String() string {
	if a == NoArrows {
		return "-"
	}
	var parts []string
	for _, n := range arrowNames {
		if a.Has(n.arrow) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ",")
}
