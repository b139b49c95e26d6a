package game

import "fmt"

// CardType determines which stats are used when a card attacks.
type CardType uint8

const (
	Physical CardType = iota // attacks the physical defense
	Magical                  // attacks the magical defense
	Exploit                  // attacks the lowest defense
	Assault                  // attacks with, and targets, any stat
)

// String returns the single-letter code used in card displays.
func (t CardType) String() string {
	switch t {
	case Physical:
		return "P"
	case Magical:
		return "M"
	case Exploit:
		return "X"
	case Assault:
		return "A"
	default:
		return "?"
	}
}

// Card is a single game card. Stats are hex digits in [0x0, 0xF].
type Card struct {
	Type            CardType
	Attack          uint8
	PhysicalDefense uint8
	MagicalDefense  uint8
	Arrows          Arrows
}

// NewCard creates a card, panicking if any stat is outside [0x0, 0xF].
// Out-of-range stats are construction defects, not runtime conditions.
func NewCard(attack uint8, t CardType, physicalDefense, magicalDefense uint8, arrows Arrows) Card {
	if attack > 0xF {
		panic(fmt.Sprintf("game: attack %#x outside expected range 0-F", attack))
	}
	if physicalDefense > 0xF {
		panic(fmt.Sprintf("game: physical defense %#x outside expected range 0-F", physicalDefense))
	}
	if magicalDefense > 0xF {
		panic(fmt.Sprintf("game: magical defense %#x outside expected range 0-F", magicalDefense))
	}
	return Card{
		Type:            t,
		Attack:          attack,
		PhysicalDefense: physicalDefense,
		MagicalDefense:  magicalDefense,
		Arrows:          arrows,
	}
}

// String renders the card in the conventional 4-glyph form, e.g. "8P23":
// attack digit, type letter, physical defense digit, magical defense digit.
func (c Card) String() string {
	return fmt.Sprintf("%X%s%X%X", c.Attack, c.Type, c.PhysicalDefense, c.MagicalDefense)
}

// Player identifies one of the two players. PlayerNone marks a drawn match.
type Player uint8

const (
	PlayerNone Player = iota
	Player1
	Player2
)

// Opposite returns the other player.
func (p Player) Opposite() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

// String returns "P1", "P2" or "-".
func (p Player) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "-"
	}
}

// OwnedCard is a card on the board together with its current owner.
// Ownership changes as cards are flipped.
type OwnedCard struct {
	Owner Player
	Card  Card
}
