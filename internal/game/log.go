package game

import "fmt"

// EntryKind discriminates match log entries.
type EntryKind uint8

const (
	EntrySetup EntryKind = iota
	EntryNextTurn
	EntryPlace
	EntryFlip
	EntryBattle
)

// Entry is a single match log record. Only the fields relevant to its kind
// are populated.
type Entry struct {
	Kind EntryKind

	// EntrySetup
	Seed   int64
	P1Pick int
	P2Pick int

	// EntryNextTurn
	Turn Player

	// EntryPlace, EntryFlip
	Card     OwnedCard
	Cell     int
	To       Player // EntryFlip
	ViaCombo bool   // EntryFlip

	// EntryBattle
	Attacker     OwnedCard
	AttackerCell int
	Defender     OwnedCard
	DefenderCell int
	Result       BattleResult
}

// String renders the entry as a single log line.
func (e Entry) String() string {
	switch e.Kind {
	case EntrySetup:
		return fmt.Sprintf("setup seed=%d picks=%d/%d", e.Seed, e.P1Pick, e.P2Pick)
	case EntryNextTurn:
		return fmt.Sprintf("%s to move", e.Turn)
	case EntryPlace:
		return fmt.Sprintf("%s places %s on %X", e.Card.Owner, e.Card.Card, e.Cell)
	case EntryFlip:
		if e.ViaCombo {
			return fmt.Sprintf("%s on %X combos to %s", e.Card.Card, e.Cell, e.To)
		}
		return fmt.Sprintf("%s on %X flips to %s", e.Card.Card, e.Cell, e.To)
	case EntryBattle:
		return fmt.Sprintf("%s (%X) attacks %s (%X): %d vs %d, %s wins",
			e.Attacker.Card, e.AttackerCell,
			e.Defender.Card, e.DefenderCell,
			e.Result.Attack.Roll, e.Result.Defense.Roll,
			e.Result.Winner)
	default:
		return "unknown entry"
	}
}

// Log accumulates match events in order.
type Log struct {
	entries []Entry
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds an entry.
func (l *Log) Append(e Entry) {
	l.entries = append(l.entries, e)
}

// Entries returns all entries, oldest first. The slice must not be mutated.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Tail returns the last n entries, fewer if the log is shorter.
func (l *Log) Tail(n int) []Entry {
	if n >= len(l.entries) {
		return l.entries
	}
	return l.entries[len(l.entries)-n:]
}
