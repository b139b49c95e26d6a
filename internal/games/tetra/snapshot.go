package tetra

import "github.com/quadcell/tetra/internal/game"

// Snapshot is a point-in-time view of the match, used by tests and by the
// platform when recording finished matches.
type Snapshot struct {
	Tick    int
	Status  game.Status
	Turn    game.Player
	Winner  game.Player
	P1Cards int
	P2Cards int
	Seed    int64
}

// Snapshot captures the current match state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Status:  g.match.Status(),
		Turn:    g.match.Turn(),
		Winner:  g.match.Winner(),
		P1Cards: g.match.CardCount(game.Player1),
		P2Cards: g.match.CardCount(game.Player2),
		Seed:    g.match.Seed(),
	}
}
