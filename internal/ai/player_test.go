package ai

import (
	"testing"

	"github.com/quadcell/tetra/internal/game"
)

func TestInteractionsMatchesComputed(t *testing.T) {
	// the checked-in table must agree with the live computation for every
	// (arrows, cell) pair
	for arrows := 0; arrows < 256; arrows++ {
		for cell := 0; cell < game.BoardCells; cell++ {
			want := game.ComputeInteraction(game.Arrows(arrows), cell)
			if got := Interactions(uint8(arrows), cell); got != want {
				t.Fatalf("Interactions(%08b, %X) = %016b, want %016b", arrows, cell, got, want)
			}
		}
	}
}

func TestWinProbability(t *testing.T) {
	det := game.DeterministicSystem()
	if p := WinProbability(det, 5, 2); p != 1 {
		t.Errorf("deterministic 5 v 2 = %f, want 1", p)
	}
	if p := WinProbability(det, 2, 5); p != 0 {
		t.Errorf("deterministic 2 v 5 = %f, want 0", p)
	}
	if p := WinProbability(det, 5, 5); p != 0 {
		t.Errorf("deterministic 5 v 5 = %f, want 0 (ties lose)", p)
	}

	if p := WinProbability(game.DiceSystem(6), 1, 0); p != 1 {
		t.Errorf("dice 1 v 0 = %f, want 1", p)
	}
	if p := WinProbability(game.OriginalSystem(), 0xF, 0); p < 0.9 {
		t.Errorf("original F v 0 = %f, want near-certain", p)
	}

	// systems without a generated table fall back to even odds
	if p := WinProbability(game.DiceSystem(20), 0xF, 0); p != 0.5 {
		t.Errorf("unsupported dice sides = %f, want 0.5", p)
	}
}

func TestOpponentPickHandAvoidsTakenHand(t *testing.T) {
	m := game.NewMatch(game.DeterministicSystem(), game.NewRng(3))
	if err := m.PickHand(0); err != nil {
		t.Fatal(err)
	}

	cpu := NewOpponent(game.Player2)
	pick := cpu.PickHand(m)
	if pick == 0 {
		t.Error("opponent picked the hand player 1 already took")
	}
	if err := m.PickHand(pick); err != nil {
		t.Fatalf("opponent's pick rejected: %v", err)
	}
}

// playOut runs a full CPU vs CPU match, failing on any illegal move.
func playOut(t *testing.T, system game.BattleSystem, seed int64) *game.Match {
	t.Helper()

	m := game.NewMatch(system, game.NewRng(seed))
	cpus := map[game.Player]*Opponent{
		game.Player1: NewOpponent(game.Player1),
		game.Player2: NewOpponent(game.Player2),
	}

	if err := m.PickHand(cpus[game.Player1].PickHand(m)); err != nil {
		t.Fatalf("p1 pick: %v", err)
	}
	if err := m.PickHand(cpus[game.Player2].PickHand(m)); err != nil {
		t.Fatalf("p2 pick: %v", err)
	}

	for steps := 0; m.Status() != game.StatusGameOver; steps++ {
		if steps > 100 {
			t.Fatal("match did not finish in 100 steps")
		}
		cpu := cpus[m.Turn()]
		switch m.Status() {
		case game.StatusWaitingPlace:
			hand, cell := cpu.PlaceCard(m)
			if err := m.PlaceCard(hand, cell); err != nil {
				t.Fatalf("step %d: place %d on %X: %v", steps, hand, cell, err)
			}
		case game.StatusWaitingBattle:
			if err := m.ChooseBattle(cpu.ChooseBattle(m)); err != nil {
				t.Fatalf("step %d: battle choice: %v", steps, err)
			}
		}
	}
	return m
}

func TestOpponentPlaysFullMatch(t *testing.T) {
	systems := []game.BattleSystem{
		game.DeterministicSystem(),
		game.OriginalSystem(),
		game.DiceSystem(6),
	}
	for _, system := range systems {
		for seed := int64(1); seed <= 5; seed++ {
			m := playOut(t, system, seed)

			// every non-blocked card ends up on the board
			placed := m.CardCount(game.Player1) + m.CardCount(game.Player2)
			if placed != 2*game.HandSize {
				t.Errorf("%s seed %d: %d cards on board, want %d", system, seed, placed, 2*game.HandSize)
			}
		}
	}
}

func TestOpponentDeterministic(t *testing.T) {
	a := playOut(t, game.OriginalSystem(), 9)
	b := playOut(t, game.OriginalSystem(), 9)

	if a.Winner() != b.Winner() {
		t.Errorf("winners differ: %s vs %s", a.Winner(), b.Winner())
	}
	ae, be := a.Log().Entries(), b.Log().Entries()
	if len(ae) != len(be) {
		t.Fatalf("log lengths differ: %d vs %d", len(ae), len(be))
	}
	for i := range ae {
		if ae[i] != be[i] {
			t.Fatalf("log entry %d differs", i)
		}
	}
}
