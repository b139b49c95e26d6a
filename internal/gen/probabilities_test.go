package gen

import (
	"bytes"
	"os"
	"testing"

	"github.com/quadcell/tetra/internal/game"
)

func TestWinTableDeterministic(t *testing.T) {
	table, err := WinTable(game.DeterministicSystem())
	if err != nil {
		t.Fatal(err)
	}
	for att := 0; att < 16; att++ {
		for def := 0; def < 16; def++ {
			want := 0.0
			if att > def {
				want = 1.0
			}
			if table[att][def] != want {
				t.Errorf("%X v %X = %f, want %f", att, def, table[att][def], want)
			}
		}
	}
}

func TestWinTableOriginalProperties(t *testing.T) {
	table, err := WinTable(game.OriginalSystem())
	if err != nil {
		t.Fatal(err)
	}

	for att := 0; att < 16; att++ {
		for def := 0; def < 16; def++ {
			p := table[att][def]
			if p < 0 || p > 1 {
				t.Fatalf("%X v %X = %f, outside [0, 1]", att, def, p)
			}
			// attacker and defender wins plus ties partition the outcomes
			if q := table[def][att]; p+q > 1 {
				t.Errorf("%X v %X: %f + %f exceeds 1", att, def, p, q)
			}
		}
	}

	// a stronger attack never hurts against a fixed defense
	for def := 0; def < 16; def++ {
		for att := 1; att < 16; att++ {
			if table[att][def] < table[att-1][def] {
				t.Errorf("win prob drops from %X to %X against %X", att-1, att, def)
			}
		}
	}

	if p := table[0xF][0x0]; p < 0.9 {
		t.Errorf("F v 0 = %f, expected a near-certain win", p)
	}
}

func TestWinTableDice(t *testing.T) {
	table, err := WinTable(game.DiceSystem(6))
	if err != nil {
		t.Fatal(err)
	}

	// a zero stat rolls zero and can never beat a live one
	for def := 1; def < 16; def++ {
		if table[0][def] != 0 {
			t.Errorf("0 v %X = %f, want 0", def, table[0][def])
		}
	}
	// any live stat always beats a zero roll
	for att := 1; att < 16; att++ {
		if table[att][0] != 1 {
			t.Errorf("%X v 0 = %f, want 1", att, table[att][0])
		}
	}

	// equal stats favor neither side beyond the tie margin
	for v := 1; v < 16; v++ {
		if p := table[v][v]; p >= 0.5 {
			t.Errorf("%X v %X = %f, mirror matchup should stay under 0.5", v, v, p)
		}
	}

	if _, err := WinTable(game.DiceSystem(1)); err == nil {
		t.Error("one-sided dice should be rejected")
	}
}

func TestDiceCounts(t *testing.T) {
	// two six-sided dice: 36 outcomes, 7 is the most common sum
	counts := diceCounts(6, 2)
	var total uint64
	for _, n := range counts {
		total += n
	}
	if total != 36 {
		t.Errorf("2d6 has %d outcomes, want 36", total)
	}
	if counts[7] != 6 {
		t.Errorf("2d6 rolls 7 in %d ways, want 6", counts[7])
	}
	if counts[1] != 0 {
		t.Errorf("2d6 cannot roll 1, got %d ways", counts[1])
	}

	// zero dice always sum to zero
	zero := diceCounts(6, 0)
	if len(zero) != 1 || zero[0] != 1 {
		t.Errorf("0 dice counts = %v, want [1]", zero)
	}
}

func TestWriteProbabilitiesMatchesCheckedIn(t *testing.T) {
	checkedIn, err := os.ReadFile("../ai/probs.go")
	if err != nil {
		t.Fatalf("reading checked-in tables: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteProbabilities(&buf); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(buf.Bytes(), checkedIn) {
		t.Error("checked-in probability tables are stale, regenerate with: tetra gen probabilities")
	}
}
