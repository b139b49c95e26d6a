package game

import "testing"

func TestRandomCardStatsInRange(t *testing.T) {
	rng := NewRng(5)
	for i := 0; i < 1000; i++ {
		card := RandomCard(rng)
		if card.Attack > 0xF || card.PhysicalDefense > 0xF || card.MagicalDefense > 0xF {
			t.Fatalf("card %s has out-of-range stats", card)
		}
		if card.Type > Assault {
			t.Fatalf("card has unknown type %d", card.Type)
		}
	}
}

func TestRandomCandidateHandsShape(t *testing.T) {
	rng := NewRng(11)
	hands := RandomCandidateHands(rng)

	for i, hand := range hands {
		for j, card := range hand {
			if card.Attack > 0xF {
				t.Errorf("hand %d card %d out of range", i, j)
			}
		}
	}

	// candidate values should be close: the spread across the three hands
	// must be small relative to a hand's total value
	values := make([]float64, HandCandidates)
	for i, hand := range hands {
		for _, card := range hand {
			values[i] += estimateCardValue(card)
		}
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max-min > max*0.25 {
		t.Errorf("candidate hand values too far apart: %v", values)
	}
}

func TestRandomBlockedCells(t *testing.T) {
	rng := NewRng(23)
	for i := 0; i < 200; i++ {
		blocked := RandomBlockedCells(rng)
		if len(blocked) > MaxBlockedCells {
			t.Fatalf("%d blocked cells, max %d", len(blocked), MaxBlockedCells)
		}
		seen := make(map[int]bool)
		for _, cell := range blocked {
			if cell < 0 || cell >= BoardCells {
				t.Fatalf("blocked cell %d out of range", cell)
			}
			if seen[cell] {
				t.Fatalf("cell %d blocked twice", cell)
			}
			seen[cell] = true
		}
	}
}

func TestEstimateCardValueOrdering(t *testing.T) {
	// more arrows and better stats must not lower the estimate
	weak := estimateCardValue(NewCard(1, Physical, 1, 1, 0))
	strong := estimateCardValue(NewCard(0xF, Physical, 0xF, 0xF, AllArrows))
	if strong <= weak {
		t.Errorf("strong card valued %f, weak %f", strong, weak)
	}

	// assault weighs heavier than physical at equal stats
	physical := estimateCardValue(NewCard(8, Physical, 8, 8, Up))
	assault := estimateCardValue(NewCard(8, Assault, 8, 8, Up))
	if assault <= physical {
		t.Errorf("assault valued %f, physical %f", assault, physical)
	}
}
