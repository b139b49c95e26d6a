package game

import "testing"

// testMatch builds a match in placement phase with the given hands, skipping
// setup so tests control the board exactly.
func testMatch(p1, p2 []Card) *Match {
	m := &Match{
		rng:    NewRng(1),
		system: DeterministicSystem(),
		log:    NewLog(),
		status: StatusWaitingPlace,
		turn:   Player1,
		p1Pick: -1,
	}
	for i := range p1 {
		card := p1[i]
		m.p1Hand[i] = &card
	}
	for i := range p2 {
		card := p2[i]
		m.p2Hand[i] = &card
	}
	return m
}

func (m *Match) put(cell int, owner Player, card Card) {
	m.board[cell].Card = &OwnedCard{Owner: owner, Card: card}
}

func TestPickHandFlow(t *testing.T) {
	m := NewMatch(DeterministicSystem(), NewRng(42))

	if m.Status() != StatusPickingHands {
		t.Fatalf("status %s, want picking hands", m.Status())
	}
	if err := m.PickHand(3); err == nil {
		t.Error("out-of-range pick should fail")
	}
	if err := m.PickHand(1); err != nil {
		t.Fatalf("p1 pick: %v", err)
	}
	if m.Turn() != Player2 {
		t.Fatalf("turn %s after p1 pick, want P2", m.Turn())
	}
	if err := m.PickHand(1); err == nil {
		t.Error("p2 picking the same hand should fail")
	}
	if err := m.PickHand(0); err != nil {
		t.Fatalf("p2 pick: %v", err)
	}

	if m.Status() != StatusWaitingPlace {
		t.Fatalf("status %s after picks, want waiting place", m.Status())
	}
	if m.Turn() != Player1 {
		t.Errorf("turn %s, want P1", m.Turn())
	}
	if m.HandOf(Player1).Remaining() != HandSize || m.HandOf(Player2).Remaining() != HandSize {
		t.Error("both hands should be full after picking")
	}

	candidates := m.Candidates()
	for i := 0; i < HandSize; i++ {
		if *m.HandOf(Player1)[i] != candidates[1][i] {
			t.Fatalf("p1 hand card %d does not match candidate hand 1", i)
		}
		if *m.HandOf(Player2)[i] != candidates[0][i] {
			t.Fatalf("p2 hand card %d does not match candidate hand 0", i)
		}
	}
}

func TestPlaceCardValidation(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(5, Physical, 5, 5, 0)},
		[]Card{NewCard(5, Physical, 5, 5, 0)},
	)
	m.board[3].Blocked = true
	m.put(7, Player2, NewCard(1, Physical, 1, 1, 0))

	if err := m.PlaceCard(0, 3); err == nil {
		t.Error("placing on a blocked cell should fail")
	}
	if err := m.PlaceCard(0, 7); err == nil {
		t.Error("placing on an occupied cell should fail")
	}
	if err := m.PlaceCard(0, 16); err == nil {
		t.Error("placing out of range should fail")
	}
	if err := m.PlaceCard(2, 0); err == nil {
		t.Error("playing an empty hand slot should fail")
	}
	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatalf("valid placement: %v", err)
	}
	if m.Turn() != Player2 {
		t.Errorf("turn %s after placement, want P2", m.Turn())
	}
}

func TestFreeFlip(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(5, Physical, 5, 5, Right)},
		[]Card{NewCard(5, Physical, 5, 5, 0)},
	)
	// defender on cell 1 has no left arrow, so it flips without a fight
	m.put(1, Player2, NewCard(0xF, Physical, 0xF, 0xF, Up))

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if owner := m.board[1].Card.Owner; owner != Player1 {
		t.Errorf("cell 1 owned by %s, want P1", owner)
	}
}

func TestNoFlipWithoutArrow(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(5, Physical, 5, 5, Down)},
		[]Card{NewCard(5, Physical, 5, 5, 0)},
	)
	m.put(1, Player2, NewCard(1, Physical, 1, 1, 0))

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if owner := m.board[1].Card.Owner; owner != Player2 {
		t.Errorf("cell 1 owned by %s, want P2 untouched", owner)
	}
}

func TestOwnCardsDoNotInteract(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(5, Physical, 5, 5, Right), NewCard(5, Physical, 5, 5, AllArrows)},
		[]Card{NewCard(5, Physical, 5, 5, 0), NewCard(5, Physical, 5, 5, 0)},
	)
	m.put(1, Player1, NewCard(1, Physical, 1, 1, 0))

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if owner := m.board[1].Card.Owner; owner != Player1 {
		t.Errorf("own card on cell 1 changed owner to %s", owner)
	}
}

func TestBattleAttackerWins(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(0xF, Physical, 0, 0, Right)},
		[]Card{NewCard(5, Physical, 5, 5, 0)},
	)
	// defender points back, forcing a battle it loses (F attack vs 2 physical)
	m.put(1, Player2, NewCard(0, Physical, 2, 0xF, Left))

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if owner := m.board[1].Card.Owner; owner != Player1 {
		t.Errorf("beaten defender owned by %s, want P1", owner)
	}
}

func TestBattleDefenderWins(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(2, Physical, 5, 5, Right)},
		[]Card{NewCard(5, Physical, 5, 5, 0)},
	)
	m.put(1, Player2, NewCard(0, Physical, 0xF, 0, Left))

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if owner := m.board[0].Card.Owner; owner != Player2 {
		t.Errorf("defeated attacker owned by %s, want P2", owner)
	}
	if owner := m.board[1].Card.Owner; owner != Player2 {
		t.Errorf("winning defender owned by %s, want P2", owner)
	}
}

func TestTieFlipsAttacker(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(7, Physical, 5, 5, Right)},
		[]Card{NewCard(5, Physical, 5, 5, 0)},
	)
	m.put(1, Player2, NewCard(0, Physical, 7, 0, Left))

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if owner := m.board[0].Card.Owner; owner != Player2 {
		t.Errorf("tied attacker owned by %s, want P2", owner)
	}
}

func TestComboFlip(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(0xF, Physical, 0, 0, Right)},
		[]Card{NewCard(5, Physical, 5, 5, 0)},
	)
	// the defender on cell 1 loses the battle; its down arrow combos the
	// card on cell 5
	m.put(1, Player2, NewCard(0, Physical, 2, 0, Left|Down))
	m.put(5, Player2, NewCard(0xF, Physical, 0xF, 0xF, 0))

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if owner := m.board[1].Card.Owner; owner != Player1 {
		t.Errorf("defender owned by %s, want P1", owner)
	}
	if owner := m.board[5].Card.Owner; owner != Player1 {
		t.Errorf("comboed card owned by %s, want P1", owner)
	}
}

func TestLostBattleSkipsFreeFlips(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(2, Physical, 5, 5, Right | Down)},
		[]Card{NewCard(5, Physical, 5, 5, 0)},
	)
	// cell 1 defends and wins; the free flip on cell 4 must not happen
	m.put(1, Player2, NewCard(0, Physical, 0xF, 0, Left))
	m.put(4, Player2, NewCard(1, Physical, 1, 1, 0))

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if owner := m.board[4].Card.Owner; owner != Player2 {
		t.Errorf("cell 4 owned by %s, want P2 untouched", owner)
	}
}

func TestMultipleDefendersWaitForChoice(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(0xF, Physical, 0, 0, Right | Down)},
		[]Card{NewCard(5, Physical, 5, 5, 0)},
	)
	m.put(1, Player2, NewCard(0, Physical, 2, 0, Left))
	m.put(4, Player2, NewCard(0, Physical, 3, 0, Up))

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if m.Status() != StatusWaitingBattle {
		t.Fatalf("status %s, want waiting battle", m.Status())
	}

	choices := m.Choices()
	if len(choices) != 2 || choices[0].Cell != 1 || choices[1].Cell != 4 {
		t.Fatalf("choices %v, want cells 1 and 4 in order", choices)
	}
	if m.AttackerCell() != 0 {
		t.Errorf("attacker cell %d, want 0", m.AttackerCell())
	}

	if err := m.ChooseBattle(9); err == nil {
		t.Error("choosing a non-choice cell should fail")
	}
	if err := m.ChooseBattle(4); err != nil {
		t.Fatal(err)
	}

	// attacker beats both defenders in sequence
	if owner := m.board[1].Card.Owner; owner != Player1 {
		t.Errorf("cell 1 owned by %s, want P1", owner)
	}
	if owner := m.board[4].Card.Owner; owner != Player1 {
		t.Errorf("cell 4 owned by %s, want P1", owner)
	}
	if m.Turn() != Player2 {
		t.Errorf("turn %s after battles, want P2", m.Turn())
	}
}

func TestLostChosenBattleCancelsRest(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(2, Physical, 0, 0, Right | Down)},
		[]Card{NewCard(5, Physical, 5, 5, 0)},
	)
	m.put(1, Player2, NewCard(0, Physical, 0xF, 0, Left))
	m.put(4, Player2, NewCard(0, Physical, 0xE, 0, Up))

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := m.ChooseBattle(1); err != nil {
		t.Fatal(err)
	}

	// attacker lost the chosen battle: it flips, the other defender is
	// left alone and the turn passes
	if owner := m.board[0].Card.Owner; owner != Player2 {
		t.Errorf("attacker owned by %s, want P2", owner)
	}
	if owner := m.board[4].Card.Owner; owner != Player2 {
		t.Errorf("cell 4 owned by %s, want P2 untouched", owner)
	}
	if m.Status() != StatusWaitingPlace {
		t.Errorf("status %s, want waiting place", m.Status())
	}
	if m.Turn() != Player2 {
		t.Errorf("turn %s, want P2", m.Turn())
	}
}

func TestGameOverCountsCards(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(5, Physical, 0xF, 5, Right)},
		[]Card{NewCard(2, Physical, 5, 5, Left)},
	)

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if m.Status() == StatusGameOver {
		t.Fatal("game over before p2 played")
	}
	// p2 attacks into p1's defender and loses, ending 2-0
	if err := m.PlaceCard(0, 1); err != nil {
		t.Fatal(err)
	}

	if m.Status() != StatusGameOver {
		t.Fatalf("status %s, want game over", m.Status())
	}
	if m.Winner() != Player1 {
		t.Errorf("winner %s, want P1", m.Winner())
	}
	if m.CardCount(Player1) != 2 || m.CardCount(Player2) != 0 {
		t.Errorf("card counts %d/%d, want 2/0", m.CardCount(Player1), m.CardCount(Player2))
	}
}

func TestDrawnMatch(t *testing.T) {
	m := testMatch(
		[]Card{NewCard(5, Physical, 5, 5, 0)},
		[]Card{NewCard(5, Physical, 5, 5, 0)},
	)

	if err := m.PlaceCard(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := m.PlaceCard(0, 0xF); err != nil {
		t.Fatal(err)
	}

	if m.Status() != StatusGameOver {
		t.Fatalf("status %s, want game over", m.Status())
	}
	if m.Winner() != PlayerNone {
		t.Errorf("winner %s, want draw", m.Winner())
	}
}

func TestMatchDeterminism(t *testing.T) {
	run := func(seed int64) []Entry {
		m := NewMatch(OriginalSystem(), NewRng(seed))
		if err := m.PickHand(0); err != nil {
			t.Fatal(err)
		}
		if err := m.PickHand(1); err != nil {
			t.Fatal(err)
		}
		for cell := 0; cell < BoardCells && m.Status() != StatusGameOver; cell++ {
			if m.Status() == StatusWaitingBattle {
				if err := m.ChooseBattle(m.Choices()[0].Cell); err != nil {
					t.Fatal(err)
				}
				continue
			}
			hand := m.HandOf(m.Turn())
			slot := -1
			for i, c := range hand {
				if c != nil {
					slot = i
					break
				}
			}
			if slot == -1 {
				break
			}
			if m.CellAt(cell).Blocked || m.CellAt(cell).Card != nil {
				continue
			}
			if err := m.PlaceCard(slot, cell); err != nil {
				t.Fatal(err)
			}
		}
		return m.Log().Entries()
	}

	a, b := run(77), run(77)
	if len(a) != len(b) {
		t.Fatalf("log lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
