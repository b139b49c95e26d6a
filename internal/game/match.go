package game

import (
	"fmt"
	"sort"
)

// Status is the match state machine phase.
type Status uint8

const (
	// StatusPickingHands waits for both players to pick a candidate hand.
	StatusPickingHands Status = iota
	// StatusWaitingPlace waits for the current player to place a card.
	StatusWaitingPlace
	// StatusWaitingBattle waits for the attacker to pick which defender to
	// battle first.
	StatusWaitingBattle
	// StatusGameOver means the match has ended.
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusPickingHands:
		return "picking hands"
	case StatusWaitingPlace:
		return "waiting place"
	case StatusWaitingBattle:
		return "waiting battle"
	case StatusGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Cell is one square of the board.
type Cell struct {
	Blocked bool
	Card    *OwnedCard // nil when the square is empty or blocked
}

// BattleChoice is one defender the attacker may battle first.
type BattleChoice struct {
	Cell int
	Card Card
}

// Match is a full game: the board, both hands and the state machine driving
// placements, battles and flips. All mutation goes through PickHand,
// PlaceCard and ChooseBattle.
type Match struct {
	rng    *Rng
	system BattleSystem
	log    *Log

	status Status
	turn   Player
	winner Player

	board      [BoardCells]Cell
	candidates [HandCandidates]CandidateHand
	p1Hand     Hand
	p2Hand     Hand
	p1Pick     int

	attackerCell int
	choices      []BattleChoice
}

// NewMatch sets up a match: random blocked cells, three candidate hands, and
// player 1 picking first.
func NewMatch(system BattleSystem, rng *Rng) *Match {
	m := &Match{
		rng:    rng,
		system: system,
		log:    NewLog(),
		status: StatusPickingHands,
		turn:   Player1,
		p1Pick: -1,
	}
	for _, cell := range RandomBlockedCells(rng) {
		m.board[cell].Blocked = true
	}
	m.candidates = RandomCandidateHands(rng)
	return m
}

// Status returns the current phase.
func (m *Match) Status() Status { return m.status }

// Turn returns whose move it is. During hand picking it is the player whose
// pick is pending.
func (m *Match) Turn() Player { return m.turn }

// Winner returns the match winner, PlayerNone for a draw or while the match
// is still running.
func (m *Match) Winner() Player { return m.winner }

// System returns the battle system the match was created with.
func (m *Match) System() BattleSystem { return m.system }

// Seed returns the RNG seed, for records and replays.
func (m *Match) Seed() int64 { return m.rng.Seed() }

// Log returns the match log.
func (m *Match) Log() *Log { return m.log }

// CellAt returns the board square at the given cell.
func (m *Match) CellAt(cell int) Cell { return m.board[cell] }

// Candidates returns the three pre-game hand choices.
func (m *Match) Candidates() [HandCandidates]CandidateHand { return m.candidates }

// P1Pick returns player 1's candidate pick, -1 before it is made.
func (m *Match) P1Pick() int { return m.p1Pick }

// HandOf returns the given player's hand.
func (m *Match) HandOf(p Player) Hand {
	if p == Player1 {
		return m.p1Hand
	}
	return m.p2Hand
}

// AttackerCell returns the cell of the card awaiting a battle choice.
// Valid only in StatusWaitingBattle.
func (m *Match) AttackerCell() int { return m.attackerCell }

// Choices returns the pending battle choices, sorted by cell.
// Valid only in StatusWaitingBattle.
func (m *Match) Choices() []BattleChoice { return m.choices }

// CardCount returns how many board cards the given player owns.
func (m *Match) CardCount(p Player) int {
	n := 0
	for _, c := range m.board {
		if c.Card != nil && c.Card.Owner == p {
			n++
		}
	}
	return n
}

// PickHand assigns candidate hand pick to the player whose pick is pending.
// Player 1 picks first; player 2 may not pick the same hand. Once both have
// picked the match moves to placement with player 1 to move.
func (m *Match) PickHand(pick int) error {
	if m.status != StatusPickingHands {
		return fmt.Errorf("game: pick-hand in status %q", m.status)
	}
	if pick < 0 || pick >= HandCandidates {
		return fmt.Errorf("game: hand pick %d out of range", pick)
	}

	if m.turn == Player1 {
		m.p1Pick = pick
		m.turn = Player2
		return nil
	}

	if pick == m.p1Pick {
		return fmt.Errorf("game: hand %d has already been picked", pick)
	}

	for i := range m.candidates[m.p1Pick] {
		card1 := m.candidates[m.p1Pick][i]
		card2 := m.candidates[pick][i]
		m.p1Hand[i] = &card1
		m.p2Hand[i] = &card2
	}

	m.log.Append(Entry{Kind: EntrySetup, Seed: m.rng.Seed(), P1Pick: m.p1Pick, P2Pick: pick})

	m.status = StatusWaitingPlace
	m.turn = Player1
	m.log.Append(Entry{Kind: EntryNextTurn, Turn: m.turn})
	return nil
}

// PlaceCard plays the current player's hand card onto a cell and resolves the
// interactions it triggers: free flips of neighbours that do not point back,
// and battles against those that do.
func (m *Match) PlaceCard(handIndex, cell int) error {
	if m.status != StatusWaitingPlace {
		return fmt.Errorf("game: place-card in status %q", m.status)
	}
	if cell < 0 || cell >= BoardCells {
		return fmt.Errorf("game: cell %#x out of range", cell)
	}
	if m.board[cell].Blocked {
		return fmt.Errorf("game: cell %X is blocked", cell)
	}
	if m.board[cell].Card != nil {
		return fmt.Errorf("game: cell %X is not empty", cell)
	}
	if handIndex < 0 || handIndex >= HandSize {
		return fmt.Errorf("game: hand index %d out of range", handIndex)
	}

	hand := &m.p1Hand
	if m.turn == Player2 {
		hand = &m.p2Hand
	}
	card := hand[handIndex]
	if card == nil {
		return fmt.Errorf("game: card %d has already been played", handIndex)
	}
	hand[handIndex] = nil

	attacker := &OwnedCard{Owner: m.turn, Card: *card}
	m.board[cell].Card = attacker
	m.log.Append(Entry{Kind: EntryPlace, Card: *attacker, Cell: cell})

	m.resolveInteractions(cell)
	return nil
}

// ChooseBattle picks which pending defender the attacker battles first. If
// the attacker wins, the remaining interactions are re-resolved; already
// flipped cards no longer battle.
func (m *Match) ChooseBattle(cell int) error {
	if m.status != StatusWaitingBattle {
		return fmt.Errorf("game: choose-battle in status %q", m.status)
	}
	valid := false
	for _, choice := range m.choices {
		if choice.Cell == cell {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("game: cell %X is not a battle choice", cell)
	}

	attackerCell := m.attackerCell
	m.choices = nil

	if m.battle(attackerCell, cell) == WinnerAttacker {
		m.resolveInteractions(attackerCell)
		return nil
	}

	m.nextTurn()
	return nil
}

// resolveInteractions walks the attacker's arrows, splitting touched enemy
// cards into defenders (which point back) and free flips (which don't). With
// more than one defender the attacker must choose the battle order; otherwise
// any battle resolves immediately and free flips follow only if the attacker
// was not defeated.
func (m *Match) resolveInteractions(attackerCell int) {
	attacker := m.board[attackerCell].Card

	var defenders []BattleChoice
	var freeFlips []int
	for _, n := range Neighbours(attackerCell) {
		defender := m.board[n.Cell].Card
		if defender == nil || defender.Owner == attacker.Owner {
			continue
		}
		if !attacker.Card.Arrows.Has(n.Arrow) {
			continue
		}
		if defender.Card.Arrows.Has(n.Arrow.Reverse()) {
			defenders = append(defenders, BattleChoice{Cell: n.Cell, Card: defender.Card})
		} else {
			freeFlips = append(freeFlips, n.Cell)
		}
	}

	if len(defenders) > 1 {
		sort.Slice(defenders, func(i, j int) bool { return defenders[i].Cell < defenders[j].Cell })
		m.status = StatusWaitingBattle
		m.attackerCell = attackerCell
		m.choices = defenders
		return
	}

	winner := WinnerNone
	fought := false
	if len(defenders) == 1 {
		winner = m.battle(attackerCell, defenders[0].Cell)
		fought = true
	}

	if !fought || winner == WinnerAttacker {
		for _, cell := range freeFlips {
			defender := m.board[cell].Card
			// a combo flip may have taken the card already
			if defender.Owner != attacker.Owner {
				m.flip(defender, cell, false)
			}
		}
	}

	m.nextTurn()
}

// battle resolves a fight between two cells. The loser flips and combo-flips
// every enemy card its arrows point at, except the two battling cells.
func (m *Match) battle(attackerCell, defenderCell int) BattleWinner {
	attacker := m.board[attackerCell].Card
	defender := m.board[defenderCell].Card

	result := resolveBattle(m.rng, m.system, attacker.Card, defender.Card)
	m.log.Append(Entry{
		Kind:         EntryBattle,
		Attacker:     *attacker,
		AttackerCell: attackerCell,
		Defender:     *defender,
		DefenderCell: defenderCell,
		Result:       result,
	})

	loser, loserCell := defender, defenderCell
	if result.Winner != WinnerAttacker {
		// ties count against the attacker
		loser, loserCell = attacker, attackerCell
	}
	m.flip(loser, loserCell, false)

	for _, n := range Neighbours(loserCell) {
		if n.Cell == attackerCell || n.Cell == defenderCell {
			continue
		}
		comboed := m.board[n.Cell].Card
		if comboed == nil || comboed.Owner == loser.Owner {
			continue
		}
		if loser.Card.Arrows.Has(n.Arrow) {
			m.flip(comboed, n.Cell, true)
		}
	}

	return result.Winner
}

func (m *Match) flip(card *OwnedCard, cell int, viaCombo bool) {
	to := card.Owner.Opposite()
	m.log.Append(Entry{Kind: EntryFlip, Card: *card, Cell: cell, To: to, ViaCombo: viaCombo})
	card.Owner = to
}

// nextTurn ends the match when both hands are empty, otherwise passes the
// turn to the other player.
func (m *Match) nextTurn() {
	if m.p1Hand.Remaining() == 0 && m.p2Hand.Remaining() == 0 {
		p1, p2 := m.CardCount(Player1), m.CardCount(Player2)
		switch {
		case p1 > p2:
			m.winner = Player1
		case p2 > p1:
			m.winner = Player2
		default:
			m.winner = PlayerNone
		}
		m.status = StatusGameOver
		return
	}

	m.status = StatusWaitingPlace
	m.turn = m.turn.Opposite()
	m.log.Append(Entry{Kind: EntryNextTurn, Turn: m.turn})
}
