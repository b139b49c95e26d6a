// Package ai implements the built-in CPU opponent. It plays greedily off two
// precomputed tables checked in alongside it: the arrow interaction table
// (which cells a placement touches) and the per-system battle win
// probabilities. Regenerate both with "tetra gen" when the rules change.
package ai

import "github.com/quadcell/tetra/internal/game"

// exposurePenalty discounts placements whose arrows point at empty cells,
// where the opponent can later land a defender.
const exposurePenalty = 0.1

// Opponent is a greedy CPU player. It evaluates each legal move in
// isolation, one ply deep, which keeps it fast enough to run inside a UI
// tick and beatable enough to be fun.
type Opponent struct {
	player game.Player
}

// NewOpponent creates a CPU opponent playing as the given player.
func NewOpponent(player game.Player) *Opponent {
	return &Opponent{player: player}
}

// Player returns which side the opponent plays.
func (o *Opponent) Player() game.Player {
	return o.player
}

// PickHand chooses a candidate hand by total card strength, skipping the
// hand the other player already took.
func (o *Opponent) PickHand(m *game.Match) int {
	best, bestScore := -1, 0.0
	for i, hand := range m.Candidates() {
		if i == m.P1Pick() {
			continue
		}
		score := 0.0
		for _, card := range hand {
			score += cardStrength(card)
		}
		if best == -1 || score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

func cardStrength(card game.Card) float64 {
	defense := float64(card.PhysicalDefense+card.MagicalDefense) / 2
	return float64(game.AttackValue(card)) + defense + float64(card.Arrows.Count())
}

// PlaceCard picks the hand card and cell with the best expected immediate
// gain. Returns the hand index and the target cell.
func (o *Opponent) PlaceCard(m *game.Match) (handIndex, cell int) {
	bestHand, bestCell := -1, -1
	bestScore := 0.0

	hand := m.HandOf(o.player)
	for i, card := range hand {
		if card == nil {
			continue
		}
		for c := 0; c < game.BoardCells; c++ {
			square := m.CellAt(c)
			if square.Blocked || square.Card != nil {
				continue
			}
			score := o.scorePlacement(m, *card, c)
			if bestHand == -1 || score > bestScore {
				bestHand, bestCell, bestScore = i, c, score
			}
		}
	}
	return bestHand, bestCell
}

// scorePlacement estimates the card-count swing of placing a card: +1 per
// free flip, the expected value of each forced battle, and a small penalty
// per arrow left dangling over an empty cell.
func (o *Opponent) scorePlacement(m *game.Match, card game.Card, cell int) float64 {
	touched := Interactions(uint8(card.Arrows), cell)

	score := 0.0
	for _, n := range game.Neighbours(cell) {
		if touched&(1<<n.Cell) == 0 {
			continue
		}
		square := m.CellAt(n.Cell)
		if square.Card == nil {
			score -= exposurePenalty
			continue
		}
		if square.Card.Owner == o.player {
			continue
		}

		defender := square.Card.Card
		if !defender.Arrows.Has(n.Arrow.Reverse()) {
			score++
			continue
		}

		p := WinProbability(m.System(), game.AttackValue(card), game.DefenseValue(card, defender))
		// winning flips the defender, losing flips the placed card
		score += p - (1 - p)
	}

	return score
}

// ChooseBattle picks the pending defender the attacker is most likely to
// beat. Choices are sorted by cell, so ties resolve to the lowest cell.
func (o *Opponent) ChooseBattle(m *game.Match) int {
	attacker := m.CellAt(m.AttackerCell()).Card.Card

	best, bestProb := -1, 0.0
	for _, choice := range m.Choices() {
		p := WinProbability(m.System(), game.AttackValue(attacker), game.DefenseValue(attacker, choice.Card))
		if best == -1 || p > bestProb {
			best, bestProb = choice.Cell, p
		}
	}
	return best
}
