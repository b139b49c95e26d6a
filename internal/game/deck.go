package game

import "sort"

// Hand and candidate sizing.
const (
	HandSize       = 5
	HandCandidates = 3

	// MaxBlockedCells bounds how many cells a board setup may block.
	MaxBlockedCells = 6
)

// Hand is a player's hand. Played cards are nil.
type Hand [HandSize]*Card

// CandidateHand is one of the pre-game hand choices.
type CandidateHand [HandSize]Card

// Remaining returns the number of unplayed cards.
func (h Hand) Remaining() int {
	n := 0
	for _, c := range h {
		if c != nil {
			n++
		}
	}
	return n
}

// RandomCard generates a card with the stat and type distribution of the
// original game: mid stats are common, extreme stats rare, assault cards
// rarest of the types.
func RandomCard(rng *Rng) Card {
	pick := func(values ...uint8) uint8 {
		return values[rng.Intn(len(values))]
	}

	randomStat := func() uint8 {
		switch n := rng.Float(); {
		case n < 0.05: // 5%
			return pick(0, 1)
		case n < 0.35: // 30%
			return pick(2, 3, 4, 5)
		case n < 0.8: // 45%
			return pick(6, 7, 8, 9, 10)
		case n < 0.95: // 15%
			return pick(11, 12, 13)
		default: // 5%
			return pick(14, 15)
		}
	}

	var cardType CardType
	switch n := rng.Float(); {
	case n < 0.40: // 40%
		cardType = Physical
	case n < 0.80: // 40%
		cardType = Magical
	case n < 0.95: // 15%
		cardType = Exploit
	default: // 5%
		cardType = Assault
	}

	arrows := Arrows(rng.Byte())

	return NewCard(randomStat(), cardType, randomStat(), randomStat(), arrows)
}

// estimateCardValue scores a card for hand balancing. It is deliberately
// rough; precise valuation would remove the player's room to strategize.
func estimateCardValue(card Card) float64 {
	statTotal := float64(card.Attack) + float64(card.PhysicalDefense) + float64(card.MagicalDefense)

	var typeWeight float64
	switch card.Type {
	case Physical, Magical:
		typeWeight = 1
	case Exploit:
		typeWeight = 1.75
	case Assault:
		typeWeight = 3.25
	}

	var arrowsValue float64
	switch card.Arrows.Count() {
	case 0:
		arrowsValue = 0
	case 1, 8:
		arrowsValue = 2
	case 2, 7:
		arrowsValue = 3
	case 3, 6:
		arrowsValue = 4
	default: // 4 or 5
		arrowsValue = 5
	}

	return typeWeight*statTotal + arrowsValue
}

// RandomCandidateHands generates the three pre-game hand choices. It deals a
// large set of random hands and keeps the window of three with the most
// similar estimated value, so neither pick is an obvious winner.
func RandomCandidateHands(rng *Rng) [HandCandidates]CandidateHand {
	const initialSet = 1000

	type valuedHand struct {
		value float64
		hand  CandidateHand
	}

	hands := make([]valuedHand, 0, initialSet)
	for i := 0; i < initialSet; i++ {
		var hand CandidateHand
		value := 0.0
		for j := range hand {
			hand[j] = RandomCard(rng)
			value += estimateCardValue(hand[j])
		}
		hands = append(hands, valuedHand{value: value, hand: hand})
	}

	sort.Slice(hands, func(i, j int) bool { return hands[i].value < hands[j].value })

	// find the window with the smallest value spread
	best := 0
	bestSpread := hands[HandCandidates-1].value - hands[0].value
	for i := 1; i+HandCandidates <= len(hands); i++ {
		spread := hands[i+HandCandidates-1].value - hands[i].value
		if spread < bestSpread {
			best = i
			bestSpread = spread
		}
	}

	var candidates [HandCandidates]CandidateHand
	for i := range candidates {
		candidates[i] = hands[best+i].hand
	}
	return candidates
}

// RandomBlockedCells picks the cells blocked for a match: up to
// MaxBlockedCells random cells, duplicates collapsing into fewer blocks.
func RandomBlockedCells(rng *Rng) []int {
	var blocked []int
	seen := make(map[int]bool)
	for i := uint8(0); i < rng.U8(0, MaxBlockedCells); i++ {
		cell := int(rng.U8(0, BoardCells-1))
		if !seen[cell] {
			seen[cell] = true
			blocked = append(blocked, cell)
		}
	}
	return blocked
}
