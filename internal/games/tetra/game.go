// Package tetra adapts a card match to the platform's game contract: it owns
// the cursor and phase-dependent input handling, delegates the rules to the
// match state machine, and lets the CPU opponent play the second seat.
package tetra

import (
	"github.com/quadcell/tetra/internal/ai"
	"github.com/quadcell/tetra/internal/core"
	"github.com/quadcell/tetra/internal/game"
	"github.com/quadcell/tetra/internal/registry"
)

const (
	// cpuActDelay paces CPU moves so the player can follow the board.
	cpuActDelay = 36

	minWidth  = 64
	minHeight = 22
)

// Game drives one card match against the CPU.
type Game struct {
	id     string
	title  string
	system game.BattleSystem

	runtime core.RuntimeConfig
	match   *game.Match
	cpu     *ai.Opponent

	cursor    int // board cell under the cursor
	handSlot  int // selected hand card
	pickSlot  int // candidate hand under the cursor
	choiceIdx int // selected battle choice

	cpuWait  int
	paused   bool
	tooSmall bool
	tick     int
}

// New creates the classic variant with the original battle rolls.
func New() *Game {
	return &Game{id: "tetra", title: "Tetra Master", system: game.OriginalSystem()}
}

// NewDice creates the variant where battle rolls are sums of six-sided dice.
func NewDice() *Game {
	return &Game{id: "tetra_dice", title: "Tetra Master (Dice)", system: game.DiceSystem(6)}
}

// NewDeterministic creates the variant without battle randomness.
func NewDeterministic() *Game {
	return &Game{id: "tetra_det", title: "Tetra Master (Deterministic)", system: game.DeterministicSystem()}
}

func (g *Game) ID() string    { return g.id }
func (g *Game) Title() string { return g.title }

// Match exposes the underlying match, for score recording.
func (g *Game) Match() *game.Match { return g.match }

// Reset starts a fresh match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tooSmall = runtime.ScreenW < minWidth || runtime.ScreenH < minHeight

	g.match = game.NewMatch(g.system, game.NewRng(runtime.Seed))
	g.cpu = ai.NewOpponent(game.Player2)

	g.cursor = 5
	g.handSlot = 0
	g.pickSlot = 0
	g.choiceIdx = 0
	g.cpuWait = cpuActDelay
	g.paused = false
	g.tick = 0
}

// Step advances the match by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if g.match.Status() == game.StatusGameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.match.Turn() == game.Player2 {
		g.stepCPU()
	} else {
		g.stepHuman(in)
	}

	return core.StepResult{State: g.State()}
}

// stepCPU lets the opponent act once its pacing delay has elapsed.
func (g *Game) stepCPU() {
	if g.cpuWait > 0 {
		g.cpuWait--
		return
	}
	g.cpuWait = cpuActDelay

	switch g.match.Status() {
	case game.StatusPickingHands:
		g.match.PickHand(g.cpu.PickHand(g.match))
	case game.StatusWaitingPlace:
		hand, cell := g.cpu.PlaceCard(g.match)
		g.match.PlaceCard(hand, cell)
	case game.StatusWaitingBattle:
		g.match.ChooseBattle(g.cpu.ChooseBattle(g.match))
	}
}

func (g *Game) stepHuman(in core.InputFrame) {
	switch g.match.Status() {
	case game.StatusPickingHands:
		g.stepPickHand(in)
	case game.StatusWaitingPlace:
		g.stepPlace(in)
	case game.StatusWaitingBattle:
		g.stepBattleChoice(in)
	}
}

func (g *Game) stepPickHand(in core.InputFrame) {
	if in.Has(core.ActionLeft) || in.Has(core.ActionUp) {
		g.pickSlot = (g.pickSlot + game.HandCandidates - 1) % game.HandCandidates
	}
	if in.Has(core.ActionRight) || in.Has(core.ActionDown) {
		g.pickSlot = (g.pickSlot + 1) % game.HandCandidates
	}
	if in.Has(core.ActionConfirm) {
		if g.match.PickHand(g.pickSlot) == nil {
			g.cpuWait = cpuActDelay
		}
	}
}

func (g *Game) stepPlace(in core.InputFrame) {
	row, col := g.cursor/game.BoardCols, g.cursor%game.BoardCols
	if in.Has(core.ActionUp) {
		row = core.Clamp(row-1, 0, game.BoardRows-1)
	}
	if in.Has(core.ActionDown) {
		row = core.Clamp(row+1, 0, game.BoardRows-1)
	}
	if in.Has(core.ActionLeft) {
		col = core.Clamp(col-1, 0, game.BoardCols-1)
	}
	if in.Has(core.ActionRight) {
		col = core.Clamp(col+1, 0, game.BoardCols-1)
	}
	g.cursor = row*game.BoardCols + col

	if in.Has(core.ActionCycle) {
		g.handSlot = g.nextHandSlot(g.handSlot + 1)
	}

	if in.Has(core.ActionConfirm) {
		g.handSlot = g.nextHandSlot(g.handSlot)
		if g.handSlot >= 0 && g.match.PlaceCard(g.handSlot, g.cursor) == nil {
			g.handSlot = g.nextHandSlot(0)
			g.choiceIdx = 0
			g.cpuWait = cpuActDelay
		}
	}
}

// nextHandSlot returns the first unplayed slot at or after from, wrapping
// once, or -1 when the hand is empty.
func (g *Game) nextHandSlot(from int) int {
	hand := g.match.HandOf(game.Player1)
	for i := 0; i < game.HandSize; i++ {
		slot := (from + i) % game.HandSize
		if hand[slot] != nil {
			return slot
		}
	}
	return -1
}

func (g *Game) stepBattleChoice(in core.InputFrame) {
	choices := g.match.Choices()
	if in.Has(core.ActionLeft) || in.Has(core.ActionUp) {
		g.choiceIdx = (g.choiceIdx + len(choices) - 1) % len(choices)
	}
	if in.Has(core.ActionRight) || in.Has(core.ActionDown) || in.Has(core.ActionCycle) {
		g.choiceIdx = (g.choiceIdx + 1) % len(choices)
	}
	if in.Has(core.ActionConfirm) {
		if g.match.ChooseBattle(choices[g.choiceIdx].Cell) == nil {
			g.choiceIdx = 0
			g.cpuWait = cpuActDelay
		}
	}
}

// State reports the player's card count as the score.
func (g *Game) State() core.GameState {
	if g.match == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.match.CardCount(game.Player1),
		GameOver: g.match.Status() == game.StatusGameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("tetra", func() registry.Game { return New() })
	registry.Register("tetra_dice", func() registry.Game { return NewDice() })
	registry.Register("tetra_det", func() registry.Game { return NewDeterministic() })
}
