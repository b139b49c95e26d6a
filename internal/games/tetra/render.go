package tetra

import (
	"fmt"

	"github.com/quadcell/tetra/internal/core"
	"github.com/quadcell/tetra/internal/game"
)

// Board cell geometry on screen.
const (
	boardX    = 1
	boardY    = 2
	cellPitch = 8
	rowPitch  = 4
)

const (
	glyphUp        = '▲'
	glyphUpRight   = '◥'
	glyphRight     = '▶'
	glyphDownRight = '◢'
	glyphDown      = '▼'
	glyphDownLeft  = '◣'
	glyphLeft      = '◀'
	glyphUpLeft    = '◤'
)

func ownerColor(p game.Player) core.Color {
	switch p {
	case game.Player1:
		return core.ColorBlue
	case game.Player2:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}

// Render draws the whole match: board, hands (or candidate hands during
// picking), a status line and the tail of the match log.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", minWidth, minHeight))
		return
	}

	header := fmt.Sprintf("%s  [%s]", g.title, g.system)
	dst.DrawText(boardX, 0, header)

	g.renderBoard(dst)

	if g.match.Status() == game.StatusPickingHands {
		g.renderCandidates(dst)
	} else {
		g.renderHands(dst)
	}

	g.renderStatus(dst)
	g.renderLog(dst)
}

func (g *Game) renderBoard(dst *core.Screen) {
	for cell := 0; cell < game.BoardCells; cell++ {
		row, col := cell/game.BoardCols, cell%game.BoardCols
		x := boardX + col*cellPitch
		y := boardY + row*rowPitch
		g.renderCell(dst, x, y, cell)
	}
}

func (g *Game) renderCell(dst *core.Screen, x, y, cell int) {
	square := g.match.CellAt(cell)

	color := core.ColorDarkGray
	if square.Card != nil {
		color = ownerColor(square.Card.Owner)
	}
	if g.isCursorCell(cell) {
		color = core.ColorYellow
	}
	if g.isChoiceCell(cell) {
		color = core.ColorMagenta
	}

	box := core.NewRect(x, y, cellPitch, rowPitch+1)
	drawColoredBox(dst, box, color)

	if square.Blocked {
		for yy := y + 1; yy < y+rowPitch; yy++ {
			for xx := x + 1; xx < x+cellPitch-1; xx++ {
				dst.SetColored(xx, yy, '▒', core.ColorDarkGray)
			}
		}
		return
	}

	if square.Card == nil {
		dst.SetColored(x+cellPitch/2, y+rowPitch/2, '·', core.ColorDarkGray)
		return
	}

	card := square.Card.Card
	cardColor := ownerColor(square.Card.Owner)

	// arrows sit on the cell frame, stats in the middle
	if card.Arrows.Has(game.UpLeft) {
		dst.SetColored(x+1, y, glyphUpLeft, cardColor)
	}
	if card.Arrows.Has(game.Up) {
		dst.SetColored(x+cellPitch/2, y, glyphUp, cardColor)
	}
	if card.Arrows.Has(game.UpRight) {
		dst.SetColored(x+cellPitch-2, y, glyphUpRight, cardColor)
	}
	if card.Arrows.Has(game.Left) {
		dst.SetColored(x, y+rowPitch/2, glyphLeft, cardColor)
	}
	if card.Arrows.Has(game.Right) {
		dst.SetColored(x+cellPitch-1, y+rowPitch/2, glyphRight, cardColor)
	}
	if card.Arrows.Has(game.DownLeft) {
		dst.SetColored(x+1, y+rowPitch, glyphDownLeft, cardColor)
	}
	if card.Arrows.Has(game.Down) {
		dst.SetColored(x+cellPitch/2, y+rowPitch, glyphDown, cardColor)
	}
	if card.Arrows.Has(game.DownRight) {
		dst.SetColored(x+cellPitch-2, y+rowPitch, glyphDownRight, cardColor)
	}

	dst.DrawTextColored(x+2, y+rowPitch/2, card.String(), cardColor)
}

func drawColoredBox(dst *core.Screen, r core.Rect, c core.Color) {
	dst.SetColored(r.X, r.Y, '┌', c)
	dst.SetColored(r.Right()-1, r.Y, '┐', c)
	dst.SetColored(r.X, r.Bottom()-1, '└', c)
	dst.SetColored(r.Right()-1, r.Bottom()-1, '┘', c)
	for x := r.X + 1; x < r.Right()-1; x++ {
		dst.SetColored(x, r.Y, '─', c)
		dst.SetColored(x, r.Bottom()-1, '─', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		dst.SetColored(r.X, y, '│', c)
		dst.SetColored(r.Right()-1, y, '│', c)
	}
}

func (g *Game) isCursorCell(cell int) bool {
	return g.match.Status() == game.StatusWaitingPlace &&
		g.match.Turn() == game.Player1 &&
		cell == g.cursor
}

func (g *Game) isChoiceCell(cell int) bool {
	if g.match.Status() != game.StatusWaitingBattle {
		return false
	}
	choices := g.match.Choices()
	return g.match.Turn() == game.Player1 && choices[g.choiceIdx].Cell == cell
}

func (g *Game) renderCandidates(dst *core.Screen) {
	x := boardX + game.BoardCols*cellPitch + 3
	dst.DrawText(x, boardY, "Pick a hand:")

	for i, hand := range g.match.Candidates() {
		y := boardY + 2 + i*(game.HandSize+2)
		marker := "  "
		color := core.ColorDefault
		if g.match.Turn() == game.Player1 && i == g.pickSlot {
			marker = "▶ "
			color = core.ColorYellow
		}
		dst.DrawTextColored(x, y, fmt.Sprintf("%sHand %d", marker, i+1), color)
		for j, card := range hand {
			dst.DrawTextColored(x+4, y+1+j, fmt.Sprintf("%s %s", card, card.Arrows), color)
		}
	}
}

func (g *Game) renderHands(dst *core.Screen) {
	x := boardX + game.BoardCols*cellPitch + 3

	g.renderHand(dst, x, boardY, "CPU", game.Player2, -1)

	selected := -1
	if g.match.Turn() == game.Player1 && g.match.Status() == game.StatusWaitingPlace {
		selected = g.handSlot
	}
	g.renderHand(dst, x, boardY+game.HandSize+3, "You", game.Player1, selected)
}

func (g *Game) renderHand(dst *core.Screen, x, y int, label string, p game.Player, selected int) {
	color := ownerColor(p)
	dst.DrawTextColored(x, y, fmt.Sprintf("%s (%d cards on board)", label, g.match.CardCount(p)), color)

	hand := g.match.HandOf(p)
	for i, card := range hand {
		line := y + 1 + i
		if card == nil {
			dst.DrawTextColored(x+2, line, "--", core.ColorDarkGray)
			continue
		}
		marker := "  "
		lineColor := color
		if i == selected {
			marker = "▶ "
			lineColor = core.ColorYellow
		}
		dst.DrawTextColored(x, line, fmt.Sprintf("%s%s %s", marker, card, card.Arrows), lineColor)
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	y := boardY + game.BoardRows*rowPitch + 2

	var status string
	switch {
	case g.paused:
		status = "Paused. P resumes."
	case g.match.Status() == game.StatusGameOver:
		switch g.match.Winner() {
		case game.Player1:
			status = "You win! R deals a new match."
		case game.Player2:
			status = "CPU wins. R deals a new match."
		default:
			status = "Draw. R deals a new match."
		}
	case g.match.Turn() == game.Player2:
		status = "CPU is thinking..."
	case g.match.Status() == game.StatusPickingHands:
		status = "Arrows select a hand, Enter confirms."
	case g.match.Status() == game.StatusWaitingPlace:
		status = "Arrows move, Tab cycles cards, Enter places."
	case g.match.Status() == game.StatusWaitingBattle:
		status = "Pick which defender to battle: arrows select, Enter fights."
	}
	dst.DrawText(boardX, y, status)
}

func (g *Game) renderLog(dst *core.Screen) {
	const tail = 3
	y := dst.Height() - tail
	for i, entry := range g.match.Log().Tail(tail) {
		dst.DrawTextColored(boardX, y+i, entry.String(), core.ColorGray)
	}
}
