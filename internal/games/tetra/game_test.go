package tetra

import (
	"strings"
	"testing"

	"github.com/quadcell/tetra/internal/core"
	"github.com/quadcell/tetra/internal/game"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
	}
}

func TestGameIDs(t *testing.T) {
	tests := []struct {
		game  *Game
		id    string
		title string
	}{
		{New(), "tetra", "Tetra Master"},
		{NewDice(), "tetra_dice", "Tetra Master (Dice)"},
		{NewDeterministic(), "tetra_det", "Tetra Master (Deterministic)"},
	}
	for _, tt := range tests {
		if tt.game.ID() != tt.id {
			t.Errorf("ID = %s, want %s", tt.game.ID(), tt.id)
		}
		if tt.game.Title() != tt.title {
			t.Errorf("Title = %s, want %s", tt.game.Title(), tt.title)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// same seed and same inputs must produce identical snapshots
	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(12345))

		input := core.NewInputFrame()
		for i := 0; i < 600; i++ {
			input.Clear()
			switch i {
			case 5:
				input.Set(core.ActionRight)
			case 10:
				input.Set(core.ActionConfirm) // pick a hand
			case 200:
				input.Set(core.ActionConfirm) // try a placement
			case 300:
				input.Set(core.ActionDown)
			case 310:
				input.Set(core.ActionConfirm)
			}
			g.Step(input)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestHandPickAdvancesToPlacement(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	if g.match.Status() != game.StatusPickingHands {
		t.Fatalf("status %s, want picking hands", g.match.Status())
	}

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	if g.match.Turn() != game.Player2 {
		t.Fatalf("turn %s after player pick, want P2", g.match.Turn())
	}

	// let the CPU take its pick
	idle := core.NewInputFrame()
	for i := 0; i < cpuActDelay+2 && g.match.Status() == game.StatusPickingHands; i++ {
		g.Step(idle)
	}

	if g.match.Status() != game.StatusWaitingPlace {
		t.Errorf("status %s after CPU pick, want waiting place", g.match.Status())
	}
	if g.match.Turn() != game.Player1 {
		t.Errorf("turn %s, want P1", g.match.Turn())
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	idle := core.NewInputFrame()
	for i := 0; i < cpuActDelay+2; i++ {
		g.Step(idle)
	}

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 10; i++ {
		g.Step(up)
		g.Step(left)
	}
	if g.cursor != 0 {
		t.Errorf("cursor %d after pushing up-left, want 0", g.cursor)
	}

	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		g.Step(down)
		g.Step(right)
	}
	if g.cursor != game.BoardCells-1 {
		t.Errorf("cursor %d after pushing down-right, want %d", g.cursor, game.BoardCells-1)
	}
}

func TestRestartDealsNewMatch(t *testing.T) {
	g := New()
	g.Reset(testConfig(99))

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.match.Status() != game.StatusPickingHands {
		t.Errorf("status %s after restart, want picking hands", g.match.Status())
	}
	if g.tick != 0 {
		t.Errorf("tick %d after restart, want 0", g.tick)
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 30, ScreenH: 10})

	if !g.tooSmall {
		t.Fatal("small window not detected")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("small-window message missing")
	}
}

func TestRender(t *testing.T) {
	cfg := testConfig(4)
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Tetra Master") {
		t.Error("header missing from render")
	}
	if !strings.Contains(content, "Pick a hand") {
		t.Error("candidate panel missing during hand picking")
	}
}

func TestFullMatchAgainstCPU(t *testing.T) {
	// steer the cursor to the first free cell each turn; the match must
	// finish without the state machine wedging
	g := NewDeterministic()
	g.Reset(testConfig(31))

	firstFree := func() int {
		for cell := 0; cell < game.BoardCells; cell++ {
			sq := g.match.CellAt(cell)
			if !sq.Blocked && sq.Card == nil {
				return cell
			}
		}
		return -1
	}

	input := core.NewInputFrame()
	for i := 0; i < 20000; i++ {
		input.Clear()
		if g.match.Turn() == game.Player1 {
			switch g.match.Status() {
			case game.StatusPickingHands, game.StatusWaitingBattle:
				input.Set(core.ActionConfirm)
			case game.StatusWaitingPlace:
				target := firstFree()
				row, col := g.cursor/game.BoardCols, g.cursor%game.BoardCols
				tr, tc := target/game.BoardCols, target%game.BoardCols
				switch {
				case row > tr:
					input.Set(core.ActionUp)
				case row < tr:
					input.Set(core.ActionDown)
				case col > tc:
					input.Set(core.ActionLeft)
				case col < tc:
					input.Set(core.ActionRight)
				default:
					input.Set(core.ActionConfirm)
				}
			}
		}
		g.Step(input)
		if g.match.Status() == game.StatusGameOver {
			break
		}
	}

	if g.match.Status() != game.StatusGameOver {
		t.Fatal("match did not finish")
	}
	snap := g.Snapshot()
	if snap.P1Cards+snap.P2Cards != 2*game.HandSize {
		t.Errorf("%d cards on board, want %d", snap.P1Cards+snap.P2Cards, 2*game.HandSize)
	}
}
