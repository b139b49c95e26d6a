package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quadcell/tetra/internal/core"
	"github.com/quadcell/tetra/internal/game"
	"github.com/quadcell/tetra/internal/games/tetra"
	"github.com/quadcell/tetra/internal/registry"
	"github.com/quadcell/tetra/internal/storage"
)

// matchReporter is implemented by games that can report a finished match
// for persistence.
type matchReporter interface {
	Snapshot() tetra.Snapshot
}

// Model is the Bubble Tea model for running a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	startedAt  time.Time
	quitting   bool
	backToMenu bool
	matchSaved bool // whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc returns to the menu once the match is over or paused
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart the match with the new dimensions unless it already ended
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reseed for the new match
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.matchSaved = false
		m.startedAt = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the finished match (once)
	if m.gameState.GameOver && !m.matchSaved {
		m.saveMatch()
		m.matchSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveMatch persists the finished match, best effort.
func (m *Model) saveMatch() {
	if m.store == nil {
		return
	}
	reporter, ok := m.game.(matchReporter)
	if !ok {
		return
	}
	snap := reporter.Snapshot()

	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveMatch(storage.MatchRecord{
		Variant:  m.game.ID(),
		Winner:   winnerLabel(snap.Winner),
		P1Cards:  snap.P1Cards,
		P2Cards:  snap.P2Cards,
		Seed:     snap.Seed,
		Duration: int(time.Since(m.startedAt).Seconds()),
	})
}

// winnerLabel converts a match winner into its stored form.
func winnerLabel(w game.Player) string {
	switch w {
	case game.Player1:
		return "p1"
	case game.Player2:
		return "p2"
	default:
		return "draw"
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(g registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
