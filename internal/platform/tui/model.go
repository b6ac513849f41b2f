package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aditya-arolkar-swe/rusty-snake/internal/core"
	"github.com/aditya-arolkar-swe/rusty-snake/internal/game"
	"github.com/aditya-arolkar-swe/rusty-snake/internal/storage"
)

// Model is the Bubble Tea model driving one game. Each frame it forwards the
// collected input to the engine's Tick and redraws the snapshot; the engine
// decides on its own whether enough wall-clock time has passed for a
// simulation step.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	quitting   bool
	scoreSaved bool // Whether the current terminal state has been persisted
}

// NewModel creates a model for the given game. The store may be nil, in
// which case scores are not persisted.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleFrame runs one input/render frame against the engine.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	m.game.Tick(m.inputFrame)
	m.inputFrame.Clear()

	snap := m.game.Snapshot()
	switch snap.Outcome {
	case game.OutcomeRunning:
		m.scoreSaved = false
	default:
		if !m.scoreSaved && snap.Score > 0 && m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(snap.Score, string(snap.Outcome))
		}
		m.scoreSaved = true
	}

	return m, frameCmd(m.config.TickRate)
}

// View renders the current snapshot to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawBoard(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game and blocks until the
// player quits.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
