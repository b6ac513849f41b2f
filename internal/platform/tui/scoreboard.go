package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aditya-arolkar-swe/rusty-snake/internal/core"
	"github.com/aditya-arolkar-swe/rusty-snake/internal/storage"
)

const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard view.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the interactive scoreboard.
type ScoreboardModel struct {
	store    *storage.Store
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	quitting bool
	loadErr  error
}

// NewScoreboardModel creates a scoreboard over the given store.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Outcome", Width: 10},
		{Title: "Date", Width: 18},
	}

	var rows []table.Row
	entries, err := store.TopScores(maxScoreboardRows)
	if err == nil {
		for i, e := range entries {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", e.Score),
				e.Outcome,
				e.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
	}

	tableHeight := height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2"))
	t.SetStyles(styles)

	return ScoreboardModel{
		store:   store,
		table:   t,
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		loadErr: err,
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(core.Max(3, msg.Height-6))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return fmt.Sprintf("Could not load scores: %v\n", m.loadErr)
	}

	title := lipgloss.NewStyle().Bold(true).Render(" High Scores — Rusty Snake ")
	return title + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys) + "\n"
}

// RunScoreboard shows the interactive scoreboard and blocks until quit.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
