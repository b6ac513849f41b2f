// Package tui provides the Bubble Tea integration for the game: the terminal
// frame loop, key mapping, board rendering, and the SSH server for remote
// play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one render/input frame. The engine gates its
// own simulation steps internally, so frames can run much faster than the
// configured refresh interval.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// given rate.
func frameCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
