// Package tui runs starline in a terminal with Bubble Tea: it maps mouse
// and keys to game events, drives the frame loop from a ticker and draws
// the scene with half-block pixels.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
