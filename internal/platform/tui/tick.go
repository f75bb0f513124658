// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and screen rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick while a round is playing.
type TickMsg time.Time

// doodleTickMsg drives the decorative welcome-screen animation.
type doodleTickMsg time.Time

// doodleInterval is the fixed frame rate of the welcome animation.
const doodleInterval = 100 * time.Millisecond

// tickCmd schedules the next simulation tick after the given delay.
// The delay varies with difficulty and, for incremental mode, with how
// full the board is, so it is recomputed every tick.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// doodleTickCmd schedules the next welcome animation frame.
func doodleTickCmd() tea.Cmd {
	return tea.Tick(doodleInterval, func(t time.Time) tea.Msg {
		return doodleTickMsg(t)
	})
}
