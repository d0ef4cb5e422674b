// Package tui runs the Game of Life modes in a terminal with Bubble Tea.
// It maps keys and mouse events to core actions, drives the fixed tick
// loop, styles the screen buffer with lipgloss and serves sessions over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. ID names the tick loop
// that scheduled it, so a model ignores ticks left over from an earlier game.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var tickLoops atomic.Int64

// newTickLoop returns a fresh tick loop ID.
func newTickLoop() int64 {
	return tickLoops.Add(1)
}

// tickCmd returns a command that sends a TickMsg after one tick period.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
