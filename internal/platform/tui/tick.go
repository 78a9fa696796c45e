// Package tui provides the Bubble Tea front end for the lane runner. It maps
// keys to actions, drives the generation-tagged tick loop and paints frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Gen is the run generation the
// tick chain was started for; a tick from an older run is dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd schedules the next tick of a chain.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
