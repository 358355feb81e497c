// Package tui hosts the blaster simulation in a Bubble Tea program, locally
// or per SSH session. It maps keys to actions, drives the tick loop and
// forwards simulation events to audio and the round ledger.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ufo-blaster/internal/core"
)

// TickMsg carries the wall time of a frame; the model turns the gap since
// the previous one into the simulation step.
type TickMsg time.Time

// tickCmd schedules the next frame at the runtime's frame interval.
func tickCmd(rc core.RuntimeConfig) tea.Cmd {
	return tea.Tick(rc.FrameInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
