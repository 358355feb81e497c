package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ufo-blaster/internal/core"
	"github.com/vovakirdan/ufo-blaster/internal/games/blaster"
)

// KeyMap defines the key bindings for the game screen.
// It centralizes bindings and makes them testable.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Fire   key.Binding
	Enter  key.Binding
	Level1 key.Binding
	Level2 key.Binding
	Level3 key.Binding
	Scores key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Left, k.Right, k.Enter, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fire, k.Left, k.Right},
		{k.Enter, k.Level1, k.Level2, k.Level3},
		{k.Scores, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "steer right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "fire"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Level1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "novice"),
		),
		Level2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "mini"),
		),
		Level3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "master"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Enter starts a round from the menu and dismisses a result screen,
// so its meaning depends on the phase. Space also starts from the menu.
func (k KeyMap) MapKey(msg tea.KeyMsg, phase blaster.Phase) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Fire):
		if phase == blaster.PhaseMenu && msg.Type == tea.KeySpace {
			return core.ActionStart
		}
		return core.ActionFire
	case key.Matches(msg, k.Enter):
		if phase.Terminal() {
			return core.ActionAcknowledge
		}
		return core.ActionStart
	case key.Matches(msg, k.Level1):
		return core.ActionLevel1
	case key.Matches(msg, k.Level2):
		return core.ActionLevel2
	case key.Matches(msg, k.Level3):
		return core.ActionLevel3
	case key.Matches(msg, k.Scores):
		return core.ActionScoreboard
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}
