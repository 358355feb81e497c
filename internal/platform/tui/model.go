package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ufo-blaster/internal/audio"
	"github.com/vovakirdan/ufo-blaster/internal/config"
	"github.com/vovakirdan/ufo-blaster/internal/core"
	"github.com/vovakirdan/ufo-blaster/internal/games/blaster"
	"github.com/vovakirdan/ufo-blaster/internal/storage"
)

// maxFrameDelta caps the time fed to one simulation step, so a stalled
// terminal cannot make saucers jump several bands at once.
const maxFrameDelta = 100 * time.Millisecond

// bellHold keeps BEL at the head of the frame long enough for the renderer
// to flush it at least once. Rings inside one hold merge into one bell.
const bellHold = 50 * time.Millisecond

// ringer is an audio player whose sound travels inside the frame.
type ringer interface {
	TakeRings() int
}

// Options configures a game session.
type Options struct {
	Blaster    config.BlasterConfig
	Runtime    core.RuntimeConfig
	Difficulty config.Difficulty
	Player     string         // Name recorded with finished rounds
	Store      *storage.Store // Optional round ledger
	Audio      audio.Player   // Optional; defaults to silence
	Logger     *log.Logger    // Optional; defaults to log.Default()
}

type view int

const (
	viewGame view = iota
	viewScores
)

// Model is the Bubble Tea model hosting one blaster session.
type Model struct {
	game       *blaster.Game
	screen     *core.Screen
	opts       Options
	keys       KeyMap
	help       help.Model
	scores     ScoreboardModel
	view       view
	inputFrame core.InputFrame
	lastTick   time.Time
	ringUntil  time.Time
	ringing    bool
	quitting   bool
}

// NewModel creates a Bubble Tea model for a new session.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.NopPlayer{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	game := blaster.New(opts.Blaster, blaster.NewRand(opts.Runtime.Seed))
	game.SetDifficulty(opts.Difficulty)

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, gameHeight(opts.Runtime.ScreenH)),
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// gameHeight leaves one row below the playfield for the help bar.
func gameHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.view == viewScores {
			return m.updateScores(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey collects game input until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	phase := m.game.Phase()
	action := m.keys.MapKey(msg, phase)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScoreboard:
		if phase == blaster.PhaseMenu {
			m.scores = NewScoreboardModel(m.opts.Store, m.game.Difficulty(), m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
			m.view = viewScores
		}
		return m, nil

	case core.ActionBack:
		if phase.Terminal() {
			m.inputFrame.Set(core.ActionAcknowledge)
		}
		return m, nil

	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// updateScores forwards keys to the scoreboard until it is dismissed.
func (m Model) updateScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scores, cmd = m.scores.Update(msg)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.view = viewGame
	}
	return m, cmd
}

// handleResize processes window resize events.
// The simulation is resolution independent, so the round carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	var cmd tea.Cmd
	if m.view == viewScores {
		m.scores, cmd = m.scores.Update(msg)
	}
	return m, cmd
}

// handleTick advances the simulation by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.opts.Runtime.FrameInterval()
	if !m.lastTick.IsZero() {
		dt = min(max(now.Sub(m.lastTick), 0), maxFrameDelta)
	}
	m.lastTick = now

	result := m.game.Step(dt, m.inputFrame)
	audio.Dispatch(m.opts.Audio, m.opts.Logger, result.Cues())
	if r, ok := m.opts.Audio.(ringer); ok && r.TakeRings() > 0 {
		m.ringUntil = now.Add(bellHold)
	}
	m.ringing = now.Before(m.ringUntil)

	if over, ok := result.RoundOver(); ok {
		m.recordRound(over)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.opts.Runtime)
}

// recordRound logs a finished round and saves it to the ledger.
func (m Model) recordRound(over blaster.Event) {
	m.opts.Logger.Info("round over",
		"player", m.opts.Player,
		"difficulty", m.game.Difficulty(),
		"outcome", over.Outcome,
		"score", over.Score,
		"elapsed", m.game.Elapsed(),
	)

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRound(context.Background(), storage.RoundResult{
		Player:     m.opts.Player,
		Difficulty: int(m.game.Difficulty()),
		Score:      over.Score,
		Outcome:    over.Outcome.String(),
		Duration:   m.game.Elapsed(),
	})
	if err != nil {
		m.opts.Logger.Warn("could not save round", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".blaster", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("blaster_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == viewScores {
		return m.scores.View()
	}

	m.game.Render(m.screen)

	frame := RenderScreen(m.screen)
	if m.ringing {
		frame = "\a" + frame
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return frame + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game exposes the hosted simulation.
func (m Model) Game() *blaster.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
