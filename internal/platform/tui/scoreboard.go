package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ufo-blaster/internal/config"
	"github.com/vovakirdan/ufo-blaster/internal/core"
	"github.com/vovakirdan/ufo-blaster/internal/storage"
)

const maxScores = 20 // rounds loaded per level

// Scoreboard styles share the station palette with the playfield.
var (
	boardTitleStyle = colorStyles[core.ColorTitle].Bold(true).MarginBottom(1)
	boardMutedStyle = colorStyles[core.ColorHint]
	boardTabStyle   = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0a0a18")).
			Background(stationPalette[core.ColorGlow].fg).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(stationPalette[core.ColorHint].fg).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Back, k.Quit},
	}
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
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best rounds of this process, one tab per
// difficulty. It is embedded in Model rather than run as its own program.
type ScoreboardModel struct {
	level     config.Difficulty
	store     *storage.Store
	rounds    []storage.RoundResult
	stats     storage.LevelStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a scoreboard opened on the given level.
func NewScoreboardModel(store *storage.Store, level config.Difficulty, width, height int) ScoreboardModel {
	if !level.Valid() {
		level = config.DifficultyNovice
	}

	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		level:  level,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadRounds()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 8},
		{Title: "Time", Width: 6},
		{Title: "Player", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, tabs and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(stationPalette[core.ColorHint].fg).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(stationPalette[core.ColorWin].fg).
		Background(stationPalette[core.ColorLabel].fg).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRounds loads the top rounds and the totals for the selected level.
func (m *ScoreboardModel) loadRounds() {
	m.rounds = nil
	m.stats = storage.LevelStats{Difficulty: int(m.level)}
	if m.store != nil {
		ctx := context.Background()
		if rounds, err := m.store.TopRounds(ctx, int(m.level), maxScores); err == nil {
			m.rounds = rounds
		}
		if stats, err := m.store.Stats(ctx); err == nil {
			for _, st := range stats {
				if st.Difficulty == int(m.level) {
					m.stats = st
				}
			}
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current rounds.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%02d", r.Score),
			r.Outcome,
			fmt.Sprintf("%.0fs", r.Duration.Seconds()),
			r.Player,
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// shiftLevel moves to the next or previous difficulty tab, wrapping around.
func (m *ScoreboardModel) shiftLevel(delta int) {
	n := int(config.DifficultyCount)
	idx := (int(m.level) - 1 + delta + n) % n
	m.level = config.Difficulty(idx + 1)
	m.loadRounds()
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextLevel):
			m.shiftLevel(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			m.shiftLevel(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(boardTitleStyle.Render(centerText("BEST ROUNDS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(boardFrameStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.summary()))
	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders one tab per difficulty with the selected one highlighted.
func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, 0, config.DifficultyCount)
	for _, d := range config.Difficulties() {
		if d == m.level {
			tabs = append(tabs, boardTabStyle.Render(d.String()))
		} else {
			tabs = append(tabs, boardMutedStyle.Render(" "+d.String()+" "))
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rounds) == 0 {
		return boardMutedStyle.Italic(true).Padding(2, 4).
			Render("No rounds played yet.\nFinish a round to get on the board!")
	}

	return m.table.View()
}

// summary is the one-line totals for the selected level.
func (m ScoreboardModel) summary() string {
	st := m.stats
	if st.Rounds == 0 {
		return fmt.Sprintf("%s: no rounds yet", m.level)
	}
	return fmt.Sprintf("%s: %d rounds, %d won, best %02d, average %.1f",
		m.level, st.Rounds, st.Wins, st.BestScore, st.AvgScore)
}

// Level returns the difficulty tab being shown.
func (m ScoreboardModel) Level() config.Difficulty {
	return m.level
}

// IsGoingBack returns true if user wants to go back to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text on the left to center it in width.
// Width is measured in cells, so styled text centers correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
