package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/ufo-blaster/internal/core"
)

// swatch is one palette slot as truecolor hex with 256 and 16 color fallbacks.
type swatch struct {
	fg, bg lipgloss.CompleteColor
}

func tone(truecolor, ansi256, ansi string) lipgloss.CompleteColor {
	return lipgloss.CompleteColor{TrueColor: truecolor, ANSI256: ansi256, ANSI: ansi}
}

// stationPalette follows the blue glow of the handheld's display.
var stationPalette = map[core.Color]swatch{
	core.ColorGlow:     {fg: tone("#00a0ff", "39", "14")},
	core.ColorUnlit:    {fg: tone("#0a1525", "234", "8")},
	core.ColorLabel:    {fg: tone("#1a2a40", "236", "8")},
	core.ColorTitle:    {fg: tone("#60a5fa", "75", "12")},
	core.ColorSubtitle: {fg: tone("#93c5fd", "111", "12")},
	core.ColorHint:     {fg: tone("#2563eb", "26", "4")},
	core.ColorWarhead:  {fg: tone("#00a0ff", "39", "14")},
	core.ColorBlast:    {fg: tone("#f97316", "208", "11")},
	core.ColorWin:      {fg: tone("#fbbf24", "214", "11")},
	core.ColorLose:     {fg: tone("#ef4444", "203", "9")},
	core.ColorBadge:    {fg: tone("#ef4444", "203", "9"), bg: tone("#ffffff", "231", "15")},
	core.ColorPrompt:   {fg: tone("#f97316", "208", "11")},
}

// colorStyles is stationPalette resolved to lipgloss styles, indexed by slot.
var colorStyles = buildStyles(stationPalette)

func buildStyles(p map[core.Color]swatch) [core.ColorCount]lipgloss.Style {
	var styles [core.ColorCount]lipgloss.Style
	for i := range styles {
		styles[i] = lipgloss.NewStyle()
	}
	for c, sw := range p {
		if !c.Valid() {
			continue
		}
		s := lipgloss.NewStyle().Foreground(sw.fg)
		if sw.bg != (lipgloss.CompleteColor{}) {
			s = s.Background(sw.bg).Bold(true)
		}
		styles[c] = s
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells in the same slot share one escape sequence; default cells
// are written bare.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			slot := s.GetCell(x, y).Color
			if !slot.Valid() {
				slot = core.ColorDefault
			}

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				c := cell.Color
				if !c.Valid() {
					c = core.ColorDefault
				}
				if c != slot {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if slot == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(colorStyles[slot].Render(run.String()))
		}
	}
	return sb.String()
}
