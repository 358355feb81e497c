package blaster

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/ufo-blaster/internal/config"
	"github.com/vovakirdan/ufo-blaster/internal/core"
)

// Visual elements
const (
	SaucerSprite    = "<=>"
	ExplosionSprite = "\\*/"
	MissileChar     = '^'
	PadSprite       = "═══"
)

// Field size limits in cells, including the border.
const (
	minFieldW = 21
	maxFieldW = 41
	minFieldH = 14
)

// Render draws the current phase to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	switch snap.Phase {
	case PhaseMenu:
		renderMenu(dst, snap)
	case PhasePlaying:
		renderField(dst, snap)
	case PhaseWon, PhaseLost:
		renderResult(dst, snap)
	}
}

// fieldRect returns the bordered playfield, centered on screen.
func fieldRect(dst *core.Screen) core.Rect {
	w := core.Clamp(dst.Width()-4, minFieldW, maxFieldW)
	h := core.Max(dst.Height()-2, minFieldH)
	x := (dst.Width() - w) / 2
	return core.NewRect(core.Max(x, 0), 1, w, h)
}

func renderField(dst *core.Screen, snap Snapshot) {
	box := fieldRect(dst)
	dst.DrawBox(box)

	// Inner area: one row of HUD under the top border
	inner := core.NewRect(box.X+1, box.Y+2, box.W-2, box.H-3)
	pf := core.NewPlayfield(inner)

	// HUD; the score turns gold while a won round waits out its delay
	scoreColor := core.ColorGlow
	if snap.WinPending {
		scoreColor = core.ColorWin
	}
	dst.DrawTextColored(box.X+box.W/2-1, box.Y+1, fmt.Sprintf("%02d", snap.Score), scoreColor)
	timeText := fmt.Sprintf("%2d", snap.TimeRemaining)
	dst.DrawTextColored(box.Right()-2-len(timeText), box.Y+1, timeText, core.ColorGlow)
	dst.DrawTextColored(box.X+2, box.Y+1, snap.Difficulty.String(), core.ColorLabel)

	// Altitude labels
	for band := range core.BandCount {
		dst.SetColored(inner.X+1, pf.BandY(band), rune('0'+band), core.ColorLabel)
	}

	for _, s := range snap.Saucers {
		drawSprite(dst, pf.LaneX(s.Lane), pf.AltitudeY(s.Altitude), SaucerSprite, core.ColorGlow)
	}
	for _, e := range snap.Explosions {
		drawSprite(dst, pf.LaneX(e.Lane), pf.AltitudeY(e.Altitude), ExplosionSprite, core.ColorBlast)
	}

	if snap.Missile != nil {
		dst.SetColored(pf.LaneX(snap.Missile.Lane), pf.AltitudeY(snap.Missile.Altitude), MissileChar, core.ColorWarhead)
	} else {
		dst.SetColored(pf.LaneX(LaneCenter), pf.LauncherY(), MissileChar, core.ColorWarhead)
	}

	// Lane pads; the center pad lights up while a missile is loaded
	for lane := range core.LaneCount {
		color := core.ColorUnlit
		if lane == LaneCenter && snap.Loaded() {
			color = core.ColorGlow
		}
		drawSprite(dst, pf.LaneX(lane), pf.BaseY(), PadSprite, color)
	}
}

// drawSprite draws a short horizontal sprite centered on x.
func drawSprite(dst *core.Screen, x, y int, sprite string, c core.Color) {
	n := len([]rune(sprite))
	dst.DrawTextColored(x-n/2, y, sprite, c)
}

func renderMenu(dst *core.Screen, snap Snapshot) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{" Just for fun ", core.ColorBadge},
		{"", core.ColorDefault},
		{"UFO MASTER BLASTER", core.ColorTitle},
		{"STATION", core.ColorSubtitle},
		{"", core.ColorDefault},
		{SaucerSprite, core.ColorGlow},
		{string(MissileChar), core.ColorWarhead},
		{"", core.ColorDefault},
		{"Speed:", core.ColorTitle},
		{difficultyPicker(snap.Difficulty), core.ColorGlow},
		{"", core.ColorDefault},
		{"Press ENTER to start", core.ColorPrompt},
		{"", core.ColorDefault},
		{"SPACE: Fire | ← →: Move | 1-3: Speed", core.ColorHint},
	}
	if snap.BestScore > 0 {
		lines = append(lines, struct {
			text  string
			color core.Color
		}{fmt.Sprintf("Best: %d", snap.BestScore), core.ColorTitle})
	}

	top := core.Max((dst.Height()-len(lines))/2, 0)
	for i, l := range lines {
		dst.DrawTextCenteredColored(top+i, l.text, l.color)
	}
}

// difficultyPicker renders the three levels with the selected one bracketed.
func difficultyPicker(selected config.Difficulty) string {
	parts := make([]string, 0, config.DifficultyCount)
	for _, d := range config.Difficulties() {
		label := fmt.Sprintf("%d %s", int(d), d)
		if d == selected {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func renderResult(dst *core.Screen, snap Snapshot) {
	title, color, sprite := "GAME OVER", core.ColorLose, ExplosionSprite
	if snap.Phase == PhaseWon {
		title, color, sprite = "MASTER BLASTER!", core.ColorWin, SaucerSprite
	}
	score := fmt.Sprintf("%d", snap.Score)
	hint := "Press ENTER to play again"

	boxW := len(hint) + 4
	boxH := 9
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCenteredColored(box.Y+2, title, color)
	dst.DrawTextCenteredColored(box.Y+3, sprite, core.ColorGlow)
	dst.DrawTextCenteredColored(box.Y+5, score, core.ColorGlow)
	dst.DrawTextCenteredColored(box.Y+7, hint, core.ColorPrompt)
}
