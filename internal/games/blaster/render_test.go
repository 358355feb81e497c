package blaster

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ufo-blaster/internal/config"
	"github.com/vovakirdan/ufo-blaster/internal/core"
)

func TestRenderMenu(t *testing.T) {
	g := New(config.DefaultBlasterConfig(), NewRand(1))
	g.SetDifficulty(config.DifficultyMini)
	screen := core.NewScreen(60, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"UFO MASTER BLASTER", "[2 Mini]", "Press ENTER to start"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q", want)
		}
	}
}

func TestRenderField(t *testing.T) {
	g := newStartedGame(t, LaneCenter)
	g.score = 7
	screen := core.NewScreen(60, 24)

	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, SaucerSprite) {
		t.Error("field should show the saucer")
	}
	if !strings.Contains(out, "07") {
		t.Error("HUD should show the zero-padded score")
	}
	if !strings.Contains(out, "80") {
		t.Error("HUD should show the countdown")
	}
	if strings.Count(out, PadSprite) != 3 {
		t.Errorf("expected 3 lane pads, got %d", strings.Count(out, PadSprite))
	}

	// Loaded launcher lights the center pad
	box := fieldRect(screen)
	inner := core.NewRect(box.X+1, box.Y+2, box.W-2, box.H-3)
	pf := core.NewPlayfield(inner)
	if c := screen.GetCell(pf.LaneX(LaneCenter), pf.BaseY()); c.Color != core.ColorGlow {
		t.Errorf("center pad color = %v, expected glow", c.Color)
	}
	if c := screen.GetCell(pf.LaneX(LaneLeft), pf.BaseY()); c.Color != core.ColorUnlit {
		t.Errorf("left pad color = %v, expected unlit", c.Color)
	}
}

func TestRenderResult(t *testing.T) {
	tests := []struct {
		phase Phase
		title string
	}{
		{PhaseWon, "MASTER BLASTER!"},
		{PhaseLost, "GAME OVER"},
	}

	for _, tc := range tests {
		t.Run(tc.phase.String(), func(t *testing.T) {
			g := New(config.DefaultBlasterConfig(), NewRand(1))
			g.phase = tc.phase
			g.score = 42
			screen := core.NewScreen(60, 24)

			g.Render(screen)
			out := screen.String()

			if !strings.Contains(out, tc.title) {
				t.Errorf("result screen missing %q", tc.title)
			}
			if !strings.Contains(out, "42") {
				t.Error("result screen should show the final score")
			}
		})
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newStartedGame(t, LaneLeft)
	screen := core.NewScreen(10, 5)

	// Drawing outside the buffer is clipped, never a panic
	g.Render(screen)
}

func TestRenderScoreColor(t *testing.T) {
	tests := []struct {
		name       string
		winPending bool
		want       core.Color
	}{
		{"playing", false, core.ColorGlow},
		{"win pending", true, core.ColorWin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newStartedGame(t, LaneCenter)
			g.score = 99
			g.winPending = tc.winPending
			screen := core.NewScreen(60, 24)

			g.Render(screen)
			box := fieldRect(screen)
			if c := screen.GetCell(box.X+box.W/2-1, box.Y+1); c.Rune != '9' || c.Color != tc.want {
				t.Errorf("score cell = %+v, expected '9' in %v", c, tc.want)
			}
		})
	}
}
