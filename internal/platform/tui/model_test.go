package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ufo-blaster/internal/audio"
	"github.com/vovakirdan/ufo-blaster/internal/config"
	"github.com/vovakirdan/ufo-blaster/internal/core"
	"github.com/vovakirdan/ufo-blaster/internal/games/blaster"
	"github.com/vovakirdan/ufo-blaster/internal/storage"
)

type cueRecorder struct {
	cues []blaster.Cue
}

func (r *cueRecorder) Play(c blaster.Cue) error {
	r.cues = append(r.cues, c)
	return nil
}

func newTestModel(t *testing.T, cfg config.BlasterConfig, player audio.Player) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewModel(Options{
		Blaster:    cfg,
		Runtime:    core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 60, Seed: 42},
		Difficulty: config.DifficultyNovice,
		Player:     "tester",
		Store:      store,
		Audio:      player,
		Logger:     log.New(io.Discard),
	})
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return got
}

func TestModelStartsRoundOnSpace(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultBlasterConfig(), nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, TickMsg(time.Now()))

	if m.Game().Phase() != blaster.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", m.Game().Phase())
	}
	if m.Game().Snapshot().Missile != nil {
		t.Error("the starting space must not also fire")
	}
}

func TestModelStartsRoundOnEnter(t *testing.T) {
	rec := &cueRecorder{}
	m, _ := newTestModel(t, config.DefaultBlasterConfig(), rec)

	m = update(t, m, runeKey('3'))
	m = update(t, m, TickMsg(time.Now()))
	if m.Game().Difficulty() != config.DifficultyMaster {
		t.Fatalf("difficulty = %v, expected Master", m.Game().Difficulty())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))

	if m.Game().Phase() != blaster.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", m.Game().Phase())
	}
	if len(rec.cues) != 1 || rec.cues[0] != blaster.CueUFO {
		t.Errorf("cues = %v, expected [ufo]", rec.cues)
	}
	if !strings.Contains(m.View(), "fire") {
		t.Error("view should include the help bar")
	}
}

func TestModelRecordsFinishedRound(t *testing.T) {
	cfg := config.DefaultBlasterConfig()
	cfg.Round.Duration = 50 * time.Millisecond
	m, store := newTestModel(t, cfg, audio.NopPlayer{})

	t0 := time.Now()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0.Add(100*time.Millisecond)))

	if m.Game().Phase() != blaster.PhaseLost {
		t.Fatalf("phase = %v, expected lost on timeout", m.Game().Phase())
	}

	rounds, err := store.TopRounds(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected 1 recorded round, got %d", len(rounds))
	}
	if rounds[0].Player != "tester" || rounds[0].Outcome != "lost" {
		t.Errorf("unexpected round: %+v", rounds[0])
	}

	// Esc dismisses the result like Enter
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	m = update(t, m, TickMsg(t0.Add(200*time.Millisecond)))
	if m.Game().Phase() != blaster.PhaseMenu {
		t.Errorf("phase = %v, expected menu", m.Game().Phase())
	}
}

func TestModelClampsFrameDelta(t *testing.T) {
	cfg := config.DefaultBlasterConfig()
	m, _ := newTestModel(t, cfg, nil)

	t0 := time.Now()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0.Add(5*time.Second)))

	if got := m.Game().Elapsed(); got != maxFrameDelta {
		t.Errorf("elapsed = %v, expected one clamped frame of %v", got, maxFrameDelta)
	}
}

func TestModelScoreboardView(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultBlasterConfig(), nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatal("tab in the menu should open the scoreboard")
	}
	if !strings.Contains(m.View(), "BEST ROUNDS") {
		t.Error("scoreboard title missing")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.view != viewGame {
		t.Error("esc should return to the game")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, config.DefaultBlasterConfig(), nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestScoreboardLevelTabs(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer store.Close()
	store.SaveRound(context.Background(), storage.RoundResult{Player: "x", Difficulty: 2, Score: 33, Outcome: "lost"})

	sb := NewScoreboardModel(store, config.DifficultyNovice, 80, 24)
	if len(sb.rounds) != 0 {
		t.Errorf("novice tab should be empty, got %d", len(sb.rounds))
	}

	sb, _ = sb.Update(tea.KeyMsg{Type: tea.KeyTab})
	if sb.Level() != config.DifficultyMini || len(sb.rounds) != 1 {
		t.Errorf("expected Mini with 1 round, got %v with %d", sb.Level(), len(sb.rounds))
	}
	if got, want := sb.summary(), "Mini: 1 rounds, 0 won, best 33, average 33.0"; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}

	sb, _ = sb.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	sb, _ = sb.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if sb.Level() != config.DifficultyMaster {
		t.Errorf("prev from Novice should wrap to Master, got %v", sb.Level())
	}
}

func TestModelRingsBellInsideFrame(t *testing.T) {
	bell := audio.NewBellPlayer()
	m, _ := newTestModel(t, config.DefaultBlasterConfig(), bell)

	t0 := time.Now()
	m = update(t, m, TickMsg(t0))
	if strings.Contains(m.View(), "\a") {
		t.Fatal("no bell expected before any cue")
	}

	bell.Play(blaster.CueHit)
	bell.Play(blaster.CueWin)
	m = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	view := m.View()
	if !strings.HasPrefix(view, "\a") || strings.Count(view, "\a") != 1 {
		t.Errorf("expected one BEL at the head of the frame, got %d", strings.Count(view, "\a"))
	}

	m = update(t, m, TickMsg(t0.Add(16*time.Millisecond+bellHold)))
	if strings.Contains(m.View(), "\a") {
		t.Error("bell should clear once the hold has passed")
	}
}
