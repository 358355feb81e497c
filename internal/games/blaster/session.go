package blaster

import (
	"github.com/vovakirdan/ufo-blaster/internal/config"
	"github.com/vovakirdan/ufo-blaster/internal/core"
)

// Phase is the overall session state.
//
//	menu -> playing -> won|lost -> menu
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase is a result screen.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// apply routes one frame of input to the action handlers.
// At most one phase transition happens per frame.
func (g *Game) apply(in core.InputFrame) {
	switch g.phase {
	case PhaseMenu:
		switch {
		case in.Has(core.ActionLevel1):
			g.SetDifficulty(config.DifficultyNovice)
		case in.Has(core.ActionLevel2):
			g.SetDifficulty(config.DifficultyMini)
		case in.Has(core.ActionLevel3):
			g.SetDifficulty(config.DifficultyMaster)
		}
		if in.Has(core.ActionStart) {
			g.Start()
		}
	case PhasePlaying:
		if in.Has(core.ActionFire) {
			g.Fire()
		}
		if in.Has(core.ActionMoveLeft) {
			g.MoveLeft()
		}
		if in.Has(core.ActionMoveRight) {
			g.MoveRight()
		}
	case PhaseWon, PhaseLost:
		if in.Has(core.ActionAcknowledge) {
			g.Acknowledge()
		}
	}
}

// SetDifficulty selects the level for the next round. Only valid in the menu.
func (g *Game) SetDifficulty(d config.Difficulty) {
	if g.phase != PhaseMenu || !d.Valid() {
		return
	}
	g.difficulty = d
}

// Start begins a round from the menu: score and clock reset, the field is
// cleared, one saucer is spawned and the launcher is recentered.
func (g *Game) Start() {
	if g.phase != PhaseMenu {
		return
	}

	level := g.cfg.Level(g.difficulty)
	g.score = 0
	g.clock = 0
	g.ticks = 0
	g.saucers = g.saucers[:0]
	g.missile = nil
	g.explosions = g.explosions[:0]
	g.winPending = false
	g.playerLane = LaneCenter
	g.spawner.Reset(level.SpawnInterval)

	g.phase = PhasePlaying
	g.saucers = append(g.saucers, g.spawner.Spawn(g.rng))
	g.emit(cueEvent(CueUFO))
}

// Acknowledge dismisses the result screen and returns to the menu.
func (g *Game) Acknowledge() {
	if !g.phase.Terminal() {
		return
	}
	g.phase = PhaseMenu
}

// Fire launches a missile from the center lane. It is a no-op while a
// missile is already in flight or outside a round.
func (g *Game) Fire() {
	if g.phase != PhasePlaying || g.missile != nil {
		return
	}
	g.playerLane = LaneCenter
	launch := g.cfg.Missile.LaunchAltitude
	g.missile = &Missile{
		Lane:         g.playerLane,
		Altitude:     launch,
		PrevAltitude: launch,
	}
	g.emit(cueEvent(CueFire))
}

// MoveLeft steers the live missile one lane left. Without a missile in
// flight there is nothing to steer and the call is a no-op.
func (g *Game) MoveLeft() {
	if g.phase != PhasePlaying || g.missile == nil {
		return
	}
	g.playerLane = core.Max(0, g.playerLane-1)
}

// MoveRight steers the live missile one lane right.
func (g *Game) MoveRight() {
	if g.phase != PhasePlaying || g.missile == nil {
		return
	}
	g.playerLane = core.Min(core.LaneCount-1, g.playerLane+1)
}

// endRound moves to a result phase. A pending win overrides any loss
// detected while its delay runs.
func (g *Game) endRound(o Outcome) {
	if g.winPending {
		o = OutcomeWon
	}
	g.winPending = false
	g.missile = nil

	cue := CueLose
	g.phase = PhaseLost
	if o == OutcomeWon {
		cue = CueWin
		g.phase = PhaseWon
	}
	g.best = core.Max(g.best, g.score)

	g.emit(cueEvent(cue))
	g.emit(Event{Kind: EventRoundOver, Outcome: o, Score: g.score})
}
