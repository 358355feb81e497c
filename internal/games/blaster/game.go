// Package blaster implements UFO Master Blaster, a vertical shooting gallery.
// Saucers descend through seven altitude bands in three lanes; the player
// launches one missile at a time and steers it between lanes to intercept
// them before any reaches the base.
package blaster

import (
	"math"
	"time"

	"github.com/vovakirdan/ufo-blaster/internal/config"
	"github.com/vovakirdan/ufo-blaster/internal/core"
)

// Game is the whole simulation: session phase, entities and score.
// It is mutated only by Step and the action methods, from one goroutine.
type Game struct {
	cfg     config.BlasterConfig
	rng     Rand
	hits    hitBox
	spawner *Spawner

	phase      Phase
	difficulty config.Difficulty
	score      int
	best       int // Best score this process, updated when a round ends

	clock      time.Duration // Round time elapsed
	ticks      int
	saucers    []Saucer
	missile    *Missile // nil when no shot is in flight
	playerLane int
	explosions []Explosion

	winPending bool
	winAt      time.Duration

	pending []Event // Emitted since the last Step returned
}

// New creates a game in the menu phase at Novice difficulty.
func New(cfg config.BlasterConfig, rng Rand) *Game {
	level := cfg.Level(config.DifficultyNovice)
	return &Game{
		cfg: cfg,
		rng: rng,
		hits: hitBox{
			window:  cfg.Field.HitWindow,
			ceiling: cfg.Field.HitCeiling,
		},
		spawner:    NewSpawner(level.SpawnInterval, cfg.Saucer.MaxActive, cfg.Field.SpawnAltitude),
		phase:      PhaseMenu,
		difficulty: config.DifficultyNovice,
		playerLane: LaneCenter,
	}
}

// Step applies one frame of input and, while a round is running, advances
// the world by one tick of dt. The events emitted by both are returned.
func (g *Game) Step(dt time.Duration, in core.InputFrame) StepResult {
	wasPlaying := g.phase == PhasePlaying
	g.apply(in)
	if wasPlaying && g.phase == PhasePlaying {
		g.tick(dt)
	}

	events := g.pending
	g.pending = nil
	return StepResult{Events: events, Phase: g.phase, Score: g.score}
}

// tick advances the round. The order is fixed: spawn, saucer movement,
// breach check, missile flight, collision, explosion pruning, then the
// win delay and countdown.
func (g *Game) tick(dt time.Duration) {
	g.ticks++
	g.clock += dt
	level := g.cfg.Level(g.difficulty)

	if s, ok := g.spawner.Update(dt, len(g.saucers), g.rng); ok {
		g.saucers = append(g.saucers, s)
		g.emit(cueEvent(CueUFO))
	}

	breached := false
	for i := range g.saucers {
		g.saucers[i].Altitude -= level.FallSpeed
		g.saucers[i].drift(g.rng, g.cfg.Saucer.DriftChance)
		if g.saucers[i].Altitude <= 0 {
			breached = true
		}
	}
	if breached {
		g.saucers = g.saucers[:0]
		g.endRound(OutcomeLost)
		return
	}

	g.advanceMissile()
	g.resolveHit()
	g.pruneExplosions()

	if g.winPending && g.clock >= g.winAt {
		g.endRound(OutcomeWon)
		return
	}
	if g.clock >= g.cfg.Round.Duration {
		g.endRound(OutcomeLost)
	}
}

// advanceMissile moves the shot up one step and re-syncs it to the
// player's lane. A shot leaving the field is simply lost.
func (g *Game) advanceMissile() {
	if g.missile == nil {
		return
	}
	next := g.missile.Altitude + g.cfg.Missile.Step
	if next > g.cfg.Field.TopAltitude {
		g.missile = nil
		return
	}
	g.missile.PrevAltitude = g.missile.Altitude
	g.missile.Altitude = next
	g.missile.Lane = g.playerLane
}

// resolveHit destroys at most one saucer hit by the missile this tick.
func (g *Game) resolveHit() {
	if g.missile == nil {
		return
	}
	i := g.hits.findHit(*g.missile, g.saucers)
	if i < 0 {
		return
	}

	hit := g.saucers[i]
	g.saucers = append(g.saucers[:i], g.saucers[i+1:]...)
	g.missile = nil

	exp := Explosion{Lane: hit.Lane, Altitude: hit.Altitude, CreatedAt: g.clock}
	g.explosions = append(g.explosions, exp)
	g.emit(Event{Kind: EventExplosion, Explosion: exp})
	g.emit(cueEvent(CueHit))

	g.addScore(Points(hit.Altitude))
}

// addScore adds points up to the cap; reaching the cap schedules the win.
func (g *Game) addScore(points int) {
	g.score = core.Min(g.cfg.Round.MaxScore, g.score+points)
	if g.score >= g.cfg.Round.MaxScore && !g.winPending {
		g.winPending = true
		g.winAt = g.clock + g.cfg.Round.WinDelay
	}
}

// pruneExplosions drops markers older than their time to live.
func (g *Game) pruneExplosions() {
	kept := g.explosions[:0]
	for _, e := range g.explosions {
		if !e.expired(g.clock, g.cfg.Saucer.ExplosionTTL) {
			kept = append(kept, e)
		}
	}
	g.explosions = kept
}

func (g *Game) emit(e Event) {
	g.pending = append(g.pending, e)
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current round score.
func (g *Game) Score() int {
	return g.score
}

// BestScore returns the best score recorded by a finished round.
func (g *Game) BestScore() int {
	return g.best
}

// Difficulty returns the selected level.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// TimeRemaining returns the countdown in whole seconds, rounded up,
// so a fresh 80s round reads 80 until a full second has elapsed.
func (g *Game) TimeRemaining() int {
	left := g.cfg.Round.Duration - g.clock
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

// Elapsed returns the round clock.
func (g *Game) Elapsed() time.Duration {
	return g.clock
}

// Ticks returns the number of simulation ticks in the current round.
func (g *Game) Ticks() int {
	return g.ticks
}
