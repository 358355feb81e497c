package blaster

import "github.com/vovakirdan/ufo-blaster/internal/config"

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	Phase         Phase
	Difficulty    config.Difficulty
	Score         int
	BestScore     int
	TimeRemaining int // Whole seconds
	Saucers       []Saucer
	Missile       *Missile // nil when no shot is in flight
	Explosions    []Explosion
	PlayerLane    int
	WinPending    bool
}

// Snapshot captures the current state. Slices are copied so the caller
// may hold on to it across ticks.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:         g.phase,
		Difficulty:    g.difficulty,
		Score:         g.score,
		BestScore:     g.best,
		TimeRemaining: g.TimeRemaining(),
		Saucers:       append([]Saucer(nil), g.saucers...),
		Explosions:    append([]Explosion(nil), g.explosions...),
		PlayerLane:    g.playerLane,
		WinPending:    g.winPending,
	}
	if g.missile != nil {
		m := *g.missile
		snap.Missile = &m
	}
	return snap
}

// Loaded reports whether the launcher is ready to fire.
func (s Snapshot) Loaded() bool {
	return s.Phase == PhasePlaying && s.Missile == nil
}
