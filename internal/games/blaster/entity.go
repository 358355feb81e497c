package blaster

import (
	"time"

	"github.com/vovakirdan/ufo-blaster/internal/core"
)

// Lane indices, left to right.
const (
	LaneLeft   = 0
	LaneCenter = core.LaneCount / 2
	LaneRight  = core.LaneCount - 1
)

// Saucer is a flying saucer descending toward the base.
type Saucer struct {
	ID        int     // Monotonically increasing per round
	Lane      int     // 0..2
	Altitude  float64 // Starts at the spawn altitude and falls every tick
	Direction int     // -1 or +1, the lane-drift intent
}

// drift applies one tick of lane-change probability.
// A center saucer jumps to a random edge; an edge saucer jumps back to center.
// The lane snaps immediately rather than sliding.
func (s *Saucer) drift(rng Rand, chance float64) {
	if rng.Float64() >= chance {
		return
	}
	switch s.Lane {
	case LaneLeft:
		s.Lane, s.Direction = LaneCenter, 1
	case LaneRight:
		s.Lane, s.Direction = LaneCenter, -1
	default:
		if rng.Float64() > 0.5 {
			s.Lane, s.Direction = LaneLeft, -1
		} else {
			s.Lane, s.Direction = LaneRight, 1
		}
	}
}

// Missile is the player's single shot.
type Missile struct {
	Lane         int
	Altitude     float64
	PrevAltitude float64 // Altitude before the latest tick, for sweep testing
}

// Explosion is a short-lived hit marker for the renderer.
type Explosion struct {
	Lane      int
	Altitude  float64
	CreatedAt time.Duration // Round clock at creation
}

// expired reports whether the explosion has outlived ttl at round time now.
func (e Explosion) expired(now, ttl time.Duration) bool {
	return now-e.CreatedAt >= ttl
}
