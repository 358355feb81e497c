package blaster

import (
	"math"

	"github.com/vovakirdan/ufo-blaster/internal/core"
)

// Point bounds for a single hit.
const (
	MinPoints = 1
	MaxPoints = 6
)

// hitBox holds the collision tolerances.
type hitBox struct {
	window  float64 // Half-height around the saucer's altitude
	ceiling float64 // Saucers above this are out of reach
}

// hits reports whether the missile intersects a saucer this tick.
// A missile either swept through the saucer's box since the last tick,
// or currently sits inside it.
func (b hitBox) hits(m Missile, s Saucer) bool {
	if s.Lane != m.Lane {
		return false
	}
	if s.Altitude < 0 || s.Altitude > b.ceiling {
		return false
	}
	lo, hi := s.Altitude-b.window, s.Altitude+b.window
	swept := m.Altitude >= lo && m.PrevAltitude < hi
	inside := m.Altitude >= lo && m.Altitude <= hi
	return swept || inside
}

// findHit returns the index of the first saucer the missile hits, or -1.
// Iteration order decides between simultaneous candidates.
func (b hitBox) findHit(m Missile, saucers []Saucer) int {
	for i, s := range saucers {
		if b.hits(m, s) {
			return i
		}
	}
	return -1
}

// Points returns the score for destroying a saucer at the given altitude.
// Higher hits are worth more: ceil(altitude) clamped to [1, 6].
func Points(altitude float64) int {
	return core.Clamp(int(math.Ceil(altitude)), MinPoints, MaxPoints)
}
