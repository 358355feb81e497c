package blaster

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/ufo-blaster/internal/core"
)

// Rand is the random source the simulation draws from.
// *rand.Rand satisfies it; tests can script outcomes.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source for reproducible rounds.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Spawner decides when saucers enter the field.
// Spawns are gated by a minimum interval and a cap on live saucers.
type Spawner struct {
	interval  time.Duration
	maxActive int
	altitude  float64
	sinceLast time.Duration
	lastID    int
}

// NewSpawner creates a spawner for one difficulty level.
func NewSpawner(interval time.Duration, maxActive int, altitude float64) *Spawner {
	return &Spawner{
		interval:  interval,
		maxActive: maxActive,
		altitude:  altitude,
	}
}

// Reset restarts the interval timer and the id counter for a new round.
func (s *Spawner) Reset(interval time.Duration) {
	s.interval = interval
	s.sinceLast = 0
	s.lastID = 0
}

// Update advances the interval timer by dt. Once more than one interval has
// elapsed the timer restarts, and a saucer is produced unless active is
// already at the cap. A capped spawn is skipped, not deferred.
func (s *Spawner) Update(dt time.Duration, active int, rng Rand) (Saucer, bool) {
	s.sinceLast += dt
	if s.sinceLast <= s.interval {
		return Saucer{}, false
	}
	s.sinceLast = 0
	if active >= s.maxActive {
		return Saucer{}, false
	}
	return s.Spawn(rng), true
}

// Spawn creates a saucer at the top of the field in a random lane,
// drifting in a random direction.
func (s *Spawner) Spawn(rng Rand) Saucer {
	s.lastID++
	lane := rng.Intn(core.LaneCount)
	dir := -1
	if rng.Float64() > 0.5 {
		dir = 1
	}
	return Saucer{
		ID:        s.lastID,
		Lane:      lane,
		Altitude:  s.altitude,
		Direction: dir,
	}
}
