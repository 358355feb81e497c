package blaster

import "github.com/vovakirdan/ufo-blaster/internal/core"

// Autopilot returns the input a simple player would give for the snapshot:
// fire whenever the launcher is loaded, then steer the missile toward the
// lowest saucer still above it. Used by the headless simulator and tests.
func Autopilot(snap Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.Phase != PhasePlaying {
		return in
	}
	if snap.Missile == nil {
		in.Set(core.ActionFire)
		return in
	}

	target, ok := lowestAbove(snap.Saucers, snap.Missile.Altitude)
	if !ok {
		return in
	}
	switch {
	case target.Lane < snap.PlayerLane:
		in.Set(core.ActionMoveLeft)
	case target.Lane > snap.PlayerLane:
		in.Set(core.ActionMoveRight)
	}
	return in
}

// lowestAbove finds the saucer with the smallest altitude that is still
// above the given altitude.
func lowestAbove(saucers []Saucer, altitude float64) (Saucer, bool) {
	var best Saucer
	found := false
	for _, s := range saucers {
		if s.Altitude < altitude {
			continue
		}
		if !found || s.Altitude < best.Altitude {
			best = s
			found = true
		}
	}
	return best, found
}
