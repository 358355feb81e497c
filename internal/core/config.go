package core

import "time"

// RuntimeConfig contains configuration passed to the game host at initialization.
// The host uses this to size the screen and seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frame rate (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// FrameInterval returns the nominal time between two host frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
