// Package audio turns simulation cues into sound.
// Playback is best effort: a failing backend never affects the game.
package audio

import (
	"sync"

	"github.com/vovakirdan/ufo-blaster/internal/games/blaster"
)

// Player plays a single named cue. Implementations must not block for the
// duration of the sound.
type Player interface {
	Play(cue blaster.Cue) error
}

// NopPlayer discards every cue.
type NopPlayer struct{}

// Play does nothing.
func (NopPlayer) Play(blaster.Cue) error { return nil }

// BellPlayer rings the terminal bell for the cues that matter most.
// It is the fallback for SSH sessions, where the server's speaker is
// useless to the remote player. It never writes to the terminal itself:
// the host drains the rings with TakeRings and puts BEL into its next
// frame, so the bell cannot land in the middle of one.
type BellPlayer struct {
	mu    sync.Mutex
	rings int
}

// NewBellPlayer creates a bell player with no pending rings.
func NewBellPlayer() *BellPlayer {
	return &BellPlayer{}
}

// Play counts a ring for hit, lose and win cues and ignores the rest.
func (p *BellPlayer) Play(cue blaster.Cue) error {
	switch cue {
	case blaster.CueHit, blaster.CueLose, blaster.CueWin:
	default:
		return nil
	}

	p.mu.Lock()
	p.rings++
	p.mu.Unlock()
	return nil
}

// TakeRings returns the rings since the previous call and resets the count.
func (p *BellPlayer) TakeRings() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := p.rings
	p.rings = 0
	return n
}
