package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ufo-blaster/internal/games/blaster"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a plain sine beep.
type Tone struct {
	Freq     float64 // Hz
	Duration time.Duration
}

var tones = map[blaster.Cue]Tone{
	blaster.CueFire: {Freq: 523.25, Duration: 50 * time.Millisecond},   // C5
	blaster.CueHit:  {Freq: 783.99, Duration: 150 * time.Millisecond},  // G5
	blaster.CueUFO:  {Freq: 164.81, Duration: 80 * time.Millisecond},   // E3
	blaster.CueLose: {Freq: 65.41, Duration: 300 * time.Millisecond},   // C2
	blaster.CueWin:  {Freq: 1046.50, Duration: 200 * time.Millisecond}, // C6
}

// ToneFor returns the tone played for a cue.
func ToneFor(cue blaster.Cue) (Tone, bool) {
	t, ok := tones[cue]
	return t, ok
}

// ErrSpeakerNotReady is returned by Play until Open has succeeded.
var ErrSpeakerNotReady = errors.New("audio: speaker not ready")

// BeepPlayer synthesizes cues on the local speaker.
// Opening the speaker waits on the audio device, so it happens in Open,
// off the game loop. Play never opens it: until Open succeeds cues are
// dropped with ErrSpeakerNotReady.
type BeepPlayer struct {
	rate   beep.SampleRate
	volume float64 // Relative to full scale, in powers of two

	once    sync.Once
	initErr error
	ready   atomic.Bool
}

// NewBeepPlayer creates a player at a comfortable volume.
func NewBeepPlayer() *BeepPlayer {
	return &BeepPlayer{
		rate:   sampleRate,
		volume: -2,
	}
}

// Open initializes the speaker. It blocks until the device answers, so
// callers run it in its own goroutine. Later calls return the first result.
func (p *BeepPlayer) Open() error {
	p.once.Do(func() {
		p.initErr = speaker.Init(p.rate, p.rate.N(time.Second/10))
		if p.initErr == nil {
			p.ready.Store(true)
		}
	})
	if p.initErr != nil {
		return fmt.Errorf("audio: speaker unavailable: %w", p.initErr)
	}
	return nil
}

// Play queues the cue's tone on the speaker and returns immediately.
func (p *BeepPlayer) Play(cue blaster.Cue) error {
	tone, ok := ToneFor(cue)
	if !ok {
		return fmt.Errorf("audio: no tone for cue %v", cue)
	}
	if !p.ready.Load() {
		return ErrSpeakerNotReady
	}

	s, err := p.streamer(tone)
	if err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// streamer builds a finite, attenuated sine streamer for the tone.
func (p *BeepPlayer) streamer(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(p.rate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.2fHz: %w", t.Freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(p.rate.N(t.Duration), sine),
		Base:     2,
		Volume:   p.volume,
	}, nil
}
