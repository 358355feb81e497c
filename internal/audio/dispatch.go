package audio

import (
	"iter"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ufo-blaster/internal/games/blaster"
)

// Dispatch plays every cue in order. Errors and panics from the player are
// logged at debug level and swallowed.
func Dispatch(p Player, logger *log.Logger, cues iter.Seq[blaster.Cue]) {
	if p == nil {
		return
	}
	if logger == nil {
		logger = log.Default()
	}
	for cue := range cues {
		play(p, logger, cue)
	}
}

func play(p Player, logger *log.Logger, cue blaster.Cue) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("audio cue panicked", "cue", cue, "panic", r)
		}
	}()
	if err := p.Play(cue); err != nil {
		logger.Debug("audio cue failed", "cue", cue, "error", err)
	}
}
