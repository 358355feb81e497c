package blaster

import "iter"

// Cue is a named, parameterless audio trigger.
type Cue int

const (
	CueFire Cue = iota
	CueHit
	CueUFO
	CueLose
	CueWin
)

// String returns the cue name as the audio collaborator knows it.
func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueHit:
		return "hit"
	case CueUFO:
		return "ufo"
	case CueLose:
		return "lose"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// Outcome is how a round ended.
type Outcome int

const (
	OutcomeWon Outcome = iota + 1
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// EventKind discriminates Event.
type EventKind int

const (
	EventCue       EventKind = iota // Cue is set
	EventExplosion                  // Explosion is set
	EventRoundOver                  // Outcome and Score are set
)

// Event is a side effect emitted by the simulation for its collaborators.
// The simulation never calls into audio or rendering directly.
type Event struct {
	Kind      EventKind
	Cue       Cue
	Explosion Explosion
	Outcome   Outcome
	Score     int
}

func cueEvent(c Cue) Event {
	return Event{Kind: EventCue, Cue: c}
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	Events []Event
	Phase  Phase
	Score  int
}

// All yields every event emitted during the step, in emission order.
func (r StepResult) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, e := range r.Events {
			if !yield(e) {
				return
			}
		}
	}
}

// Cues yields only the audio cues emitted during the step.
func (r StepResult) Cues() iter.Seq[Cue] {
	return func(yield func(Cue) bool) {
		for e := range r.All() {
			if e.Kind != EventCue {
				continue
			}
			if !yield(e.Cue) {
				return
			}
		}
	}
}

// RoundOver returns the round-over event of this step, if any.
func (r StepResult) RoundOver() (Event, bool) {
	for e := range r.All() {
		if e.Kind == EventRoundOver {
			return e, true
		}
	}
	return Event{}, false
}
