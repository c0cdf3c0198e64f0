package focustimer

import "time"

// Phase represents the cycle position the timer is counting through.
type Phase string

const (
	PhaseIdle  Phase = "idle"
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Next returns the phase the cycle advances into. Idle never advances.
func (phase Phase) Next() Phase {
	switch phase {
	case PhaseWork:
		return PhaseBreak
	case PhaseBreak:
		return PhaseWork
	default:
		return PhaseIdle
	}
}

// EventType defines the type of engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
)

// Event represents an engine update for observers. State is the snapshot
// taken at the instant the event was produced.
type Event struct {
	Type  EventType
	State Snapshot
	At    time.Time
}
