package speech

// Status represents the narrator's speaking state. The machine has exactly
// two states so every legal transition is enumerable: Speak moves Idle to
// Speaking, and either the engine's end notification or an explicit Stop
// moves Speaking back to Idle.
type Status int

const (
	// StatusIdle indicates no utterance is in flight.
	StatusIdle Status = iota
	// StatusSpeaking indicates an utterance is playing.
	StatusSpeaking
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSpeaking:
		return "speaking"
	default:
		return "unknown"
	}
}

// StatusMachine manages the idle/speaking transitions.
type StatusMachine struct {
	current     Status
	transitions map[Status][]Status
}

// NewStatusMachine creates a machine in the idle state.
func NewStatusMachine() *StatusMachine {
	return &StatusMachine{
		current: StatusIdle,
		transitions: map[Status][]Status{
			StatusIdle:     {StatusSpeaking},
			StatusSpeaking: {StatusIdle},
		},
	}
}

// Current returns the current status.
func (sm *StatusMachine) Current() Status {
	return sm.current
}

// Transition attempts to move to the given status, reporting whether the
// transition was legal. Self-transitions are rejected.
func (sm *StatusMachine) Transition(to Status) bool {
	for _, next := range sm.transitions[sm.current] {
		if next == to {
			sm.current = to
			return true
		}
	}
	return false
}
