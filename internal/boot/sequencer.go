// Package boot implements the startup reveal sequence: a fixed table of
// boot lines is appended to a transcript one line at a time, with a
// randomized delay between lines, before the dashboard becomes visible.
//
// The sequencer is a plain state machine with no timers of its own. The
// owner asks Delay() how long to wait, sleeps however it likes (the TUI
// uses tea.Tick), then calls Advance(). Tests drain the whole sequence
// synchronously with a seeded random source.
package boot

import (
	"math/rand"
	"time"
)

// State represents the sequencer's position in its lifecycle.
type State int

const (
	// StateIdle indicates the sequencer has not started.
	StateIdle State = iota
	// StateRevealing indicates boot lines are still being appended.
	StateRevealing
	// StateReady is the terminal state: every line is revealed and the
	// main content may display. The sequencer is inert thereafter.
	StateReady
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRevealing:
		return "revealing"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

const (
	firstLineDelay  = 500 * time.Millisecond
	settleDelay     = 500 * time.Millisecond
	minRevealDelay  = 150 * time.Millisecond
	revealDelaySpan = 100 * time.Millisecond
)

// Sequencer reveals a fixed table of lines into a transcript.
type Sequencer struct {
	lines      []string
	stage      int
	state      State
	transcript *Transcript
	rng        *rand.Rand
}

// NewSequencer creates a sequencer over the given lines. The random source
// drives the per-line delays; tests pass a seeded source for repeatability.
// The sequencer starts revealing immediately: its initial state is
// StateRevealing at stage zero.
func NewSequencer(lines []string, transcript *Transcript, rng *rand.Rand) *Sequencer {
	return &Sequencer{
		lines:      lines,
		state:      StateRevealing,
		transcript: transcript,
		rng:        rng,
	}
}

// State returns the current state.
func (s *Sequencer) State() State {
	return s.state
}

// Stage returns the index of the next line to reveal.
func (s *Sequencer) Stage() int {
	return s.stage
}

// Delay returns how long the owner should wait before the next Advance:
// 500ms before the first line, a uniform [150ms, 250ms) delay between
// lines, and a fixed 500ms settle delay before the Ready transition.
func (s *Sequencer) Delay() time.Duration {
	switch {
	case s.state != StateRevealing:
		return 0
	case s.stage == 0:
		return firstLineDelay
	case s.stage >= len(s.lines):
		return settleDelay
	default:
		return minRevealDelay + time.Duration(s.rng.Int63n(int64(revealDelaySpan)))
	}
}

// Advance performs one transition. While lines remain it appends the next
// line to the transcript and stays in StateRevealing; once the table is
// exhausted it transitions to StateReady and returns true. Advancing a
// ready sequencer is a no-op.
func (s *Sequencer) Advance() (ready bool) {
	if s.state != StateRevealing {
		return s.state == StateReady
	}

	if s.stage < len(s.lines) {
		s.transcript.Append(s.lines[s.stage])
		s.stage++
		return false
	}

	s.state = StateReady
	return true
}
