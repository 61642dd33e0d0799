package boot

import (
	"math/rand"
	"testing"
	"time"
)

func newTestSequencer(lines []string) (*Sequencer, *Transcript) {
	transcript := &Transcript{}
	return NewSequencer(lines, transcript, rand.New(rand.NewSource(1))), transcript
}

// TestStateString tests the String() method for State.
func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateIdle, "idle"},
		{StateRevealing, "revealing"},
		{StateReady, "ready"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.state.String(); got != tt.expected {
				t.Errorf("State.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestSequencerRevealsAllLinesInOrder tests the full reveal sequence.
func TestSequencerRevealsAllLinesInOrder(t *testing.T) {
	lines := []string{"one", "two", "", "three"}
	s, transcript := newTestSequencer(lines)

	if s.State() != StateRevealing {
		t.Fatalf("initial state = %v, want revealing", s.State())
	}

	for i := range lines {
		if ready := s.Advance(); ready {
			t.Fatalf("Advance() reported ready at stage %d", i)
		}
		if transcript.Len() != i+1 {
			t.Fatalf("transcript length = %d after stage %d, want %d", transcript.Len(), i, i+1)
		}
	}

	// One more advance after the table is exhausted flips to ready.
	if ready := s.Advance(); !ready {
		t.Fatal("final Advance() should report ready")
	}
	if s.State() != StateReady {
		t.Errorf("state = %v, want ready", s.State())
	}

	got := transcript.Lines()
	if len(got) != len(lines) {
		t.Fatalf("transcript length = %d, want %d", len(got), len(lines))
	}
	for i, line := range lines {
		if got[i] != line {
			t.Errorf("transcript[%d] = %q, want %q", i, got[i], line)
		}
	}
}

// TestSequencerReadyExactlyOnce tests that the ready transition is terminal.
func TestSequencerReadyExactlyOnce(t *testing.T) {
	s, transcript := newTestSequencer([]string{"a"})

	s.Advance()          // reveal "a"
	s.Advance()          // -> ready
	before := transcript.Len()

	// Extra advances are inert: no state change, no transcript growth.
	for i := 0; i < 3; i++ {
		if ready := s.Advance(); !ready {
			t.Error("Advance() on a ready sequencer should stay ready")
		}
	}
	if transcript.Len() != before {
		t.Errorf("transcript grew after ready: %d -> %d", before, transcript.Len())
	}
}

// TestSequencerDelays tests the delay schedule and its random bounds.
func TestSequencerDelays(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}
	s, _ := newTestSequencer(lines)

	if got := s.Delay(); got != 500*time.Millisecond {
		t.Errorf("first delay = %v, want 500ms", got)
	}
	s.Advance()

	// Between lines the delay is uniform in [150ms, 250ms).
	for s.Stage() < len(lines) {
		d := s.Delay()
		if d < 150*time.Millisecond || d >= 250*time.Millisecond {
			t.Errorf("stage %d delay = %v, want [150ms, 250ms)", s.Stage(), d)
		}
		s.Advance()
	}

	// The settle delay before ready is fixed.
	if got := s.Delay(); got != 500*time.Millisecond {
		t.Errorf("settle delay = %v, want 500ms", got)
	}
	s.Advance()

	if got := s.Delay(); got != 0 {
		t.Errorf("ready delay = %v, want 0", got)
	}
}

// TestSequencerBootTable tests the package's own line table end to end.
func TestSequencerBootTable(t *testing.T) {
	s, transcript := newTestSequencer(Lines)

	for !s.Advance() {
	}

	if transcript.Len() != len(Lines) {
		t.Errorf("transcript length = %d, want %d", transcript.Len(), len(Lines))
	}
}

// TestTranscriptAppendOnly tests that Lines returns an isolated copy.
func TestTranscriptAppendOnly(t *testing.T) {
	transcript := &Transcript{}
	transcript.Append("first")
	transcript.Append("second", "third")

	got := transcript.Lines()
	if len(got) != 3 {
		t.Fatalf("Len = %d, want 3", len(got))
	}

	got[0] = "mutated"
	if transcript.Lines()[0] != "first" {
		t.Error("mutating the returned slice must not affect the transcript")
	}
}
