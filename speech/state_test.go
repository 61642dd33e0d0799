package speech

import "testing"

// TestStatusString tests the String() method for Status.
func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusIdle, "idle"},
		{StatusSpeaking, "speaking"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.status.String(); got != tt.expected {
				t.Errorf("Status.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestStatusMachineTransitions tests every legal and illegal transition.
func TestStatusMachineTransitions(t *testing.T) {
	tests := []struct {
		name        string
		from        Status
		to          Status
		shouldAllow bool
	}{
		{"idle to speaking", StatusIdle, StatusSpeaking, true},
		{"speaking to idle", StatusSpeaking, StatusIdle, true},
		{"idle to idle", StatusIdle, StatusIdle, false},
		{"speaking to speaking", StatusSpeaking, StatusSpeaking, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewStatusMachine()
			sm.current = tt.from

			if got := sm.Transition(tt.to); got != tt.shouldAllow {
				t.Errorf("Transition(%v) from %v = %v, want %v", tt.to, tt.from, got, tt.shouldAllow)
			}

			want := tt.from
			if tt.shouldAllow {
				want = tt.to
			}
			if sm.Current() != want {
				t.Errorf("Current() = %v, want %v", sm.Current(), want)
			}
		})
	}
}

// TestStatusMachineInitialState tests that a new machine starts idle.
func TestStatusMachineInitialState(t *testing.T) {
	if sm := NewStatusMachine(); sm.Current() != StatusIdle {
		t.Errorf("initial status = %v, want idle", sm.Current())
	}
}
