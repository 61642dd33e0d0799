// Package typewriter implements a timed character-reveal primitive. A
// Sequencer exposes a growing prefix of its target string, one rune per
// tick. It owns no timers itself: the caller asks Delay() how long to wait
// and calls Tick() when that wait elapses. Because all timing lives with
// the owner, tearing the owner down cancels every pending tick and the
// sequencer can never mutate disposed state.
package typewriter

import "time"

// Sequencer reveals a string one rune at a time.
type Sequencer struct {
	target     []rune
	pos        int
	perRune    time.Duration
	startDelay time.Duration
}

// New creates a sequencer for the target string. perRune is the cadence
// between reveals; startDelay is the optional wait before the first rune.
func New(target string, perRune, startDelay time.Duration) *Sequencer {
	return &Sequencer{
		target:     []rune(target),
		perRune:    perRune,
		startDelay: startDelay,
	}
}

// Current returns the revealed prefix.
func (s *Sequencer) Current() string {
	return string(s.target[:s.pos])
}

// Done reports whether the whole target has been revealed.
func (s *Sequencer) Done() bool {
	return s.pos >= len(s.target)
}

// Delay returns how long the owner should wait before the next Tick. The
// start delay applies before the first rune; afterwards the per-rune
// cadence applies. Delay on a finished sequencer returns zero.
func (s *Sequencer) Delay() time.Duration {
	switch {
	case s.Done():
		return 0
	case s.pos == 0:
		return s.startDelay + s.perRune
	default:
		return s.perRune
	}
}

// Tick reveals the next rune and reports whether the sequence is complete.
// Ticking a finished sequencer is a no-op.
func (s *Sequencer) Tick() (done bool) {
	if !s.Done() {
		s.pos++
	}
	return s.Done()
}

// SetTarget swaps the target string mid-sequence. The revealed prefix
// resets to empty and timing restarts from zero, start delay included.
func (s *Sequencer) SetTarget(target string) {
	s.target = []rune(target)
	s.pos = 0
}
