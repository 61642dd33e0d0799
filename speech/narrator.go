package speech

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// Fixed utterance tuning applied to every narration.
const (
	narrationRate  = 0.95
	narrationPitch = 0.9
)

// speakBurst bounds how quickly fresh utterances may hit the host
// synthesizer. Cancellation is never limited, only new synthesis.
var speakLimit = rate.Limit(2) // per second

// Narrator owns the single in-flight utterance. Only one utterance is ever
// active: Speak cancels the previous one before starting the next
// (last-call-wins, no queueing), Stop silences immediately without waiting
// for the engine's own end notification.
type Narrator struct {
	mu      sync.Mutex
	engine  Engine
	status  *StatusMachine
	limiter *rate.Limiter

	// cancel aborts the in-flight utterance. generation stamps each
	// utterance so a superseded goroutine cannot flip state owned by its
	// successor.
	cancel     context.CancelFunc
	generation int

	// onChange, when set, is invoked after every status flip. The TUI uses
	// it to wake the event loop.
	onChange func()
}

// NewNarrator creates a narrator over the given engine.
func NewNarrator(engine Engine) *Narrator {
	return &Narrator{
		engine:  engine,
		status:  NewStatusMachine(),
		limiter: rate.NewLimiter(speakLimit, 2),
	}
}

// OnChange registers a callback fired after each speaking-state change.
// The callback must not call back into the narrator.
func (n *Narrator) OnChange(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

// Engine returns the underlying engine.
func (n *Narrator) Engine() Engine {
	return n.engine
}

// IsSpeaking reports whether an utterance is in flight.
func (n *Narrator) IsSpeaking() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.status.Current() == StatusSpeaking
}

// Speak starts narrating the given text. Any in-flight utterance is
// cancelled first. When the host has no speech capability this is a
// silent no-op.
func (n *Narrator) Speak(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.engine == nil || !n.engine.Available() {
		log.Debug("speech unavailable, ignoring speak request")
		return
	}

	// Last-call-wins: silence the previous utterance before this one can
	// reach the engine.
	n.cancelLocked()

	utterance := Utterance{
		Text:  text,
		Rate:  narrationRate,
		Pitch: narrationPitch,
	}
	if voice, ok := ChooseVoice(n.engine.Voices()); ok {
		utterance.Voice = voice
	}

	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	n.generation++
	gen := n.generation

	n.transitionLocked(StatusSpeaking)

	go func() {
		// Pace fresh synthesis; a cancelled utterance stops waiting here.
		if err := n.limiter.Wait(ctx); err != nil {
			return
		}

		err := n.engine.Speak(ctx, utterance)

		n.mu.Lock()
		defer n.mu.Unlock()
		if n.generation != gen {
			// Superseded by a later Speak or Stop; the state belongs to
			// the successor now.
			return
		}
		if err != nil && ctx.Err() == nil {
			log.Error("utterance failed", "engine", n.engine.Name(), "error", err)
		}
		n.cancel = nil
		n.transitionLocked(StatusIdle)
	}()
}

// Stop cancels any in-flight utterance and forces the idle state
// immediately. Stopping while idle is a safe no-op.
func (n *Narrator) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelLocked()
	n.transitionLocked(StatusIdle)
}

// cancelLocked aborts the in-flight utterance, if any, and invalidates its
// goroutine's claim on the status machine. Callers must hold mu.
func (n *Narrator) cancelLocked() {
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.generation++
}

// transitionLocked flips the status machine and fires the change hook.
// Illegal transitions (stop while idle) are silently ignored. Callers must
// hold mu.
func (n *Narrator) transitionLocked(to Status) {
	if !n.status.Transition(to) {
		return
	}
	if n.onChange != nil {
		n.onChange()
	}
}
