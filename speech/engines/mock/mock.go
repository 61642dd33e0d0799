// Package mock provides a controllable speech engine for testing the
// narrator lifecycle without a real synthesizer.
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/dgnsrekt/crtcast/speech"
)

// Engine implements speech.Engine with test hooks: configurable delay,
// forced failure, a blocking mode for cancellation tests, and a record of
// every utterance it received.
type Engine struct {
	mu sync.Mutex

	available bool
	delay     time.Duration
	failure   error
	voices    []speech.Voice

	// block, when set, makes Speak wait until Release is called or its
	// context is cancelled.
	block   bool
	release chan struct{}

	callCount  int
	utterances []speech.Utterance
}

// New creates an available mock engine with no delay.
func New() *Engine {
	return &Engine{
		available: true,
		release:   make(chan struct{}),
		voices: []speech.Voice{
			{ID: "mock-1", Name: "Mock One", Language: "en_US"},
			{ID: "mock-2", Name: "Samantha", Language: "en_US"},
		},
	}
}

// Name returns the engine name.
func (e *Engine) Name() string { return "mock" }

// Available returns the configured availability.
func (e *Engine) Available() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.available
}

// Voices returns the configured voice list.
func (e *Engine) Voices() []speech.Voice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.voices
}

// Speak records the utterance, then simulates playback according to the
// configured delay, failure, and blocking mode.
func (e *Engine) Speak(ctx context.Context, u speech.Utterance) error {
	e.mu.Lock()
	e.callCount++
	e.utterances = append(e.utterances, u)
	delay := e.delay
	failure := e.failure
	block := e.block
	release := e.release
	e.mu.Unlock()

	if failure != nil {
		return failure
	}

	if block {
		select {
		case <-release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return ctx.Err()
}

// Test control methods

// SetAvailable configures the availability check.
func (e *Engine) SetAvailable(available bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.available = available
}

// SetDelay sets the simulated playback duration.
func (e *Engine) SetDelay(delay time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.delay = delay
}

// SetFailure makes every Speak return err.
func (e *Engine) SetFailure(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failure = err
}

// SetVoices replaces the voice list.
func (e *Engine) SetVoices(voices []speech.Voice) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.voices = voices
}

// Block makes subsequent Speak calls wait for Release or cancellation.
func (e *Engine) Block() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.block = true
}

// Release unblocks every Speak currently waiting.
func (e *Engine) Release() {
	e.mu.Lock()
	defer e.mu.Unlock()
	close(e.release)
	e.release = make(chan struct{})
	e.block = false
}

// CallCount returns how many utterances Speak has received.
func (e *Engine) CallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.callCount
}

// Utterances returns a copy of every recorded utterance.
func (e *Engine) Utterances() []speech.Utterance {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]speech.Utterance, len(e.utterances))
	copy(out, e.utterances)
	return out
}
