package engines

import (
	"context"

	"github.com/dgnsrekt/crtcast/speech"
)

// Null is the engine used when the host has no speech capability. Every
// operation is a silent no-op so the rest of the application never needs a
// nil check or an error path for missing speech.
type Null struct{}

// Name returns the engine name.
func (Null) Name() string { return "none" }

// Available always reports false.
func (Null) Available() bool { return false }

// Voices returns no voices.
func (Null) Voices() []speech.Voice { return nil }

// Speak does nothing and never fails.
func (Null) Speak(context.Context, speech.Utterance) error { return nil }
