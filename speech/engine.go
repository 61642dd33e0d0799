// Package speech assembles the dashboard's spoken narration and drives a
// host text-to-speech engine through a single-utterance lifecycle: speak
// cancels whatever was in flight, stop forces silence, and an observable
// speaking flag tracks the engine's start and end.
package speech

import "context"

// Voice identifies a synthesizer voice.
type Voice struct {
	ID       string // engine-specific identifier
	Name     string // human-readable name
	Language string // language code, e.g. "en_US"
}

// Utterance is a single request to the synthesizer.
type Utterance struct {
	Text  string
	Voice Voice   // zero value means the engine default
	Rate  float64 // speech rate multiplier (1.0 = normal)
	Pitch float64 // pitch multiplier (1.0 = normal)
}

// Engine defines the interface to a text-to-speech backend.
type Engine interface {
	// Name returns the human-readable engine name.
	Name() string

	// Available performs a lightweight runtime check for usability.
	Available() bool

	// Voices returns the voices the engine offers. May be empty; callers
	// fall back to the engine default voice.
	Voices() []Voice

	// Speak synthesizes and plays one utterance, blocking until playback
	// finishes or ctx is cancelled. Cancellation must silence the engine.
	Speak(ctx context.Context, u Utterance) error
}

// preferredVoices is the allowlist consulted when picking a voice. The
// first list entry with a matching engine voice wins; when none match the
// engine default is used.
var preferredVoices = []string{
	"Samantha",
	"Daniel",
	"Alex",
	"en-us",
}

// ChooseVoice selects the first allowlisted voice present in the given
// list. The boolean is false when no preferred voice is available.
func ChooseVoice(voices []Voice) (Voice, bool) {
	for _, name := range preferredVoices {
		for _, v := range voices {
			if v.Name == name || v.ID == name {
				return v, true
			}
		}
	}
	return Voice{}, false
}
