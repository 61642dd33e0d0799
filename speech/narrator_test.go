package speech_test

import (
	"testing"
	"time"

	"github.com/dgnsrekt/crtcast/speech"
	"github.com/dgnsrekt/crtcast/speech/engines/mock"
)

// waitFor polls until the condition holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

// TestNarratorSpeakLifecycle tests the speaking flag over a full utterance.
func TestNarratorSpeakLifecycle(t *testing.T) {
	engine := mock.New()
	n := speech.NewNarrator(engine)

	n.Speak("hello")
	if !n.IsSpeaking() {
		t.Error("IsSpeaking should be true immediately after Speak")
	}

	waitFor(t, "utterance to finish", func() bool { return !n.IsSpeaking() })

	if engine.CallCount() != 1 {
		t.Errorf("engine received %d utterances, want 1", engine.CallCount())
	}
}

// TestNarratorLastCallWins tests that a second Speak cancels the first
// utterance instead of queueing behind it.
func TestNarratorLastCallWins(t *testing.T) {
	engine := mock.New()
	engine.Block()
	n := speech.NewNarrator(engine)

	n.Speak("first")
	waitFor(t, "first utterance to reach the engine", func() bool { return engine.CallCount() == 1 })

	n.Speak("second")
	if !n.IsSpeaking() {
		t.Error("IsSpeaking should remain true across the replacement")
	}
	waitFor(t, "second utterance to reach the engine", func() bool { return engine.CallCount() == 2 })

	engine.Release()
	waitFor(t, "narrator to go idle", func() bool { return !n.IsSpeaking() })

	utterances := engine.Utterances()
	if len(utterances) != 2 || utterances[0].Text != "first" || utterances[1].Text != "second" {
		t.Errorf("unexpected utterances: %+v", utterances)
	}
}

// TestNarratorStop tests that Stop silences immediately.
func TestNarratorStop(t *testing.T) {
	engine := mock.New()
	engine.Block()
	n := speech.NewNarrator(engine)

	n.Speak("long narration")
	waitFor(t, "utterance to reach the engine", func() bool { return engine.CallCount() == 1 })

	n.Stop()
	if n.IsSpeaking() {
		t.Error("IsSpeaking should be false immediately after Stop, before the engine ends")
	}
}

// TestNarratorStopWhileIdle tests that Stop without an utterance is a no-op.
func TestNarratorStopWhileIdle(t *testing.T) {
	n := speech.NewNarrator(mock.New())

	n.Stop()
	if n.IsSpeaking() {
		t.Error("IsSpeaking should remain false")
	}
}

// TestNarratorUnavailableEngine tests the capability-absent no-op path.
func TestNarratorUnavailableEngine(t *testing.T) {
	engine := mock.New()
	engine.SetAvailable(false)
	n := speech.NewNarrator(engine)

	n.Speak("into the void")

	if n.IsSpeaking() {
		t.Error("Speak on an unavailable engine must not start speaking")
	}
	if engine.CallCount() != 0 {
		t.Errorf("engine received %d utterances, want 0", engine.CallCount())
	}
}

// TestNarratorVoiceSelection tests the preferred-voice allowlist.
func TestNarratorVoiceSelection(t *testing.T) {
	engine := mock.New()
	engine.SetVoices([]speech.Voice{
		{ID: "v1", Name: "Robotron", Language: "en_US"},
		{ID: "v2", Name: "Samantha", Language: "en_US"},
	})
	n := speech.NewNarrator(engine)

	n.Speak("voice check")
	waitFor(t, "utterance to finish", func() bool { return !n.IsSpeaking() })

	utterances := engine.Utterances()
	if len(utterances) != 1 {
		t.Fatalf("engine received %d utterances, want 1", len(utterances))
	}
	if utterances[0].Voice.Name != "Samantha" {
		t.Errorf("selected voice = %q, want Samantha", utterances[0].Voice.Name)
	}
}

// TestNarratorVoiceFallback tests that no allowlist match means the engine
// default voice (the zero value).
func TestNarratorVoiceFallback(t *testing.T) {
	engine := mock.New()
	engine.SetVoices([]speech.Voice{{ID: "v1", Name: "Robotron", Language: "en_US"}})
	n := speech.NewNarrator(engine)

	n.Speak("fallback check")
	waitFor(t, "utterance to finish", func() bool { return !n.IsSpeaking() })

	if got := engine.Utterances()[0].Voice; got != (speech.Voice{}) {
		t.Errorf("voice = %+v, want engine default (zero value)", got)
	}
}

// TestNarratorOnChange tests the state-change notification hook.
func TestNarratorOnChange(t *testing.T) {
	engine := mock.New()
	n := speech.NewNarrator(engine)

	changes := make(chan struct{}, 8)
	n.OnChange(func() { changes <- struct{}{} })

	n.Speak("notify")

	// One change for the start, one for the end.
	for i := 0; i < 2; i++ {
		select {
		case <-changes:
		case <-time.After(3 * time.Second):
			t.Fatalf("missing state change notification %d", i+1)
		}
	}
}
