// Package engines provides speech.Engine implementations backed by
// command-line synthesizers found on the host, plus a null engine for
// hosts with no speech capability at all.
package engines

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dgnsrekt/crtcast/speech"
)

// candidates lists the synthesizer binaries probed in preference order.
var candidates = []string{"say", "espeak-ng", "espeak", "flite"}

// defaultTimeout bounds a single utterance. Narrations are a few sentences
// long; anything past this is a hung synthesizer.
const defaultTimeout = 2 * time.Minute

// Subprocess is an Engine that shells out to a host synthesizer binary.
// Cancelling the Speak context kills the process, which stops playback.
type Subprocess struct {
	binary  string
	path    string
	timeout time.Duration
}

// Detect probes PATH for a known synthesizer and returns an engine for the
// first one found, or the null engine when the host has none.
func Detect() speech.Engine {
	for _, bin := range candidates {
		if path, err := exec.LookPath(bin); err == nil {
			log.Debug("speech synthesizer found", "binary", bin, "path", path)
			return &Subprocess{binary: bin, path: path, timeout: defaultTimeout}
		}
	}
	log.Debug("no speech synthesizer on PATH")
	return Null{}
}

// ForName returns the engine for an explicit selection: one of the known
// binary names, or "off" for the null engine, or "auto" for Detect.
func ForName(name string) (speech.Engine, error) {
	switch name {
	case "", "auto":
		return Detect(), nil
	case "off":
		return Null{}, nil
	}
	for _, bin := range candidates {
		if name == bin {
			path, err := exec.LookPath(bin)
			if err != nil {
				return nil, fmt.Errorf("synthesizer %q not found on PATH: %w", bin, err)
			}
			return &Subprocess{binary: bin, path: path, timeout: defaultTimeout}, nil
		}
	}
	return nil, fmt.Errorf("unknown speech engine %q (supported: %s, off, auto)", name, strings.Join(candidates, ", "))
}

// Name returns the synthesizer binary name.
func (s *Subprocess) Name() string {
	return s.binary
}

// Available re-checks that the binary is still reachable.
func (s *Subprocess) Available() bool {
	_, err := exec.LookPath(s.binary)
	return err == nil
}

// Speak runs one utterance through the synthesizer, blocking until the
// process exits or ctx is cancelled. The utterance text is wired to stdin
// before the process starts so there is no write race.
func (s *Subprocess) Speak(ctx context.Context, u speech.Utterance) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	args, viaStdin := speakArgs(s.binary, u)
	cmd := exec.CommandContext(ctx, s.path, args...)
	if viaStdin {
		cmd.Stdin = strings.NewReader(u.Text)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		// Cancellation and timeout are the caller's doing, not a failure
		// of the synthesizer.
		return ctx.Err()
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", s.binary, err, msg)
		}
		return fmt.Errorf("%s failed: %w", s.binary, err)
	}
	return nil
}

// speakArgs maps an utterance's voice, rate, and pitch onto the flags of a
// particular synthesizer. The boolean reports whether the text should be
// fed on stdin; otherwise it is appended as an argument.
func speakArgs(binary string, u speech.Utterance) (args []string, viaStdin bool) {
	rate := u.Rate
	if rate <= 0 {
		rate = 1.0
	}
	pitch := u.Pitch
	if pitch <= 0 {
		pitch = 1.0
	}

	switch binary {
	case "say":
		// say speaks stdin when no text argument is given. Rate is words
		// per minute around a 175 wpm baseline; say has no pitch flag.
		args = []string{"-r", strconv.Itoa(int(175 * rate))}
		if u.Voice.Name != "" {
			args = append(args, "-v", u.Voice.Name)
		}
		return args, true

	case "espeak-ng", "espeak":
		// -s is words per minute, -p is pitch 0..99 around a default of 50.
		args = []string{
			"--stdin",
			"-s", strconv.Itoa(int(175 * rate)),
			"-p", strconv.Itoa(int(50 * pitch)),
		}
		if u.Voice.ID != "" {
			args = append(args, "-v", u.Voice.ID)
		}
		return args, true

	case "flite":
		// flite stretches duration rather than taking a rate; stretch is
		// the inverse of rate.
		args = []string{"--setf", fmt.Sprintf("duration_stretch=%.2f", 1/rate)}
		if u.Voice.Name != "" {
			args = append(args, "-voice", u.Voice.Name)
		}
		return append(args, "-t", u.Text), false

	default:
		return []string{u.Text}, false
	}
}

// Voices enumerates the synthesizer's voices where the binary supports
// listing them. Engines that cannot enumerate report an empty list and the
// narrator falls back to the engine default voice.
func (s *Subprocess) Voices() []speech.Voice {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch s.binary {
	case "say":
		out, err := exec.CommandContext(ctx, s.path, "-v", "?").Output()
		if err != nil {
			return nil
		}
		return parseSayVoices(string(out))
	case "espeak-ng", "espeak":
		out, err := exec.CommandContext(ctx, s.path, "--voices=en").Output()
		if err != nil {
			return nil
		}
		return parseESpeakVoices(string(out))
	default:
		return nil
	}
}

// parseSayVoices parses `say -v ?` output: a name (possibly containing
// spaces), a language code, then a "# sample" comment.
func parseSayVoices(out string) []speech.Voice {
	var voices []speech.Voice
	for _, line := range strings.Split(out, "\n") {
		name, rest, found := strings.Cut(line, "  ")
		if !found || name == "" {
			continue
		}
		lang, _, _ := strings.Cut(strings.TrimSpace(rest), " ")
		voices = append(voices, speech.Voice{
			ID:       name,
			Name:     name,
			Language: lang,
		})
	}
	return voices
}

// parseESpeakVoices parses `espeak --voices=en` output. Columns are
// Pty Language Age/Gender VoiceName File; the header line is skipped.
func parseESpeakVoices(out string) []speech.Voice {
	var voices []speech.Voice
	for i, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if i == 0 || len(fields) < 4 {
			continue
		}
		voices = append(voices, speech.Voice{
			ID:       fields[3],
			Name:     fields[3],
			Language: fields[1],
		})
	}
	return voices
}
