package ui

import (
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dgnsrekt/crtcast/internal/boot"
)

// bootStageMsg asks the boot sequencer to reveal its next line. The
// generation stamp discards ticks scheduled before a skip; a stale timer
// must never mutate the transcript.
type bootStageMsg struct {
	generation int
}

// bootModel drives the boot.Sequencer from timer ticks.
type bootModel struct {
	common     *commonModel
	seq        *boot.Sequencer
	transcript *boot.Transcript
	generation int
}

func newBootModel(common *commonModel, transcript *boot.Transcript) bootModel {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return bootModel{
		common:     common,
		seq:        boot.NewSequencer(boot.Lines, transcript, rng),
		transcript: transcript,
	}
}

// nextStage schedules the sequencer's next transition.
func (b bootModel) nextStage() tea.Cmd {
	generation := b.generation
	return tea.Tick(b.seq.Delay(), func(time.Time) tea.Msg {
		return bootStageMsg{generation: generation}
	})
}

// update advances the sequence by one stage. It reports ready when the
// sequencer reaches its terminal state.
func (b bootModel) update(msg bootStageMsg) (bootModel, bool, tea.Cmd) {
	if msg.generation != b.generation || b.seq.State() == boot.StateReady {
		return b, false, nil
	}

	if b.seq.Advance() {
		return b, true, nil
	}
	return b, false, b.nextStage()
}

// skip reveals the whole transcript at once and invalidates any pending
// stage ticks.
func (b *bootModel) skip() {
	b.generation++
	for !b.seq.Advance() {
	}
}

func (b bootModel) view() string {
	s := b.common.styles
	var out strings.Builder
	for _, line := range b.transcript.Lines() {
		out.WriteString(s.transcript.Render(line))
		out.WriteByte('\n')
	}
	out.WriteString(s.dim.Render("█"))
	return s.screen.Render(out.String())
}
