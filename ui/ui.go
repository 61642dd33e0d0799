// Package ui provides the crtcast terminal dashboard.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/dgnsrekt/crtcast/internal/boot"
	"github.com/dgnsrekt/crtcast/speech"
	"github.com/dgnsrekt/crtcast/speech/engines"
)

// NewProgram returns a new Tea program for the dashboard.
func NewProgram(cfg Config) (*tea.Program, error) {
	engine, err := engines.ForName(cfg.Engine)
	if err != nil {
		return nil, err
	}
	log.Debug("starting crtcast", "engine", engine.Name(), "location", cfg.Location)

	m := newModel(cfg, speech.NewNarrator(engine), clockwork.NewRealClock())
	return tea.NewProgram(m, tea.WithAltScreen()), nil
}

// state is the top-level application state.
type state int

const (
	stateBooting state = iota
	stateDashboard
)

func (s state) String() string {
	switch s {
	case stateBooting:
		return "booting"
	case stateDashboard:
		return "showing dashboard"
	default:
		return "unknown"
	}
}

// clockTickMsg redraws the clock panel once a second.
type clockTickMsg time.Time

// speechWatchMsg polls the narrator while an utterance is in flight so the
// status bar tracks the engine's end notification.
type speechWatchMsg struct{}

// Common stuff we'll need to access in all models.
type commonModel struct {
	cfg    Config
	styles styles
	keys   keyMap
	width  int
	height int
}

type model struct {
	common   *commonModel
	state    state
	narrator *speech.Narrator
	clock    clockwork.Clock

	// Sub-models
	boot bootModel
	dash dashModel
}

func newModel(cfg Config, narrator *speech.Narrator, clock clockwork.Clock) model {
	common := &commonModel{
		cfg:    cfg,
		styles: newStyles(cfg.Mono),
		keys:   newKeyMap(),
	}

	transcript := &boot.Transcript{}
	m := model{
		common:   common,
		state:    stateBooting,
		narrator: narrator,
		clock:    clock,
		boot:     newBootModel(common, transcript),
		dash:     newDashModel(common, transcript, narrator, clock),
	}

	if cfg.Location != "" {
		m.dash.commitLocation(cfg.Location)
	}

	if cfg.SkipBoot {
		m.boot.skip()
		m.state = stateDashboard
	}

	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{clockTick()}

	if m.state == stateBooting {
		cmds = append(cmds, m.boot.nextStage())
	} else {
		cmds = append(cmds, m.dash.start()...)
	}

	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Ctrl+C always quits no matter where in the application you are.
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}

	case tea.WindowSizeMsg:
		m.common.width = msg.Width
		m.common.height = msg.Height
		m.dash.setSize(msg.Width, msg.Height)

	case clockTickMsg:
		// The view reads the clock directly; the tick only forces a redraw.
		return m, clockTick()

	case bootStageMsg:
		if m.state != stateBooting {
			return m, nil
		}
		newBoot, ready, cmd := m.boot.update(msg)
		m.boot = newBoot
		if ready {
			log.Debug("boot sequence complete", "lines", m.boot.transcript.Len())
			m.state = stateDashboard
			return m, tea.Batch(m.dash.start()...)
		}
		return m, cmd

	case speechWatchMsg:
		if m.narrator.IsSpeaking() {
			return m, watchSpeech()
		}
		// Falling idle: the redraw triggered by this message clears the
		// speaking indicator.
		return m, nil
	}

	if m.state == stateDashboard {
		newDash, cmd, quitting := m.dash.update(msg)
		m.dash = newDash
		if quitting {
			return m, m.quit()
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	switch m.state {
	case stateBooting:
		return m.boot.view()
	default:
		return m.dash.view()
	}
}

// quit interrupts any in-flight utterance before tearing the program down.
func (m model) quit() tea.Cmd {
	m.narrator.Stop()
	return tea.Quit
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func watchSpeech() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return speechWatchMsg{}
	})
}
