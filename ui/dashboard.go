package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	humanize "github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/dgnsrekt/crtcast/internal/almanac"
	"github.com/dgnsrekt/crtcast/internal/boot"
	"github.com/dgnsrekt/crtcast/internal/typewriter"
	"github.com/dgnsrekt/crtcast/speech"
)

const (
	// generalPlaceholder reports an empty location commit in the transcript.
	generalPlaceholder = "GENERAL"

	// statusFlashTimeout is how long transient status messages linger.
	statusFlashTimeout = 3 * time.Second

	// transcriptTail is how many transcript lines the dashboard shows.
	transcriptTail = 8

	headerPerRune    = 35 * time.Millisecond
	headerStartDelay = 150 * time.Millisecond
)

// headerTickMsg advances the typewriter header reveal. The generation
// stamp cancels ticks that belong to a replaced target.
type headerTickMsg struct {
	generation int
}

// statusFlashTimeoutMsg clears the transient status message.
type statusFlashTimeoutMsg struct{}

// dashModel is the main dashboard: clock, weather, news, transcript, and
// the speech controls.
type dashModel struct {
	common     *commonModel
	transcript *boot.Transcript
	narrator   *speech.Narrator
	clock      clockwork.Clock

	// committed is the location driving weather and news derivation; it
	// only changes on an explicit submit. Weather and news are recomputed
	// from it on every render, never stored.
	committed string

	input   textinput.Model
	spin    spinner.Model
	help    help.Model
	header  *typewriter.Sequencer
	headerG int

	lastSpoken  time.Time
	statusFlash string
	showHelp    bool
}

func newDashModel(common *commonModel, transcript *boot.Transcript, narrator *speech.Narrator, clock clockwork.Clock) dashModel {
	input := textinput.New()
	input.Placeholder = "city / region / zip"
	input.Prompt = "LOCATION> "
	input.PromptStyle = common.styles.inputLabel
	input.CharLimit = 40

	spin := spinner.New()
	spin.Spinner = spinner.Line
	spin.Style = common.styles.speaking

	return dashModel{
		common:     common,
		transcript: transcript,
		narrator:   narrator,
		clock:      clock,
		input:      input,
		spin:       spin,
		help:       help.New(),
		header:     typewriter.New(tagline(""), headerPerRune, headerStartDelay),
	}
}

// tagline is the typewriter header target for a committed location.
func tagline(committed string) string {
	if committed == "" {
		return "CRTCAST // REGIONAL FEED TERMINAL // ALL SECTORS"
	}
	return "CRTCAST // REGIONAL FEED TERMINAL // " + strings.ToUpper(committed)
}

// start returns the commands that bring the dashboard to life once boot
// completes.
func (d dashModel) start() []tea.Cmd {
	return []tea.Cmd{textinput.Blink, d.headerTick()}
}

func (d dashModel) headerTick() tea.Cmd {
	if d.header.Done() {
		return nil
	}
	generation := d.headerG
	return tea.Tick(d.header.Delay(), func(time.Time) tea.Msg {
		return headerTickMsg{generation: generation}
	})
}

func (d *dashModel) setSize(width, height int) {
	if max := int(d.common.cfg.MaxWidth); max > 0 && width > max {
		width = max
	}
	d.common.width = width
	d.help.Width = width
	d.input.Width = 32
}

// commitLocation records a submitted location and reports the change in
// the transcript. An empty commit is valid and means no regional filter.
func (d *dashModel) commitLocation(raw string) {
	d.committed = strings.TrimSpace(raw)

	display := generalPlaceholder
	if d.committed != "" {
		display = strings.ToUpper(d.committed)
	}
	d.transcript.Append(
		"LOCATION SET: "+display,
		"RECALIBRATING FEEDS ...",
	)

	d.header.SetTarget(tagline(d.committed))
	d.headerG++
	log.Debug("location committed", "location", display)
}

// narration builds the spoken text for this instant. The clock is read
// here, at speak time, never at render time.
func (d dashModel) narration() string {
	return speech.BuildNarration(
		d.clock.Now(),
		almanac.Weather(d.committed),
		almanac.News(d.committed),
		d.committed != "",
	)
}

func (d dashModel) update(msg tea.Msg) (dashModel, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return d.updateKeys(msg)

	case headerTickMsg:
		if msg.generation != d.headerG || d.header.Done() {
			return d, nil, false
		}
		d.header.Tick()
		return d, d.headerTick(), false

	case spinner.TickMsg:
		if !d.narrator.IsSpeaking() {
			return d, nil, false
		}
		var cmd tea.Cmd
		d.spin, cmd = d.spin.Update(msg)
		return d, cmd, false

	case statusFlashTimeoutMsg:
		d.statusFlash = ""
		return d, nil, false
	}

	if d.input.Focused() {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd, false
	}
	return d, nil, false
}

func (d dashModel) updateKeys(msg tea.KeyMsg) (dashModel, tea.Cmd, bool) {
	keys := d.common.keys

	// While the location field is focused almost every key belongs to it.
	if d.input.Focused() {
		switch {
		case key.Matches(msg, keys.Submit):
			d.input.Blur()
			value := d.input.Value()
			d.input.SetValue("")
			d.commitLocation(value)
			return d, d.headerTick(), false
		case msg.String() == "esc":
			d.input.Blur()
			return d, nil, false
		default:
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return d, cmd, false
		}
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return d, nil, true

	case key.Matches(msg, keys.Focus):
		return d, d.input.Focus(), false

	case key.Matches(msg, keys.Speak):
		d.narrator.Speak(d.narration())
		if d.narrator.IsSpeaking() {
			d.lastSpoken = d.clock.Now()
			return d, tea.Batch(d.spin.Tick, watchSpeech()), false
		}
		// Capability absent: the controls degrade to no-ops.
		return d, d.flash("SPEECH SYNTHESIZER OFFLINE"), false

	case key.Matches(msg, keys.Stop):
		d.narrator.Stop()
		return d, nil, false

	case key.Matches(msg, keys.Copy):
		if err := clipboard.WriteAll(d.narration()); err != nil {
			log.Error("clipboard write failed", "error", err)
			return d, d.flash("CLIPBOARD UNAVAILABLE"), false
		}
		return d, d.flash("NARRATION COPIED"), false

	case key.Matches(msg, keys.Help):
		d.showHelp = !d.showHelp
		return d, nil, false
	}

	return d, nil, false
}

// flash sets a transient status message and schedules its removal.
func (d *dashModel) flash(text string) tea.Cmd {
	d.statusFlash = text
	return tea.Tick(statusFlashTimeout, func(time.Time) tea.Msg {
		return statusFlashTimeoutMsg{}
	})
}

// VIEW

func (d dashModel) view() string {
	s := d.common.styles
	width := d.common.width
	if width <= 0 {
		width = 80
	}

	var sections []string
	sections = append(sections, d.headerView())

	if d.showHelp {
		sections = append(sections, d.helpView(width))
	} else {
		sections = append(sections, d.panelsView(width))
		sections = append(sections, d.input.View())
		sections = append(sections, d.transcriptView(width))
	}

	sections = append(sections, d.statusView(width))
	return s.screen.Render(strings.Join(sections, "\n"))
}

func (d dashModel) headerView() string {
	s := d.common.styles
	header := d.header.Current()
	if !d.header.Done() {
		header += "█"
	}
	return s.header.Render(header)
}

func (d dashModel) panelsView(width int) string {
	s := d.common.styles
	panelWidth := width/3 - 2
	if panelWidth < 16 {
		panelWidth = 16
	}
	inner := panelWidth - 2

	now := d.clock.Now()
	chrono := strings.Join([]string{
		s.value.Render(now.Format("Monday")),
		s.value.Render(now.Format("2006-01-02")),
		s.value.Render(now.Format("15:04:05")),
	}, "\n")

	weather := almanac.Weather(d.committed)
	weatherBody := strings.Join([]string{
		s.value.Render(runewidth.Truncate(weather.Location, inner, "…")),
		s.value.Render(runewidth.Truncate(weather.Condition, inner, "…")),
		s.value.Render(fmt.Sprintf("%d°F  HUM %d%%", weather.Temperature, weather.Humidity)),
	}, "\n")

	var newsLines []string
	for _, item := range almanac.News(d.committed) {
		newsLines = append(newsLines,
			s.value.Render(runewidth.Truncate(item.Title, inner, "…")),
			s.source.Render(runewidth.Truncate("  — "+item.Source, inner, "…")),
		)
	}

	panel := func(title, body string) string {
		return s.panel.Width(panelWidth).Render(
			s.panelTitle.Render(title) + "\n" + body,
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		panel("CHRONO", chrono),
		panel("WEATHER", weatherBody),
		panel("NEWSWIRE", strings.Join(newsLines, "\n")),
	)
}

func (d dashModel) transcriptView(width int) string {
	s := d.common.styles

	lines := d.transcript.Lines()
	if len(lines) > transcriptTail {
		lines = lines[len(lines)-transcriptTail:]
	}

	body := wordwrap.String(strings.Join(lines, "\n"), width-4)
	return s.panel.Width(width - 2).Render(
		s.panelTitle.Render("SYSTEM LOG") + "\n" + s.transcript.Render(body),
	)
}

func (d dashModel) statusView(width int) string {
	s := d.common.styles
	var parts []string

	if d.narrator.IsSpeaking() {
		parts = append(parts, s.speaking.Render(d.spin.View()+" SPEAKING"))
	} else {
		parts = append(parts, s.dim.Render("■ IDLE"))
	}

	parts = append(parts, s.dim.Render("VOX: "+strings.ToUpper(d.narrator.Engine().Name())))

	if !d.lastSpoken.IsZero() {
		parts = append(parts, s.dim.Render("spoken "+humanize.Time(d.lastSpoken)))
	}

	if d.statusFlash != "" {
		parts = append(parts, s.speaking.Render(d.statusFlash))
	}

	bar := strings.Join(parts, s.dim.Render(" │ "))
	return bar + "\n" + d.help.ShortHelpView(d.common.keys.ShortHelp())
}
