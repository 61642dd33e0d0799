package ui

import "github.com/charmbracelet/lipgloss"

// Phosphor palette. The whole dashboard renders in CRT green with a dim
// variant for chrome; mono mode strips color entirely.
var (
	phosphor    = lipgloss.AdaptiveColor{Light: "#007832", Dark: "#33FF66"}
	phosphorDim = lipgloss.AdaptiveColor{Light: "#5C7F6B", Dark: "#1E9944"}
	amber       = lipgloss.AdaptiveColor{Light: "#8A6D00", Dark: "#FFB000"}
)

type styles struct {
	screen     lipgloss.Style
	header     lipgloss.Style
	panel      lipgloss.Style
	panelTitle lipgloss.Style
	value      lipgloss.Style
	dim        lipgloss.Style
	source     lipgloss.Style
	statusBar  lipgloss.Style
	speaking   lipgloss.Style
	inputLabel lipgloss.Style
	transcript lipgloss.Style
}

func newStyles(mono bool) styles {
	s := styles{
		screen:     lipgloss.NewStyle().Padding(0, 1),
		header:     lipgloss.NewStyle().Bold(true),
		panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		panelTitle: lipgloss.NewStyle().Bold(true),
		value:      lipgloss.NewStyle(),
		dim:        lipgloss.NewStyle().Faint(true),
		source:     lipgloss.NewStyle().Faint(true),
		statusBar:  lipgloss.NewStyle(),
		speaking:   lipgloss.NewStyle().Bold(true),
		inputLabel: lipgloss.NewStyle().Bold(true),
		transcript: lipgloss.NewStyle(),
	}

	if mono {
		return s
	}

	s.header = s.header.Foreground(phosphor)
	s.panel = s.panel.BorderForeground(phosphorDim)
	s.panelTitle = s.panelTitle.Foreground(phosphor)
	s.value = s.value.Foreground(phosphor)
	s.dim = s.dim.Foreground(phosphorDim)
	s.source = s.source.Foreground(phosphorDim)
	s.statusBar = s.statusBar.Foreground(phosphorDim)
	s.speaking = s.speaking.Foreground(amber)
	s.inputLabel = s.inputLabel.Foreground(phosphor)
	s.transcript = s.transcript.Foreground(phosphor)
	return s
}
