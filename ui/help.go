package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
)

const helpDoc = `# CRTCAST

A retro feed terminal. Weather and headlines are derived from the
committed location; narration goes to the host speech synthesizer.

## Keys

| Key     | Action                          |
|---------|---------------------------------|
| tab     | focus the location field        |
| enter   | commit the location             |
| esc     | leave the location field        |
| s       | narrate the current dashboard   |
| x       | stop narration                  |
| c       | copy the narration text         |
| ?       | toggle this help                |
| q       | quit                            |
`

// helpView renders the markdown help document for the current width.
func (d dashModel) helpView(width int) string {
	style := glamour.WithAutoStyle()
	if d.common.cfg.Mono {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		log.Error("help renderer", "error", err)
		return helpDoc
	}
	out, err := r.Render(helpDoc)
	if err != nil {
		log.Error("help render", "error", err)
		return helpDoc
	}
	return out
}
