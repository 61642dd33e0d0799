package ui

// Config contains TUI-specific configuration.
type Config struct {
	// Location committed at startup, as if typed and submitted.
	Location string

	// Engine selects the speech backend: auto, say, espeak-ng, espeak,
	// flite, or off.
	Engine string

	// SkipBoot jumps straight to the dashboard without the boot reveal.
	SkipBoot bool

	// Mono disables the phosphor color scheme.
	Mono bool `env:"CRTCAST_MONO"`

	// MaxWidth caps the dashboard width; zero means fill the terminal.
	MaxWidth uint

	HomeDir string `env:"HOME"`

	// Debugging stuff
	Debug   bool   `env:"CRTCAST_DEBUG"`
	LogFile string `env:"CRTCAST_LOGFILE"`
}
