package main

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/dgnsrekt/crtcast/ui"
)

// setupLog configures the global logger. With CRTCAST_LOGFILE set, logs
// go to that file; debug level is enabled by CRTCAST_DEBUG. Without a log
// file everything is discarded so the alternate screen stays clean.
func setupLog() (func() error, error) {
	cfg, err := env.ParseAs[ui.Config]()
	if err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		log.SetOutput(f)
		log.SetReportTimestamp(true)
		if cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}
		return f.Close, nil
	}

	log.SetOutput(io.Discard)
	return func() error { return nil }, nil
}
