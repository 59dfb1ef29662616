package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/25x8/checkdigit/internal/checkdigit/config"
)

// newLogger builds the application logger. Logs go to w so stdout stays reserved for results.
func newLogger(cfg *config.Config, w io.Writer) (zerolog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return zerolog.Logger{}, err
	}

	var output io.Writer = w
	if cfg.LogOutput == config.LogOutputConsole {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stderr}
	}

	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}
