// Package logging builds the zerolog loggers shared by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the log level and output format.
type Config struct {
	Level string `env:"DICEBOT_LOG_LEVEL" envDefault:"info"`
	// Console switches from JSON lines to human-readable output.
	Console bool `env:"DICEBOT_LOG_CONSOLE" envDefault:"false"`
}

// New returns a logger writing to w, tagged with the service name.
func New(w io.Writer, service string, cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if w == nil {
		w = os.Stderr
	}
	if cfg.Console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger(), nil
}

// ParseLevel reads a level name; empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return level, nil
}
