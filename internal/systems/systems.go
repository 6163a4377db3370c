// Package systems assembles the command handlers served by every frontend.
package systems

import (
	"fmt"

	"github.com/louisbranch/dicebot/internal/core/choice"
	"github.com/louisbranch/dicebot/internal/core/command"
	"github.com/louisbranch/dicebot/internal/core/random"
	"github.com/louisbranch/dicebot/internal/systems/chill"
	"github.com/louisbranch/dicebot/internal/systems/tables"
	"github.com/rs/zerolog"
)

// Config selects the randomness and tables a dispatcher is built with.
type Config struct {
	// Seed makes draws reproducible; zero seeds from the OS.
	Seed int64 `env:"DICEBOT_SEED" envDefault:"0"`
	// TablesPath points at a YAML tables file; empty serves the embedded tables.
	TablesPath string `env:"DICEBOT_TABLES_PATH"`
}

// Handlers returns the handlers in dispatch order. Choice comes first so
// table commands cannot shadow it.
func Handlers(reg *tables.Registry) []command.Handler {
	handlers := []command.Handler{choice.Handler{}}
	handlers = append(handlers, chill.Handlers()...)
	if reg != nil {
		handlers = append(handlers, reg.Handler())
	}
	return handlers
}

// NewDispatcher builds the dispatcher described by cfg.
func NewDispatcher(cfg Config, logger zerolog.Logger) (*command.Dispatcher, error) {
	rng, err := newRandomizer(cfg.Seed)
	if err != nil {
		return nil, err
	}

	reg := tables.Default()
	if cfg.TablesPath != "" {
		reg, err = tables.LoadFile(cfg.TablesPath)
		if err != nil {
			return nil, err
		}
	}
	logger.Info().
		Strs("tables", reg.Commands()).
		Str("path", cfg.TablesPath).
		Msg("tables loaded")

	return command.NewDispatcher(rng, Handlers(reg), command.WithLogger(logger)), nil
}

func newRandomizer(seed int64) (*random.Randomizer, error) {
	if seed != 0 {
		return random.NewSeeded(seed), nil
	}
	rng, err := random.NewFromEntropy()
	if err != nil {
		return nil, fmt.Errorf("seed randomizer: %w", err)
	}
	return rng, nil
}
