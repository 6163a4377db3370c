// Package diceserver parses dice server flags and launches the service.
package diceserver

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/dicebot/internal/platform/cmd"
	"github.com/louisbranch/dicebot/internal/platform/logging"
	server "github.com/louisbranch/dicebot/internal/services/dice/app"
	"github.com/louisbranch/dicebot/internal/systems"
	"github.com/rs/zerolog"
)

// Config holds dice server command configuration.
type Config struct {
	Port    int `env:"DICEBOT_SERVER_PORT" envDefault:"8095"`
	Systems systems.Config
	Log     logging.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The dice gRPC server port")
	fs.Int64Var(&cfg.Systems.Seed, "seed", cfg.Systems.Seed, "Random seed (0 seeds from the OS)")
	fs.StringVar(&cfg.Systems.TablesPath, "tables", cfg.Systems.TablesPath, "YAML tables file (empty serves the built-in tables)")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the dice gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.Run(ctx, entrypoint.ServiceServer, cfg.Log, func(ctx context.Context, logger zerolog.Logger) error {
		return server.Run(ctx, cfg.Port, cfg.Systems, logger)
	})
}
