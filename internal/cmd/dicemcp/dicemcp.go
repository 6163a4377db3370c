// Package dicemcp parses MCP command flags and serves the dice tools on stdio.
package dicemcp

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/dicebot/internal/platform/cmd"
	"github.com/louisbranch/dicebot/internal/platform/logging"
	mcpservice "github.com/louisbranch/dicebot/internal/services/mcp"
	"github.com/louisbranch/dicebot/internal/systems"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// Config holds MCP command configuration.
type Config struct {
	Systems systems.Config
	Log     logging.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Systems.Seed, "seed", cfg.Systems.Seed, "Random seed (0 seeds from the OS)")
	fs.StringVar(&cfg.Systems.TablesPath, "tables", cfg.Systems.TablesPath, "YAML tables file (empty serves the built-in tables)")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the dice tools over stdio. Logs go to stderr since stdout
// carries the protocol.
func Run(ctx context.Context, cfg Config) error {
	return run(ctx, cfg, &mcp.StdioTransport{})
}

func run(ctx context.Context, cfg Config, transport mcp.Transport) error {
	return entrypoint.Run(ctx, entrypoint.ServiceMCP, cfg.Log, func(ctx context.Context, logger zerolog.Logger) error {
		dispatcher, err := systems.NewDispatcher(cfg.Systems, logger)
		if err != nil {
			return err
		}
		logger.Info().Msg("serving MCP tools")
		return mcpservice.Run(ctx, dispatcher, transport)
	})
}
