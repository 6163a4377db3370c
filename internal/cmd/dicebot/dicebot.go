// Package dicebot runs the interactive command loop.
package dicebot

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/louisbranch/dicebot/internal/core/result"
	entrypoint "github.com/louisbranch/dicebot/internal/platform/cmd"
	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
	platformgrpc "github.com/louisbranch/dicebot/internal/platform/grpc"
	"github.com/louisbranch/dicebot/internal/platform/logging"
	dicegrpc "github.com/louisbranch/dicebot/internal/services/dice/api/grpc"
	"github.com/louisbranch/dicebot/internal/systems"
	"github.com/rs/zerolog"
)

const dialTimeout = 5 * time.Second

// Config holds dicebot command configuration.
type Config struct {
	// Addr evaluates through a dice server; empty evaluates in-process.
	Addr    string `env:"DICEBOT_SERVER_ADDR"`
	NoColor bool   `env:"NO_COLOR"`
	Systems systems.Config
	Log     logging.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Dice server address (empty evaluates locally)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	fs.Int64Var(&cfg.Systems.Seed, "seed", cfg.Systems.Seed, "Random seed (0 seeds from the OS)")
	fs.StringVar(&cfg.Systems.TablesPath, "tables", cfg.Systems.TablesPath, "YAML tables file (empty serves the built-in tables)")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run reads commands from stdin and writes results to stdout until EOF or
// ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.Run(ctx, entrypoint.ServiceDicebot, cfg.Log, func(ctx context.Context, logger zerolog.Logger) error {
		eval, closeFn, err := newEvaluator(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeFn()
		return newREPL(eval, cfg.NoColor).serve(ctx, os.Stdin, os.Stdout)
	})
}

// evaluator hides whether commands run locally or on a dice server.
// Unrecognized text reports false with a nil error.
type evaluator interface {
	evaluate(ctx context.Context, text string) (result.Result, bool, error)
}

type localEvaluator struct {
	eval dicegrpc.Evaluator
}

func (l localEvaluator) evaluate(ctx context.Context, text string) (result.Result, bool, error) {
	res, ok := l.eval.Eval(ctx, text)
	return res, ok, nil
}

type remoteEvaluator struct {
	client *dicegrpc.Client
}

func (r remoteEvaluator) evaluate(ctx context.Context, text string) (result.Result, bool, error) {
	res, err := r.client.Evaluate(ctx, text)
	if err != nil {
		if dicegrpc.Reason(err) == string(apperrors.CodeCommandNotRecognized) {
			return result.Result{}, false, nil
		}
		return result.Result{}, false, err
	}
	return res, true, nil
}

func newEvaluator(ctx context.Context, cfg Config, logger zerolog.Logger) (evaluator, func(), error) {
	if cfg.Addr == "" {
		dispatcher, err := systems.NewDispatcher(cfg.Systems, logger)
		if err != nil {
			return nil, nil, err
		}
		return localEvaluator{eval: dispatcher}, func() {}, nil
	}

	conn, err := platformgrpc.DialWithHealth(ctx, cfg.Addr, dialTimeout, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Str("addr", cfg.Addr).Msg("evaluating through dice server")
	return remoteEvaluator{client: dicegrpc.NewClient(conn)}, func() { _ = conn.Close() }, nil
}
