// Package cmd holds the startup plumbing shared by the command binaries.
package cmd

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"github.com/louisbranch/dicebot/internal/platform/config"
	"github.com/louisbranch/dicebot/internal/platform/logging"
	"github.com/louisbranch/dicebot/internal/platform/otel"
	"github.com/rs/zerolog"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// Service identifiers used for logs and telemetry.
const (
	ServiceDicebot = "dicebot"
	ServiceServer  = "diceserver"
	ServiceMCP     = "dicemcp"
)

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

type runOptions struct {
	logOutput       io.Writer
	shutdownTimeout time.Duration
}

// Option adjusts Run.
type Option func(*runOptions)

// WithLogOutput sends logs to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *runOptions) {
		o.logOutput = w
	}
}

// WithShutdownTimeout bounds how long pending spans may take to flush.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *runOptions) {
		o.shutdownTimeout = d
	}
}

// Run builds the service logger, sets up tracing, and executes run with
// both in place. The logger is also attached to the context.
func Run(ctx context.Context, service string, logCfg logging.Config, run func(context.Context, zerolog.Logger) error, opts ...Option) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	options := runOptions{logOutput: os.Stderr, shutdownTimeout: defaultOTelShutdownTimeout}
	for _, opt := range opts {
		opt(&options)
	}

	logger, err := logging.New(options.logOutput, service, logCfg)
	if err != nil {
		return err
	}
	ctx = logger.WithContext(ctx)

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), options.shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("otel shutdown")
		}
	}()
	return run(ctx, logger)
}
