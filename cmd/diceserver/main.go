// Package main starts the dice gRPC service process lifecycle.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	diceservercmd "github.com/louisbranch/dicebot/internal/cmd/diceserver"
	"github.com/louisbranch/dicebot/internal/platform/config"
)

func main() {
	cfg, err := diceservercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := diceservercmd.Run(ctx, cfg); err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}
