// Package main starts the dice MCP server on stdio.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	dicemcpcmd "github.com/louisbranch/dicebot/internal/cmd/dicemcp"
	"github.com/louisbranch/dicebot/internal/platform/config"
)

func main() {
	cfg, err := dicemcpcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dicemcpcmd.Run(ctx, cfg); err != nil {
		config.Exitf("dicemcp: %v", err)
	}
}
