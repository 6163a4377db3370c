// Package main starts the interactive dice bot.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	dicebotcmd "github.com/louisbranch/dicebot/internal/cmd/dicebot"
	"github.com/louisbranch/dicebot/internal/platform/config"
)

func main() {
	cfg, err := dicebotcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dicebotcmd.Run(ctx, cfg); err != nil {
		config.Exitf("dicebot: %v", err)
	}
}
