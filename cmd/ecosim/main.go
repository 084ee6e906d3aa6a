package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ecosim/internal/app"
	"ecosim/internal/server"
	"ecosim/internal/sims/ecosystem"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := cfg.Logger(os.Stderr)

	world := ecosystem.NewWithConfig(ecosystem.FromMap(cfg.SimOptions()))
	world.Reset(0)
	logger.Info("world ready",
		"seed", world.Config().Seed,
		"scheduler", world.Config().Scheduler,
		"population", world.Population())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(world, logger).ListenAndServe(ctx, cfg.Addr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
