// cmd/lifisim/headless.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-lifi-sim/internal/app"
	"go-lifi-sim/internal/config"
	"go-lifi-sim/internal/logging"
	"go-lifi-sim/internal/utils"
)

// runHeadless drives the simulation at cfg.TPS without a window until the
// tick budget is spent or SIGINT/SIGTERM arrives.
func runHeadless(ctx context.Context, sim *app.Simulation, cfg config.Config, logger logging.Logger) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := app.HeadlessOptions{Ticks: cfg.Ticks, TPS: cfg.TPS}
	if cfg.Wander {
		opts.Wander = utils.NewPRNGService(cfg.Seed)
		logger.Info(ctx, "receiver wander enabled", logging.Any("seed", cfg.Seed))
	}
	app.RunHeadless(ctx, sim, opts)
}
