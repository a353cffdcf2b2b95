// cmd/lifisim/main.go
package main

import (
	"context"
	"flag"
	"os"

	"go-lifi-sim/internal/app"
	"go-lifi-sim/internal/audio"
	"go-lifi-sim/internal/config"
	"go-lifi-sim/internal/defs"
	"go-lifi-sim/internal/logging"
	"go-lifi-sim/internal/observability"
	"go-lifi-sim/internal/state"
	"go-lifi-sim/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine  *state.StateMachine
	width, height int
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	ctx := context.Background()
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := cfg.Validate(); err != nil {
		logger.Error(ctx, "invalid configuration", logging.Err(err))
		return 2
	}
	layout, err := defs.LoadLayout(cfg.LayoutPath, cfg.Width, cfg.Height)
	if err != nil {
		logger.Error(ctx, "load layout", logging.Err(err))
		return 1
	}
	sim, err := app.NewSimulation(cfg, layout, logger)
	if err != nil {
		logger.Error(ctx, "build simulation", logging.Err(err))
		return 1
	}

	collector, err := observability.NewCollector(nil)
	if err != nil {
		logger.Error(ctx, "register metrics", logging.Err(err))
		return 1
	}
	hub := observability.NewHub(logger)
	sim.Subscribe(collector)
	sim.AddObserver(collector)
	sim.AddObserver(hub)

	if cfg.DebugAddr != "" {
		srv, err := observability.StartDebugServer(cfg.DebugAddr, observability.NewDebugMux(collector, hub), logger)
		if err != nil {
			// the simulation still runs without the debug endpoints
			logger.Warn(ctx, "debug server disabled", logging.String("addr", cfg.DebugAddr), logging.Err(err))
		} else {
			defer func() {
				if err := srv.Shutdown(ctx); err != nil {
					logger.Warn(ctx, "debug server shutdown", logging.Err(err))
				}
			}()
		}
	}

	logger.Info(ctx, "starting",
		logging.Any("headless", cfg.Headless),
		logging.Int("tps", cfg.TPS),
		logging.Float64("beam_length", cfg.BeamLength),
		logging.String("layout", cfg.LayoutPath),
	)

	if cfg.Headless {
		if cfg.Audio {
			logger.Warn(ctx, "audio is ignored in headless mode")
		}
		runHeadless(ctx, sim, cfg, logger)
		return 0
	}

	if cfg.Audio {
		sim.Subscribe(audio.NewChime(logger))
	}

	faces, err := render.LoadFaces()
	if err != nil {
		logger.Error(ctx, "load fonts", logging.Err(err))
		return 1
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewSimState(sm, sim, faces, logger, cfg.Debug))

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("LiFi Laser Link Simulator")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, width: int(cfg.Width), height: int(cfg.Height)}); err != nil {
		logger.Error(ctx, "run loop", logging.Err(err))
		return 1
	}
	logger.Info(ctx, "window closed", logging.Uint64("ticks", sim.World.Tick))
	return 0
}
