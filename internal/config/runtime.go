package config

import (
	"errors"
	"flag"
	"fmt"
)

// Config holds the tunables the simulation boundary supplies. Defaults come
// from the constants in config.go; flags override them.
type Config struct {
	Width, Height float64
	BeamLength    float64
	EmitterStep   float64
	RelayStep     float64
	MoveStep      float64
	TPS           int

	// LayoutPath points at an optional JSON scenario file.
	LayoutPath string
	DebugAddr  string

	Headless bool
	Ticks    int
	Wander   bool
	Seed     int64

	Audio bool
	Debug bool

	LogLevel  string
	LogFormat string
}

// Default returns the configuration the default layout is tuned for.
func Default() Config {
	return Config{
		Width:       ScreenWidth,
		Height:      ScreenHeight,
		BeamLength:  BeamLength,
		EmitterStep: EmitterStep,
		RelayStep:   RelayStep,
		MoveStep:    ReceiverMoveStep,
		TPS:         TicksPerSecond,
		DebugAddr:   DebugAddr,
		Ticks:       600,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// RegisterFlags binds every tunable to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.BeamLength, "beam-length", c.BeamLength, "maximum beam length in pixels")
	fs.Float64Var(&c.EmitterStep, "emitter-step", c.EmitterStep, "emitter scan step in degrees per tick")
	fs.Float64Var(&c.RelayStep, "relay-step", c.RelayStep, "relay scan step in degrees per tick (must exceed emitter-step)")
	fs.Float64Var(&c.MoveStep, "move-step", c.MoveStep, "receiver movement per tick in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")

	fs.StringVar(&c.LayoutPath, "layout", c.LayoutPath, "JSON file overriding the default scenario layout")
	// Empty disables the debug server.
	fs.StringVar(&c.DebugAddr, "debug-addr", c.DebugAddr, "address for pprof, /metrics and the /ws telemetry feed (empty disables)")

	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a window")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "ticks to run in headless mode (0 runs until interrupted)")
	fs.BoolVar(&c.Wander, "wander", c.Wander, "randomly move the receiver in headless mode")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -wander (0 uses the clock)")

	fs.BoolVar(&c.Audio, "audio", c.Audio, "play a chime when a path is established")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show the TPS/FPS overlay")

	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

var (
	ErrBounds     = errors.New("config: world bounds must be positive")
	ErrBeamLength = errors.New("config: beam length must be positive")
	ErrSteps      = errors.New("config: scan steps must be positive and relay-step must exceed emitter-step")
	ErrTPS        = errors.New("config: tps must be positive")
)

// Validate checks the invariants the simulation relies on.
func (c Config) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: %gx%g", ErrBounds, c.Width, c.Height)
	}
	if !(c.BeamLength > 0) {
		return fmt.Errorf("%w: %g", ErrBeamLength, c.BeamLength)
	}
	if !(c.EmitterStep > 0) || !(c.RelayStep > c.EmitterStep) {
		return fmt.Errorf("%w: emitter=%g relay=%g", ErrSteps, c.EmitterStep, c.RelayStep)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: %d", ErrTPS, c.TPS)
	}
	if c.MoveStep < 0 {
		return fmt.Errorf("config: move-step must not be negative: %g", c.MoveStep)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("config: ticks must not be negative: %d", c.Ticks)
	}
	return nil
}
