package app

import (
	"context"
	"fmt"

	"go-lifi-sim/internal/config"
	"go-lifi-sim/internal/defs"
	"go-lifi-sim/internal/entity"
	"go-lifi-sim/internal/event"
	"go-lifi-sim/internal/logging"
	"go-lifi-sim/internal/system"
	"go-lifi-sim/pkg/geom"
)

// Observer receives the snapshot produced by every tick. Observers run on
// the tick goroutine and must not block.
type Observer interface {
	Observe(snap entity.Snapshot)
}

// Simulation owns the world and runs the tick pipeline:
// emitter acquisition, then relay tracking, then the direct link.
type Simulation struct {
	World      *entity.World
	Payload    *Payload
	Dispatcher *event.Dispatcher

	AcquisitionSystem *system.AcquisitionSystem
	TrackingSystem    *system.TrackingSystem
	DirectLinkSystem  *system.DirectLinkSystem

	cfg       config.Config
	layout    defs.Layout
	logger    logging.Logger
	observers []Observer
}

// NewSimulation validates cfg and builds the initial world from layout.
func NewSimulation(cfg config.Config, layout defs.Layout, logger logging.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Noop()
	}
	s := &Simulation{
		Payload:    NewPayload(config.PayloadBits),
		Dispatcher: event.NewDispatcher(),
		cfg:        cfg,
		layout:     layout,
		logger:     logger,
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	s.Dispatcher.SubscribeAll(&TransitionLogger{logger: logger})
	return s, nil
}

func (s *Simulation) build() error {
	bounds := geom.Rect{W: s.cfg.Width, H: s.cfg.Height}
	world, err := entity.NewWorld(s.layout, bounds, s.cfg.BeamLength)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	s.World = world
	s.AcquisitionSystem = system.NewAcquisitionSystem(world, s.cfg.EmitterStep, s.Dispatcher)
	s.TrackingSystem = system.NewTrackingSystem(world, s.cfg.RelayStep, s.Dispatcher)
	s.DirectLinkSystem = system.NewDirectLinkSystem(world, s.Dispatcher)
	return nil
}

// AddObserver registers o to receive a snapshot after every tick.
func (s *Simulation) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Subscribe registers l for every path transition event.
func (s *Simulation) Subscribe(l event.Listener) {
	s.Dispatcher.SubscribeAll(l)
}

// Step runs exactly one tick. The relay always sees the emitter state this
// tick produced, never last tick's.
func (s *Simulation) Step() entity.Snapshot {
	s.World.Tick++
	s.AcquisitionSystem.Update()
	s.TrackingSystem.Update()
	s.DirectLinkSystem.Update()

	snap := s.Snapshot()
	for _, o := range s.observers {
		o.Observe(snap)
	}
	return snap
}

// MoveReceiver applies one movement command to the relayed receiver. It is
// meant to be called between ticks.
func (s *Simulation) MoveReceiver(dx, dy float64) {
	s.World.Receiver.Translate(dx, dy)
}

// Reset rebuilds the world from the layout. The payload is kept.
func (s *Simulation) Reset() error {
	if err := s.build(); err != nil {
		return err
	}
	s.logger.Info(context.Background(), "simulation reset")
	return nil
}

// Snapshot copies the current state, including the gated display payloads.
func (s *Simulation) Snapshot() entity.Snapshot {
	w := s.World
	return w.Snapshot(
		s.Payload.Gate(w.Relay.Tracking()),
		s.Payload.Gate(w.DirectLink.Established),
	)
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.Config {
	return s.cfg
}
