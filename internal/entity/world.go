package entity

import (
	"fmt"

	"go-lifi-sim/internal/component"
	"go-lifi-sim/internal/defs"
	"go-lifi-sim/pkg/geom"
)

// World is the whole simulation state for one session. The tick pipeline
// passes it through each system in order; each system writes only the
// fields of the element it drives.
type World struct {
	Tick       uint64
	Bounds     geom.Rect
	BeamLength float64

	Emitter        *component.Emitter
	Relay          *component.Relay
	Receiver       *component.Receiver
	DirectReceiver *component.Receiver
	DirectLink     component.DirectLink
}

// NewWorld builds the initial state from a layout. Invalid geometry in the
// layout is rejected here rather than surfacing mid-run.
func NewWorld(layout defs.Layout, bounds geom.Rect, beamLength float64) (*World, error) {
	if _, err := geom.NewRect(bounds.X, bounds.Y, bounds.W, bounds.H); err != nil {
		return nil, fmt.Errorf("world bounds: %w", err)
	}

	emitter, err := component.NewEmitter(geom.Pt(layout.Emitter.X, layout.Emitter.Y), layout.Emitter.W, layout.Emitter.H, beamLength)
	if err != nil {
		return nil, err
	}
	relay, err := component.NewRelay(geom.Pt(layout.Relay.X, layout.Relay.Y), layout.Relay.Radius)
	if err != nil {
		return nil, err
	}
	rx, err := component.NewReceiver("RX", layout.Receiver.Rect(), bounds)
	if err != nil {
		return nil, err
	}
	rx2, err := component.NewReceiver("RX2", layout.DirectReceiver.Rect(), bounds)
	if err != nil {
		return nil, err
	}

	return &World{
		Bounds:         bounds,
		BeamLength:     beamLength,
		Emitter:        emitter,
		Relay:          relay,
		Receiver:       rx,
		DirectReceiver: rx2,
		DirectLink:     component.DirectLink{End: emitter.Pos},
	}, nil
}

// Beams returns the optical paths of the current state, see Snapshot.Beams.
func (w *World) Beams() []component.Beam {
	return w.Snapshot("", "").Beams()
}
