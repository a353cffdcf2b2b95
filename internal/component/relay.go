package component

import (
	"fmt"

	"go-lifi-sim/pkg/geom"
)

// TrackingState is the relay's search state. Unlike the emitter the relay
// can drop back to scanning when the receiver moves off the beam.
type TrackingState int

const (
	RelayScanning TrackingState = iota
	RelayTracking
)

func (s TrackingState) String() string {
	switch s {
	case RelayScanning:
		return "SCANNING"
	case RelayTracking:
		return "TRACKING"
	default:
		return fmt.Sprintf("TrackingState(%d)", int(s))
	}
}

// Relay is the rotating mirror (beam splitter) between emitter and receiver.
type Relay struct {
	Pos    geom.Point
	Radius float64

	// Angle is the mirror's scan rotation in degrees, in [0, 360).
	Angle         float64
	State         TrackingState
	OutgoingAngle float64
	BeamEnd       geom.Point
	// HasBeam is false until the emitter has locked and the relay has
	// produced its first outgoing beam.
	HasBeam bool
}

// NewRelay places a relay of the given radius at pos.
func NewRelay(pos geom.Point, radius float64) (*Relay, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("relay radius %g: %w", radius, geom.ErrInvalidRect)
	}
	return &Relay{Pos: pos, Radius: radius, State: RelayScanning, BeamEnd: pos}, nil
}

// Footprint is the relay's bounding square, used for hit tests in place of
// its circular outline.
func (r *Relay) Footprint() geom.Rect {
	return geom.Rect{X: r.Pos.X - r.Radius, Y: r.Pos.Y - r.Radius, W: 2 * r.Radius, H: 2 * r.Radius}
}

// Tracking reports whether the relay currently holds the receiver.
func (r *Relay) Tracking() bool {
	return r.State == RelayTracking
}
