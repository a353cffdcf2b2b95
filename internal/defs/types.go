// internal/defs/types.go
package defs

import (
	"go-lifi-sim/internal/config"
	"go-lifi-sim/pkg/geom"
)

// BoxDef places a rectangular body. For the emitter X, Y is the centre;
// for receivers it is the top-left corner.
type BoxDef struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Rect converts a top-left BoxDef to a rectangle.
func (b BoxDef) Rect() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// RelayDef places the relay by centre and radius.
type RelayDef struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Layout is the scenario: where each element sits at startup.
type Layout struct {
	Emitter        BoxDef   `json:"emitter"`
	Relay          RelayDef `json:"relay"`
	Receiver       BoxDef   `json:"receiver"`
	DirectReceiver BoxDef   `json:"directReceiver"`
}

// DefaultLayout spreads the elements over a w×h screen the way the bench
// setup is arranged: transmitter bottom left, splitter above it, the relayed
// receiver to the right and the direct receiver bottom centre.
func DefaultLayout(w, h float64) Layout {
	return Layout{
		Emitter: BoxDef{X: w * 0.25, Y: h * 0.8, W: config.EmitterWidth, H: config.EmitterHeight},
		Relay:   RelayDef{X: w * 0.35, Y: h * 0.5, Radius: config.RelayRadius},
		Receiver: BoxDef{
			X: w * 0.70, Y: h * 0.30,
			W: config.ReceiverWidth, H: config.ReceiverHeight,
		},
		DirectReceiver: BoxDef{
			X: w*0.5 - config.ReceiverWidth/2, Y: h * 0.85,
			W: config.ReceiverWidth, H: config.ReceiverHeight,
		},
	}
}
