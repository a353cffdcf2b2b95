package component

import (
	"fmt"

	"go-lifi-sim/pkg/geom"
)

// AcquisitionState is the emitter's search state.
type AcquisitionState int

const (
	// EmitterScanning rotates the beam every tick looking for the relay.
	EmitterScanning AcquisitionState = iota
	// EmitterLocked is terminal: once the relay is found the emitter never
	// goes back to scanning.
	EmitterLocked
)

func (s AcquisitionState) String() string {
	switch s {
	case EmitterScanning:
		return "SCANNING"
	case EmitterLocked:
		return "LOCKED"
	default:
		return fmt.Sprintf("AcquisitionState(%d)", int(s))
	}
}

// Emitter is the transmitter. Its position is fixed for the session.
type Emitter struct {
	Pos  geom.Point
	Body geom.Rect // drawn box centred on Pos

	// Angle is the scan direction in degrees, always in [0, 360).
	Angle float64
	State AcquisitionState
	// IncomingAngle is the direction of the beam that hit the relay. Only
	// meaningful while State == EmitterLocked.
	IncomingAngle float64
	BeamEnd       geom.Point
}

// NewEmitter places an emitter with a w×h body centred on pos.
func NewEmitter(pos geom.Point, w, h, beamLength float64) (*Emitter, error) {
	body, err := geom.NewRect(pos.X-w/2, pos.Y-h/2, w, h)
	if err != nil {
		return nil, fmt.Errorf("emitter body: %w", err)
	}
	return &Emitter{
		Pos:     pos,
		Body:    body,
		State:   EmitterScanning,
		BeamEnd: geom.RayEndpoint(pos, 0, beamLength),
	}, nil
}

// Locked reports whether the emitter has acquired the relay.
func (e *Emitter) Locked() bool {
	return e.State == EmitterLocked
}
