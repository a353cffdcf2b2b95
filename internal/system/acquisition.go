package system

import (
	"go-lifi-sim/internal/component"
	"go-lifi-sim/internal/entity"
	"go-lifi-sim/internal/event"
	"go-lifi-sim/pkg/geom"
)

// StepEmitter advances the emitter by one tick against relay and reports
// whether it locked on this tick.
//
// A locked emitter only re-pins its beam to the relay centre; there is no
// transition back to scanning.
func StepEmitter(e *component.Emitter, relay *component.Relay, beamLength, step float64) bool {
	if e.Locked() {
		e.BeamEnd = relay.Pos
		return false
	}

	end := geom.BoundedRayToward(e.Pos, relay.Pos, beamLength)
	if relay.Footprint().Contains(end) {
		e.State = component.EmitterLocked
		e.IncomingAngle = geom.AngleTo(e.Pos, end)
		e.BeamEnd = relay.Pos
		return true
	}

	e.Angle = geom.WrapDegrees(e.Angle + step)
	e.BeamEnd = geom.RayEndpoint(e.Pos, e.Angle, beamLength)
	return false
}

// AcquisitionSystem drives the emitter each tick.
type AcquisitionSystem struct {
	world      *entity.World
	step       float64
	dispatcher *event.Dispatcher
}

func NewAcquisitionSystem(world *entity.World, step float64, dispatcher *event.Dispatcher) *AcquisitionSystem {
	return &AcquisitionSystem{world: world, step: step, dispatcher: dispatcher}
}

func (s *AcquisitionSystem) Update() {
	e := s.world.Emitter
	if !StepEmitter(e, s.world.Relay, s.world.BeamLength, s.step) {
		return
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.EmitterLocked,
		Data: event.Transition{
			Tick:  s.world.Tick,
			Path:  event.PathEmitterRelay,
			Angle: e.IncomingAngle,
			Point: e.BeamEnd,
		},
	})
}
