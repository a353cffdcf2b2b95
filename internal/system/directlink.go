package system

import (
	"go-lifi-sim/internal/component"
	"go-lifi-sim/internal/entity"
	"go-lifi-sim/internal/event"
	"go-lifi-sim/pkg/geom"
)

// EvaluateDirectLink checks the unobstructed path from origin to rx. It
// depends only on origin and the receiver, never on emitter or relay state.
func EvaluateDirectLink(origin geom.Point, rx Target, beamLength float64) component.DirectLink {
	end := geom.BoundedRayToward(origin, rx.Center(), beamLength)
	return component.DirectLink{End: end, Established: rx.ContainsPoint(end)}
}

// DirectLinkSystem re-evaluates the emitter to second receiver path each tick.
type DirectLinkSystem struct {
	world      *entity.World
	dispatcher *event.Dispatcher
}

func NewDirectLinkSystem(world *entity.World, dispatcher *event.Dispatcher) *DirectLinkSystem {
	return &DirectLinkSystem{world: world, dispatcher: dispatcher}
}

func (s *DirectLinkSystem) Update() {
	prev := s.world.DirectLink.Established
	link := EvaluateDirectLink(s.world.Emitter.Pos, s.world.DirectReceiver, s.world.BeamLength)
	s.world.DirectLink = link
	if link.Established == prev {
		return
	}

	typ := event.DirectLinkDown
	if link.Established {
		typ = event.DirectLinkUp
	}
	s.dispatcher.Dispatch(event.Event{
		Type: typ,
		Data: event.Transition{
			Tick:  s.world.Tick,
			Path:  event.PathDirectReceiver,
			Angle: geom.WrapDegrees(geom.AngleTo(s.world.Emitter.Pos, link.End)),
			Point: link.End,
		},
	})
}
