package system

import (
	"go-lifi-sim/internal/component"
	"go-lifi-sim/internal/entity"
	"go-lifi-sim/internal/event"
	"go-lifi-sim/pkg/geom"
)

// StepRelay advances the relay by one tick and returns its previous state.
// It does nothing until the emitter has locked.
//
// While scanning (or when the receiver has moved off the last impact point)
// the mirror turns by step and the outgoing beam follows the mirror law. A
// tracking relay whose impact point is still on the receiver aims straight
// at the receiver's centre instead, without turning.
func StepRelay(r *component.Relay, e *component.Emitter, rx Target, beamLength, step float64) component.TrackingState {
	prev := r.State
	if !e.Locked() {
		return prev
	}

	if r.State == component.RelayScanning || !rx.Covers(r.BeamEnd) {
		r.Angle = geom.WrapDegrees(r.Angle + step)
		r.OutgoingAngle = geom.MirrorAngle(r.Angle, e.IncomingAngle)
		candidate := geom.RayEndpoint(r.Pos, r.OutgoingAngle, beamLength)
		if hit, ok := rx.IntersectionWith(r.Pos, candidate); ok {
			r.State = component.RelayTracking
			r.BeamEnd = hit
		} else {
			r.State = component.RelayScanning
			r.BeamEnd = candidate
		}
	} else {
		center := rx.Center()
		if hit, ok := rx.IntersectionWith(r.Pos, center); ok {
			r.OutgoingAngle = geom.WrapDegrees(geom.AngleTo(r.Pos, center))
			r.BeamEnd = hit
		} else {
			// Scan angle is left alone; scanning resumes next tick.
			r.State = component.RelayScanning
		}
	}
	r.HasBeam = true
	return prev
}

// TrackingSystem drives the relay each tick.
type TrackingSystem struct {
	world      *entity.World
	step       float64
	dispatcher *event.Dispatcher
}

func NewTrackingSystem(world *entity.World, step float64, dispatcher *event.Dispatcher) *TrackingSystem {
	return &TrackingSystem{world: world, step: step, dispatcher: dispatcher}
}

func (s *TrackingSystem) Update() {
	r := s.world.Relay
	prev := StepRelay(r, s.world.Emitter, s.world.Receiver, s.world.BeamLength, s.step)
	if prev == r.State {
		return
	}

	typ := event.RelayLost
	if r.Tracking() {
		typ = event.RelayTracking
	}
	s.dispatcher.Dispatch(event.Event{
		Type: typ,
		Data: event.Transition{
			Tick:  s.world.Tick,
			Path:  event.PathRelayReceiver,
			Angle: r.OutgoingAngle,
			Point: r.BeamEnd,
		},
	})
}
