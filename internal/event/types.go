package event

import "go-lifi-sim/pkg/geom"

const (
	EmitterLocked  EventType = "EmitterLocked"  // emitter found the relay
	RelayTracking  EventType = "RelayTracking"  // relay beam landed on the receiver
	RelayLost      EventType = "RelayLost"      // receiver moved off the relay beam
	DirectLinkUp   EventType = "DirectLinkUp"
	DirectLinkDown EventType = "DirectLinkDown"
)

// Transitions lists every event type the tick pipeline emits.
var Transitions = []EventType{EmitterLocked, RelayTracking, RelayLost, DirectLinkUp, DirectLinkDown}

// Path identifies an optical path for metrics and logs.
type Path string

const (
	PathEmitterRelay   Path = "emitter_relay"
	PathRelayReceiver  Path = "relay_receiver"
	PathDirectReceiver Path = "direct_receiver"
)

// Transition is the Data carried by every transition event.
type Transition struct {
	Tick  uint64
	Path  Path
	Angle float64    // beam direction in degrees at the moment of change
	Point geom.Point // beam endpoint after the change
}

// Established reports whether the event brings a path up.
func (t EventType) Established() bool {
	return t == EmitterLocked || t == RelayTracking || t == DirectLinkUp
}
