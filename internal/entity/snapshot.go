package entity

import (
	"go-lifi-sim/internal/component"
	"go-lifi-sim/pkg/geom"
)

// Snapshot is an immutable copy of everything the render contract exposes
// after a tick. Observers outside the tick loop only ever see snapshots.
type Snapshot struct {
	Tick           uint64       `json:"tick"`
	Emitter        EmitterView  `json:"emitter"`
	Relay          RelayView    `json:"relay"`
	Receiver       ReceiverView `json:"receiver"`
	DirectReceiver ReceiverView `json:"directReceiver"`
	DirectLinkEnd  geom.Point   `json:"directLinkEnd"`
	Paths          Paths        `json:"paths"`
}

// Paths holds one established flag per optical path.
type Paths struct {
	EmitterRelay   bool `json:"emitterRelay"`
	RelayReceiver  bool `json:"relayReceiver"`
	DirectReceiver bool `json:"directReceiver"`
}

type EmitterView struct {
	Pos           geom.Point `json:"pos"`
	Body          geom.Rect  `json:"body"`
	Angle         float64    `json:"angle"`
	State         string     `json:"state"`
	IncomingAngle float64    `json:"incomingAngle"`
	BeamEnd       geom.Point `json:"beamEnd"`
}

type RelayView struct {
	Pos           geom.Point `json:"pos"`
	Radius        float64    `json:"radius"`
	Angle         float64    `json:"angle"`
	State         string     `json:"state"`
	OutgoingAngle float64    `json:"outgoingAngle"`
	BeamEnd       geom.Point `json:"beamEnd"`
	HasBeam       bool       `json:"hasBeam"`
}

type ReceiverView struct {
	Name    string    `json:"name"`
	Rect    geom.Rect `json:"rect"`
	Display geom.Rect `json:"display"`
	// Payload is the bit string shown on the receiver's display; empty
	// unless the display is armed.
	Payload string `json:"payload"`
}

// Snapshot copies the world. rxPayload and rx2Payload are the already gated
// display strings for the two receivers.
func (w *World) Snapshot(rxPayload, rx2Payload string) Snapshot {
	e, r := w.Emitter, w.Relay
	return Snapshot{
		Tick: w.Tick,
		Emitter: EmitterView{
			Pos:           e.Pos,
			Body:          e.Body,
			Angle:         e.Angle,
			State:         e.State.String(),
			IncomingAngle: e.IncomingAngle,
			BeamEnd:       e.BeamEnd,
		},
		Relay: RelayView{
			Pos:           r.Pos,
			Radius:        r.Radius,
			Angle:         r.Angle,
			State:         r.State.String(),
			OutgoingAngle: r.OutgoingAngle,
			BeamEnd:       r.BeamEnd,
			HasBeam:       r.HasBeam,
		},
		Receiver:       receiverView(w.Receiver, rxPayload),
		DirectReceiver: receiverView(w.DirectReceiver, rx2Payload),
		DirectLinkEnd:  w.DirectLink.End,
		Paths: Paths{
			EmitterRelay:   e.Locked(),
			RelayReceiver:  r.Tracking(),
			DirectReceiver: w.DirectLink.Established,
		},
	}
}

func receiverView(rx *component.Receiver, payload string) ReceiverView {
	return ReceiverView{Name: rx.Name, Rect: rx.Rect(), Display: rx.DisplayRect(), Payload: payload}
}

// Beams returns the optical paths in draw order: emitter to relay, relay to
// receiver, emitter to direct receiver. The relay beam is omitted until the
// relay has produced one.
func (s Snapshot) Beams() []component.Beam {
	beams := make([]component.Beam, 0, 3)
	beams = append(beams, component.Beam{
		From:        s.Emitter.Pos,
		To:          s.Emitter.BeamEnd,
		Established: s.Paths.EmitterRelay,
	})
	if s.Relay.HasBeam {
		beams = append(beams, component.Beam{
			From:        s.Relay.Pos,
			To:          s.Relay.BeamEnd,
			Established: s.Paths.RelayReceiver,
		})
	}
	beams = append(beams, component.Beam{
		From:        s.Emitter.Pos,
		To:          s.DirectLinkEnd,
		Established: s.Paths.DirectReceiver,
	})
	return beams
}
