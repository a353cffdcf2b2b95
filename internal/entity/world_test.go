package entity

import (
	"testing"

	"go-lifi-sim/internal/defs"
	"go-lifi-sim/pkg/geom"
)

var bounds = geom.Rect{W: 900, H: 600}

func TestNewWorldFromDefaultLayout(t *testing.T) {
	w, err := NewWorld(defs.DefaultLayout(900, 600), bounds, 1000)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if w.Emitter.Pos != geom.Pt(225, 480) {
		t.Errorf("emitter at %v", w.Emitter.Pos)
	}
	if w.Receiver.Name != "RX" || w.DirectReceiver.Name != "RX2" {
		t.Errorf("receiver names %q %q", w.Receiver.Name, w.DirectReceiver.Name)
	}
	if beams := w.Beams(); len(beams) != 2 {
		t.Errorf("relay beam drawn before relay is active: %d beams", len(beams))
	}
}

func TestNewWorldRejectsBadGeometry(t *testing.T) {
	layout := defs.DefaultLayout(900, 600)
	layout.Receiver.W = 0
	if _, err := NewWorld(layout, bounds, 1000); err == nil {
		t.Error("zero-width receiver accepted")
	}

	layout = defs.DefaultLayout(900, 600)
	layout.Relay.Radius = -3
	if _, err := NewWorld(layout, bounds, 1000); err == nil {
		t.Error("negative relay radius accepted")
	}

	if _, err := NewWorld(defs.DefaultLayout(900, 600), geom.Rect{}, 1000); err == nil {
		t.Error("empty bounds accepted")
	}
}

func TestSnapshotCopiesState(t *testing.T) {
	w, err := NewWorld(defs.DefaultLayout(900, 600), bounds, 1000)
	if err != nil {
		t.Fatal(err)
	}
	w.Tick = 7
	w.Relay.HasBeam = true
	w.DirectLink.Established = true

	s := w.Snapshot("10101010", "")
	if s.Tick != 7 || s.Emitter.State != "SCANNING" || s.Relay.State != "SCANNING" {
		t.Errorf("snapshot header = %+v", s)
	}
	if s.Paths.EmitterRelay || s.Paths.RelayReceiver || !s.Paths.DirectReceiver {
		t.Errorf("paths = %+v", s.Paths)
	}
	if s.Receiver.Payload != "10101010" || s.DirectReceiver.Payload != "" {
		t.Errorf("payloads = %q %q", s.Receiver.Payload, s.DirectReceiver.Payload)
	}

	w.Receiver.Translate(-10, 0)
	if s.Receiver.Rect == w.Receiver.Rect() {
		t.Error("snapshot aliases live receiver state")
	}
	if len(w.Beams()) != 3 {
		t.Errorf("expected 3 beams once relay has a beam")
	}
}

func TestSnapshotCarriesDrawingGeometry(t *testing.T) {
	w, err := NewWorld(defs.DefaultLayout(900, 600), bounds, 1000)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	snap := w.Snapshot("", "")
	if snap.Relay.Radius != 30 {
		t.Errorf("relay radius %v", snap.Relay.Radius)
	}
	if snap.Emitter.Body != w.Emitter.Body {
		t.Errorf("emitter body %+v, want %+v", snap.Emitter.Body, w.Emitter.Body)
	}
	if snap.Receiver.Display != w.Receiver.DisplayRect() {
		t.Errorf("display %+v, want %+v", snap.Receiver.Display, w.Receiver.DisplayRect())
	}
}
