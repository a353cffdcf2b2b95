package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go-lifi-sim/internal/component"
	"go-lifi-sim/internal/config"
	"go-lifi-sim/internal/defs"
	"go-lifi-sim/internal/entity"
	"go-lifi-sim/internal/event"
	"go-lifi-sim/internal/logging"
	"go-lifi-sim/internal/utils"
)

func newTestSimulation(t *testing.T, logger logging.Logger) *Simulation {
	t.Helper()
	cfg := config.Default()
	sim, err := NewSimulation(cfg, defs.DefaultLayout(cfg.Width, cfg.Height), logger)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return sim
}

type countingObserver struct {
	ticks []uint64
}

func (o *countingObserver) Observe(snap entity.Snapshot) {
	o.ticks = append(o.ticks, snap.Tick)
}

func TestNewSimulationRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.RelayStep = cfg.EmitterStep
	if _, err := NewSimulation(cfg, defs.DefaultLayout(cfg.Width, cfg.Height), nil); err == nil {
		t.Fatal("expected error for relay-step not exceeding emitter-step")
	}
}

func TestDefaultLayoutEstablishesAllPaths(t *testing.T) {
	sim := newTestSimulation(t, nil)

	snap := sim.Step()
	if !snap.Paths.EmitterRelay {
		t.Fatal("emitter should lock on the first tick in the default layout")
	}
	if !snap.Paths.DirectReceiver {
		t.Fatal("direct link should be established on the first tick")
	}
	if snap.Paths.RelayReceiver {
		t.Fatal("relay should still be scanning after one tick")
	}

	for i := 0; i < 40; i++ {
		snap = sim.Step()
	}
	if !snap.Paths.RelayReceiver {
		t.Fatalf("relay never tracked the receiver, state %s", snap.Relay.State)
	}
	if snap.Tick != 41 {
		t.Fatalf("Tick = %d, want 41", snap.Tick)
	}
}

func TestSnapshotGatesPayload(t *testing.T) {
	sim := newTestSimulation(t, nil)
	for i := 0; i < 40; i++ {
		sim.Step()
	}
	_ = sim.Payload.AppendString("1010")
	snap := sim.Snapshot()
	if snap.Receiver.Payload != "" || snap.DirectReceiver.Payload != "" {
		t.Fatalf("partial payload displayed: %+v %+v", snap.Receiver, snap.DirectReceiver)
	}
	_ = sim.Payload.AppendString("1010")
	snap = sim.Snapshot()
	if snap.Receiver.Payload != "10101010" || snap.DirectReceiver.Payload != "10101010" {
		t.Fatalf("complete payload not displayed: %q %q", snap.Receiver.Payload, snap.DirectReceiver.Payload)
	}
}

func TestStepPublishesToObservers(t *testing.T) {
	sim := newTestSimulation(t, nil)
	obs := &countingObserver{}
	sim.AddObserver(obs)
	for i := 0; i < 3; i++ {
		sim.Step()
	}
	if len(obs.ticks) != 3 || obs.ticks[0] != 1 || obs.ticks[2] != 3 {
		t.Fatalf("observer saw ticks %v, want [1 2 3]", obs.ticks)
	}
}

func TestMoveReceiverStaysInBounds(t *testing.T) {
	sim := newTestSimulation(t, nil)
	sim.MoveReceiver(-5000, 5000)
	r := sim.World.Receiver.Rect()
	if r.X != 0 || r.Bottom() != config.ScreenHeight {
		t.Fatalf("receiver not clamped: %+v", r)
	}
}

func TestResetRestoresLayout(t *testing.T) {
	sim := newTestSimulation(t, nil)
	var got []event.EventType
	sim.Subscribe(event.ListenerFunc(func(e event.Event) { got = append(got, e.Type) }))
	for i := 0; i < 10; i++ {
		sim.Step()
	}
	sim.MoveReceiver(50, 0)
	if err := sim.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	snap := sim.Snapshot()
	if snap.Tick != 0 || snap.Emitter.State != component.EmitterScanning.String() {
		t.Fatalf("world not rebuilt: tick=%d emitter=%s", snap.Tick, snap.Emitter.State)
	}
	want := defs.DefaultLayout(config.ScreenWidth, config.ScreenHeight).Receiver.Rect()
	if snap.Receiver.Rect != want {
		t.Fatalf("receiver at %+v, want %+v", snap.Receiver.Rect, want)
	}

	got = nil
	sim.Step()
	if len(got) == 0 {
		t.Fatal("listeners lost across reset")
	}
}

func TestTransitionLoggerWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: "info", Format: "json", Output: &buf})
	sim := newTestSimulation(t, logger)
	sim.Step()

	out := buf.String()
	for _, want := range []string{`"msg":"path established"`, `"path":"emitter_relay"`, `"path":"direct_receiver"`, `"tick":1`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	sim := newTestSimulation(t, nil)
	snap := RunHeadless(context.Background(), sim, HeadlessOptions{
		Ticks:  25,
		Wander: utils.NewPRNGService(3),
	})
	if snap.Tick != 25 {
		t.Fatalf("Tick = %d, want 25", snap.Tick)
	}
	r := sim.World.Receiver.Rect()
	if r.X < 0 || r.Y < 0 || r.Right() > config.ScreenWidth || r.Bottom() > config.ScreenHeight {
		t.Fatalf("wander left the world: %+v", r)
	}
}

func TestRunHeadlessHonoursCancellation(t *testing.T) {
	sim := newTestSimulation(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	snap := RunHeadless(ctx, sim, HeadlessOptions{Ticks: 0, TPS: 1000})
	if snap.Tick != 0 {
		t.Fatalf("cancelled run stepped %d ticks", snap.Tick)
	}
}
