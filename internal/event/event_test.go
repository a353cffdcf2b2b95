package event

import "testing"

type recorder struct{ got []EventType }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatchOnlyReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	locked := &recorder{}
	all := &recorder{}
	d.Subscribe(EmitterLocked, locked)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: RelayLost})
	d.Dispatch(Event{Type: EmitterLocked})

	if len(locked.got) != 1 || locked.got[0] != EmitterLocked {
		t.Errorf("locked listener got %v", locked.got)
	}
	if len(all.got) != 2 || all.got[0] != RelayLost || all.got[1] != EmitterLocked {
		t.Errorf("SubscribeAll listener got %v", all.got)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(DirectLinkUp, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: DirectLinkUp})
	d.Dispatch(Event{Type: DirectLinkDown})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestEstablished(t *testing.T) {
	for _, tc := range []struct {
		t    EventType
		want bool
	}{{EmitterLocked, true}, {RelayTracking, true}, {DirectLinkUp, true}, {RelayLost, false}, {DirectLinkDown, false}} {
		if got := tc.t.Established(); got != tc.want {
			t.Errorf("%s.Established() = %v, want %v", tc.t, got, tc.want)
		}
	}
}
