package remote

import (
	"fmt"
	"testing"
)

func TestHubFanOut(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()

	state := RadioState{StationName: "Truckers.FM", Volume: 0.8, Playing: true}
	h.Publish(state)

	for name, sub := range map[string]*Subscriber{"a": a, "b": b} {
		select {
		case got := <-sub.C():
			if got != state {
				t.Errorf("subscriber %s got %+v, want %+v", name, got, state)
			}
		default:
			t.Errorf("subscriber %s received nothing", name)
		}
	}
}

func TestHubNoReplayForLateSubscribers(t *testing.T) {
	h := NewHub()
	h.Publish(RadioState{StationName: "early"})

	sub := h.Subscribe()
	select {
	case got := <-sub.C():
		t.Fatalf("late subscriber saw replayed state %+v", got)
	default:
	}
}

func TestHubDropsOldestForSlowSubscriber(t *testing.T) {
	h := NewHub()
	slow := h.Subscribe()

	total := subscriberBuffer + 5
	for i := 0; i < total; i++ {
		h.Publish(RadioState{StationName: fmt.Sprintf("station-%d", i)})
	}

	var received []RadioState
	for {
		select {
		case st := <-slow.C():
			received = append(received, st)
			continue
		default:
		}
		break
	}

	if len(received) != subscriberBuffer {
		t.Fatalf("received %d snapshots, want %d", len(received), subscriberBuffer)
	}
	// The oldest publishes were dropped; the newest survives at the tail.
	if got, want := received[len(received)-1].StationName, fmt.Sprintf("station-%d", total-1); got != want {
		t.Errorf("newest snapshot = %q, want %q", got, want)
	}
	if got := received[0].StationName; got == "station-0" {
		t.Error("oldest snapshot should have been dropped")
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe()

	h.Unsubscribe(sub)
	if _, ok := <-sub.C(); ok {
		t.Fatal("channel should be closed after Unsubscribe")
	}

	// Safe to call again, and publishing must not panic.
	h.Unsubscribe(sub)
	h.Publish(RadioState{})
}
