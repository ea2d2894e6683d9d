package remote

import "sync"

// Per-subscriber buffer. A session that falls further behind than this
// starts losing its oldest undelivered snapshots.
const subscriberBuffer = 16

// Hub fans out state snapshots to every connected session. Each subscriber
// owns a private buffered channel, so a slow or vanished client never blocks
// the publisher or its peers. When a subscriber's buffer fills, the oldest
// buffered snapshot is dropped in favour of the new one; snapshots replace
// each other, so only the most recent value matters to the client.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscriber]bool
}

// Subscriber is a private receive handle into the hub. It sees every publish
// from the moment it was created; earlier publishes are not replayed.
type Subscriber struct {
	ch chan RadioState
}

// C returns the channel state snapshots arrive on. It is closed when the
// subscriber is unsubscribed.
func (s *Subscriber) C() <-chan RadioState {
	return s.ch
}

// NewHub creates a hub with no subscribers.
func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]bool)}
}

// Subscribe registers a new delivery handle.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{ch: make(chan RadioState, subscriberBuffer)}
	h.mu.Lock()
	h.subs[sub] = true
	h.mu.Unlock()
	return sub
}

// Unsubscribe removes the handle and closes its channel. Safe to call more
// than once.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if h.subs[sub] {
		delete(h.subs, sub)
		close(sub.ch)
	}
	h.mu.Unlock()
}

// Publish delivers state to all live subscribers without ever blocking.
func (h *Hub) Publish(state RadioState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		select {
		case sub.ch <- state:
		default:
			// Buffer full: drop the oldest snapshot to make room.
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- state:
			default:
			}
		}
	}
}
