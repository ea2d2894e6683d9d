package remote

import "sync"

// Retention cap. A flooding client cannot grow the queue without bound; the
// oldest unconsumed action gives way, since stale control intents are worth
// less than fresh ones.
const queueCap = 1024

// Queue buffers control actions from remote clients until the host's own
// poll loop consumes them. FIFO per producer; actions from different
// sessions interleave in arrival order.
type Queue struct {
	mu      sync.Mutex
	actions []string
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an action. It never blocks and never fails.
func (q *Queue) Push(action string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.actions) >= queueCap {
		q.actions = q.actions[1:]
	}
	q.actions = append(q.actions, action)
}

// Pop removes and returns the oldest queued action. The second return value
// is false when the queue is empty.
func (q *Queue) Pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.actions) == 0 {
		return "", false
	}
	action := q.actions[0]
	q.actions = q.actions[1:]
	return action, true
}
