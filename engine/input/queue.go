package input

import "sync"

// Queue is a FIFO buffer of events. Producers (window callbacks) push at any time;
// the frame loop drains the whole queue once per frame.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty queue with room for capacity events before growing.
func NewQueue(capacity int) *Queue {
	return &Queue{events: make([]Event, 0, capacity)}
}

// Enqueue appends an event. Queue implements Handler so it can sit between a
// producer and a consumer directly.
func (q *Queue) Enqueue(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Drain removes and returns all pending events in arrival order.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

var _ Handler = &Queue{}
