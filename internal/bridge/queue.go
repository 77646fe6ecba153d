package bridge

import (
	"log"
	"sync/atomic"

	"github.com/frudas24/pointerhook/internal/edge"
)

const defaultQueueSize = 256

// Queue buffers outbound events between the hook thread and the network writer.
// Publish never blocks; events that do not fit are counted and dropped.
type Queue struct {
	ch      chan edge.Event
	dropped atomic.Uint64
}

// NewQueue returns a queue holding up to size events.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{ch: make(chan edge.Event, size)}
}

// Publish is an edge.Sink. It is safe to call from the hook thread.
func (q *Queue) Publish(ev edge.Event) {
	select {
	case q.ch <- ev:
	default:
		if q.dropped.Add(1) == 1 || debugEnabled() {
			log.Printf("bridge: event queue full, dropping %s", ev.Type)
		}
	}
}

// Dropped returns the number of events discarded because the queue was full.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
