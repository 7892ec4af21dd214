package service

import (
	"sync"

	"trackify/internal/domain"
)

// JobEvent is a progress notification for one job, published on every
// status or step transition.
type JobEvent struct {
	Status domain.JobStatus `json:"status"`
	Step   domain.JobStep   `json:"step,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// EventBus fans job events out to in-process subscribers keyed by job ID.
type EventBus struct {
	subscribers map[string][]chan JobEvent
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan JobEvent),
	}
}

func (eb *EventBus) Subscribe(jobID string) chan JobEvent {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan JobEvent, 16)
	eb.subscribers[jobID] = append(eb.subscribers[jobID], ch)
	return ch
}

func (eb *EventBus) Unsubscribe(jobID string, ch chan JobEvent) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[jobID]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[jobID] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}

	if len(eb.subscribers[jobID]) == 0 {
		delete(eb.subscribers, jobID)
	}
}

func (eb *EventBus) Publish(jobID string, event JobEvent) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, ch := range eb.subscribers[jobID] {
		select {
		case ch <- event:
		default:
			// Drop event if subscriber is slow
		}
	}
}
