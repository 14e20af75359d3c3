package events

import (
	"context"
	"sync"
)

// Recorder keeps every published event in memory and fans them out to
// subscribers. Slow subscribers miss events rather than block publishers.
type Recorder struct {
	mu          sync.RWMutex
	events      []Event
	subscribers []chan Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	for _, sub := range r.subscribers {
		select {
		case sub <- event:
		default:
		}
	}
	return nil
}

// Subscribe returns a channel receiving events published from now on.
func (r *Recorder) Subscribe(buffer int) <-chan Event {
	ch := make(chan Event, buffer)
	r.mu.Lock()
	r.subscribers = append(r.subscribers, ch)
	r.mu.Unlock()
	return ch
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Event{}, r.events...)
}

// ByType returns the recorded events of one type, oldest first.
func (r *Recorder) ByType(typ Type) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Event
	for _, e := range r.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
