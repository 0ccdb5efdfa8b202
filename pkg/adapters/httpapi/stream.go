package httpapi

import (
	"context"
	"sync"

	"github.com/aretw0/swell/pkg/domain"
)

// Stream fans reduced changes out to active SSE connections. It implements
// ports.Sink, so wiring it into a Coordinator is enough to make /events live.
type Stream struct {
	mu          sync.RWMutex
	subscribers map[chan domain.Change]struct{}
}

// NewStream creates an empty stream manager.
func NewStream() *Stream {
	return &Stream{
		subscribers: make(map[chan domain.Change]struct{}),
	}
}

// Subscribe registers a listener and returns its channel plus a cancel
// function that must be called when the connection ends.
func (s *Stream) Subscribe() (chan domain.Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan domain.Change, 10)
	s.subscribers[ch] = struct{}{}

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
	}
}

// OnRecord is part of ports.Sink; raw records are not streamed.
func (s *Stream) OnRecord(ctx context.Context, rec domain.Record) {}

// OnChange broadcasts the change to every subscriber. Slow clients with a
// full buffer miss the message rather than stalling the pipeline.
func (s *Stream) OnChange(ctx context.Context, change domain.Change) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for ch := range s.subscribers {
		select {
		case ch <- change:
		default:
		}
	}
}
