package ports

import (
	"context"

	"github.com/aretw0/swell/pkg/domain"
)

// Sink observes the coalescing pipeline. OnRecord fires once per raw record
// that enters the wave (filtered noise never reaches it); OnChange fires once
// per reduced change when a wave closes.
//
// Sinks are called synchronously inside the host's notification callback and
// must not block; failures belong to the sink (log and move on), never to the
// pipeline.
type Sink interface {
	OnRecord(ctx context.Context, rec domain.Record)
	OnChange(ctx context.Context, change domain.Change)
}

// SinkFuncs adapts plain functions to the Sink interface. Nil fields are
// simply skipped, so callers can observe only the hook they care about.
type SinkFuncs struct {
	Record func(ctx context.Context, rec domain.Record)
	Change func(ctx context.Context, change domain.Change)
}

func (s SinkFuncs) OnRecord(ctx context.Context, rec domain.Record) {
	if s.Record != nil {
		s.Record(ctx, rec)
	}
}

func (s SinkFuncs) OnChange(ctx context.Context, change domain.Change) {
	if s.Change != nil {
		s.Change(ctx, change)
	}
}
