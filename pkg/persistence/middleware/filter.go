package middleware

import (
	"context"

	"github.com/aretw0/swell/pkg/domain"
	"github.com/aretw0/swell/pkg/ports"
)

type kindFilterMiddleware struct {
	next    ports.Journal
	allowed map[domain.ChangeKind]struct{}
}

// NewKindFilter creates a middleware that journals only the listed change
// kinds. Busy graphs can drown the interesting entries in undefined
// tree-level churn; filtering at the journal keeps sinks and the live
// stream untouched.
func NewKindFilter(kinds ...domain.ChangeKind) Middleware {
	allowed := make(map[domain.ChangeKind]struct{}, len(kinds))
	for _, k := range kinds {
		allowed[k] = struct{}{}
	}
	return func(next ports.Journal) ports.Journal {
		return &kindFilterMiddleware{next: next, allowed: allowed}
	}
}

func (m *kindFilterMiddleware) Append(ctx context.Context, change domain.Change) error {
	if _, ok := m.allowed[change.Kind]; !ok {
		return nil
	}
	return m.next.Append(ctx, change)
}

func (m *kindFilterMiddleware) Recent(ctx context.Context, limit int) ([]domain.Change, error) {
	return m.next.Recent(ctx, limit)
}
