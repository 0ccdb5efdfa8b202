package ports

import (
	"context"

	"github.com/aretw0/swell/pkg/domain"
)

// Journal persists reduced changes for later inspection. It is an observer
// store, not a source of truth: losing entries degrades debugging, never
// correctness.
type Journal interface {
	// Append stores one change. Implementations may cap retention and evict
	// the oldest entries.
	Append(ctx context.Context, change domain.Change) error

	// Recent returns stored changes newest-first. A limit <= 0 means "all
	// retained entries". An empty journal returns an empty slice, not an
	// error.
	Recent(ctx context.Context, limit int) ([]domain.Change, error)
}
