package memory

import (
	"context"
	"sync"

	"github.com/aretw0/swell/pkg/domain"
)

// Journal implements ports.Journal in memory.
// Safe for concurrent use: the pipeline appends from its dispatch goroutine
// while introspection surfaces (HTTP, MCP) read concurrently.
type Journal struct {
	entries []domain.Change
	limit   int
	mu      sync.RWMutex
}

// Option configures the journal.
type Option func(*Journal)

// WithLimit caps retention at n entries; the oldest are evicted first.
// A limit <= 0 means unlimited.
func WithLimit(n int) Option {
	return func(j *Journal) {
		j.limit = n
	}
}

// NewJournal creates an empty in-memory journal.
func NewJournal(opts ...Option) *Journal {
	j := &Journal{}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Append stores one change, evicting the oldest entry beyond the cap.
func (j *Journal) Append(ctx context.Context, change domain.Change) error {
	// Copy the subject slice so later caller mutations can't reach stored state.
	if len(change.Subjects) > 0 {
		subjects := make([]domain.Subject, len(change.Subjects))
		copy(subjects, change.Subjects)
		change.Subjects = subjects
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, change)
	if j.limit > 0 && len(j.entries) > j.limit {
		j.entries = j.entries[len(j.entries)-j.limit:]
	}
	return nil
}

// Recent returns stored changes newest-first. A limit <= 0 returns all.
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.Change, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]domain.Change, 0, len(j.entries))
	for i := len(j.entries) - 1; i >= 0; i-- {
		entry := j.entries[i]
		if len(entry.Subjects) > 0 {
			subjects := make([]domain.Subject, len(entry.Subjects))
			copy(subjects, entry.Subjects)
			entry.Subjects = subjects
		}
		out = append(out, entry)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
