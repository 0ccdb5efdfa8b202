package middleware_test

import (
	"context"

	"github.com/aretw0/swell/pkg/domain"
	"github.com/aretw0/swell/pkg/ports"
)

// MockJournal is a simple slice-based journal for testing middleware.
type MockJournal struct {
	entries []domain.Change
}

func NewMockJournal() *MockJournal {
	return &MockJournal{}
}

func (j *MockJournal) Append(ctx context.Context, change domain.Change) error {
	j.entries = append(j.entries, change)
	return nil
}

func (j *MockJournal) Recent(ctx context.Context, limit int) ([]domain.Change, error) {
	out := make([]domain.Change, 0, len(j.entries))
	for i := len(j.entries) - 1; i >= 0; i-- {
		out = append(out, j.entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

var _ ports.Journal = (*MockJournal)(nil)
