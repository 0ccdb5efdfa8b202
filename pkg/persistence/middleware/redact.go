package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/aretw0/swell/pkg/domain"
	"github.com/aretw0/swell/pkg/ports"
)

type redactionMiddleware struct {
	next ports.Journal
}

// NewRedaction creates a middleware that replaces subject names with a short
// digest before they reach the journal. Node names are user content (think
// "Client X proposal.001"), and a journal shipped to a shared Redis or a bug
// report should not leak them.
//
// The digest is deterministic, so repeated changes to the same node remain
// correlatable after redaction. Redaction is one way; Recent returns what
// was stored.
func NewRedaction() Middleware {
	return func(next ports.Journal) ports.Journal {
		return &redactionMiddleware{next: next}
	}
}

func (m *redactionMiddleware) Append(ctx context.Context, change domain.Change) error {
	if len(change.Subjects) > 0 {
		subjects := make([]domain.Subject, len(change.Subjects))
		for i, s := range change.Subjects {
			s.Name = redactName(s.Name)
			subjects[i] = s
		}
		// The caller's change is left untouched; only the stored copy is redacted.
		change.Subjects = subjects
	}
	return m.next.Append(ctx, change)
}

func (m *redactionMiddleware) Recent(ctx context.Context, limit int) ([]domain.Change, error) {
	return m.next.Recent(ctx, limit)
}

func redactName(name string) string {
	if name == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(name))
	return hex.EncodeToString(sum[:])[:12]
}
