package ports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/swell/pkg/domain"
)

// RunJournalContract runs a suite of tests to verify that a Journal
// implementation adheres to the defined interface contract.
func RunJournalContract(t *testing.T, journal Journal) {
	ctx := context.Background()

	mkChange := func(kind domain.ChangeKind, subjects ...domain.Subject) domain.Change {
		return domain.Change{
			ID:       uuid.NewString(),
			Kind:     kind,
			Subjects: subjects,
			WaveSize: len(subjects) + 1,
			At:       time.Now(),
		}
	}

	t.Run("Recent on empty", func(t *testing.T) {
		changes, err := journal.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, changes)
	})

	first := mkChange(domain.ChangeAddNode, domain.NodeSubject("SvBoxNode", "Box"))
	second := mkChange(domain.ChangeUndo)
	third := mkChange(domain.ChangeCopyNodes,
		domain.NodeSubject("SvBoxNode", "Box.001"),
		domain.NodeSubject("SvSphereNode", "Sphere.001"),
	)

	t.Run("Append and Recent order", func(t *testing.T) {
		for _, ch := range []domain.Change{first, second, third} {
			require.NoError(t, journal.Append(ctx, ch))
		}

		changes, err := journal.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, third.ID, changes[0].ID, "newest change must come first")
		assert.Equal(t, second.ID, changes[1].ID)
	})

	t.Run("Recent without limit", func(t *testing.T) {
		changes, err := journal.Recent(ctx, 0)
		require.NoError(t, err)
		require.Len(t, changes, 3)
		assert.Equal(t, first.ID, changes[2].ID, "oldest change must come last")
	})

	t.Run("Round trip preserves the change", func(t *testing.T) {
		changes, err := journal.Recent(ctx, 1)
		require.NoError(t, err)
		require.Len(t, changes, 1)

		got := changes[0]
		assert.Equal(t, third.Kind, got.Kind)
		assert.Equal(t, third.Subjects, got.Subjects)
		assert.Equal(t, third.WaveSize, got.WaveSize)
		assert.WithinDuration(t, third.At, got.At, time.Second)
	})

	t.Run("Limit beyond size", func(t *testing.T) {
		changes, err := journal.Recent(ctx, 100)
		require.NoError(t, err)
		assert.Len(t, changes, 3)
	})
}
