package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/swell/pkg/adapters/file"
	"github.com/aretw0/swell/pkg/domain"
	"github.com/aretw0/swell/pkg/ports"
)

func TestFileJournal_Contract(t *testing.T) {
	journal, err := file.Open(filepath.Join(t.TempDir(), "journal.json"))
	if err != nil {
		t.Fatal(err)
	}
	ports.RunJournalContract(t, journal)
}

func TestFileJournal_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.json")

	journal, err := file.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"a", "b"} {
		err := journal.Append(ctx, domain.Change{
			ID:       id,
			Kind:     domain.ChangeCopyNodes,
			Subjects: []domain.Subject{domain.NodeSubject("SvBoxNode", "Box.001")},
			WaveSize: 2,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	reopened, err := file.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	changes, err := reopened.Recent(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 2 {
		t.Fatalf("reopened journal has %d entries, want 2", len(changes))
	}
	if changes[0].ID != "b" || changes[1].ID != "a" {
		t.Errorf("reopened order wrong: %s, %s", changes[0].ID, changes[1].ID)
	}
	if changes[0].Subjects[0].Name != "Box.001" {
		t.Errorf("subjects did not survive the round trip: %+v", changes[0].Subjects)
	}
}

func TestFileJournal_LimitEvictsOldest(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.json")

	journal, err := file.Open(path, file.WithLimit(2))
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"a", "b", "c"} {
		if err := journal.Append(ctx, domain.Change{ID: id, Kind: domain.ChangeUndo}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	// The cap applies on reopen too, even if the file was written uncapped.
	reopened, err := file.Open(path, file.WithLimit(2))
	if err != nil {
		t.Fatal(err)
	}
	changes, err := reopened.Recent(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 2 {
		t.Fatalf("retained %d entries, want 2", len(changes))
	}
	if changes[0].ID != "c" || changes[1].ID != "b" {
		t.Errorf("retained wrong entries: %s, %s", changes[0].ID, changes[1].ID)
	}
}

func TestFileJournal_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := file.Open(path)
	if err == nil {
		t.Fatal("opening a corrupt journal must fail, not discard history")
	}
}

func TestFileJournal_CreatesDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "journal.json")

	journal, err := file.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := journal.Append(ctx, domain.Change{ID: "a", Kind: domain.ChangeAddNode}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("journal file was not created: %v", err)
	}
}
