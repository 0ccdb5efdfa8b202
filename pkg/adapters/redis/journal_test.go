package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/swell/pkg/adapters/redis"
	"github.com/aretw0/swell/pkg/domain"
	"github.com/aretw0/swell/pkg/ports"
)

func newTestJournal(t *testing.T, opts ...redis.Option) (*redis.Journal, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return redis.NewFromClient(client, opts...), mr
}

func TestRedisJournal_Contract(t *testing.T) {
	journal, _ := newTestJournal(t)
	ports.RunJournalContract(t, journal)
}

func TestRedisJournal_TrimsToLimit(t *testing.T) {
	ctx := context.Background()
	journal, _ := newTestJournal(t, redis.WithLimit(2))

	for _, id := range []string{"a", "b", "c"} {
		if err := journal.Append(ctx, domain.Change{ID: id, Kind: domain.ChangeUndo}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	changes, err := journal.Recent(ctx, 0)
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

func TestRedisJournal_SkipsCorruptEntries(t *testing.T) {
	ctx := context.Background()
	journal, mr := newTestJournal(t, redis.WithKey("swell:test"))

	if err := journal.Append(ctx, domain.Change{ID: "good", Kind: domain.ChangeAddNode}); err != nil {
		t.Fatal(err)
	}
	if _, err := mr.Push("swell:test", "{not json"); err != nil {
		t.Fatal(err)
	}

	changes, err := journal.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("corrupt entry must not fail the read: %v", err)
	}
	if len(changes) != 1 || changes[0].ID != "good" {
		t.Errorf("expected only the decodable entry, got %+v", changes)
	}
}
