// Package file implements ports.Journal on a single JSON file, for setups
// that want the journal to survive restarts without running Redis.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/swell/pkg/domain"
)

// Journal keeps changes in memory and mirrors every append to a JSON file.
// Reads never touch the disk after Open; the file is a write-through copy.
type Journal struct {
	path    string
	limit   int
	mu      sync.Mutex
	entries []domain.Change
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

// Open loads the journal file at path, creating an empty journal when the
// file does not exist yet. If path is empty, it defaults to
// ".swell/journal.json". A file that exists but cannot be parsed is an
// error; silently discarding history would defeat the point of persisting it.
func Open(path string, opts ...Option) (*Journal, error) {
	if path == "" {
		path = filepath.Join(".swell", "journal.json")
	}

	j := &Journal{path: path}
	for _, opt := range opts {
		opt(j)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return j, nil
		}
		return nil, fmt.Errorf("failed to read journal file: %w", err)
	}

	if err := json.Unmarshal(data, &j.entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal journal file: %w", err)
	}
	if j.limit > 0 && len(j.entries) > j.limit {
		j.entries = j.entries[len(j.entries)-j.limit:]
	}
	return j, nil
}

// Append stores one change and rewrites the journal file atomically.
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
	return j.save()
}

// Recent returns stored changes newest-first. A limit <= 0 returns all.
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.Change, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

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

// save writes the full entry snapshot via a temp file, fsync and rename, so
// a crash mid-write leaves the previous journal intact. Callers hold j.mu.
func (j *Journal) save() error {
	dir := filepath.Dir(j.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure journal directory: %w", err)
	}

	data, err := json.MarshalIndent(j.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}

	// The temp file lives in the destination directory; rename is only
	// atomic within a single filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-journal-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()    // Ensure closed
		_ = os.Remove(tmpPath) // Remove if still exists (not renamed)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists, so remove it first. The
	// delete+rename window beats a torn partial write.
	if _, err := os.Stat(j.path); err == nil {
		if err := os.Remove(j.path); err != nil {
			return fmt.Errorf("failed to remove existing journal for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, j.path); err != nil {
		return fmt.Errorf("failed to rename temp file to journal: %w", err)
	}
	return nil
}
