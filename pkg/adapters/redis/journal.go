// Package redis implements ports.Journal on a Redis list, for deployments
// where the change history must survive the host process or be shared with
// other consumers.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/swell/pkg/domain"
)

// Journal implements ports.Journal using a Redis list. Changes are pushed to
// the head, so LRANGE order is already newest-first; retention is capped by
// trimming on every append.
type Journal struct {
	client *backend.Client
	key    string
	limit  int64
	logger *slog.Logger
}

type Option func(*Journal)

// WithKey sets the list key holding the journal.
func WithKey(key string) Option {
	return func(j *Journal) {
		j.key = key
	}
}

// WithLimit caps how many changes the list retains. A limit <= 0 keeps
// everything.
func WithLimit(n int) Option {
	return func(j *Journal) {
		j.limit = int64(n)
	}
}

// WithLogger sets the logger used to report skipped corrupt entries.
func WithLogger(logger *slog.Logger) Option {
	return func(j *Journal) {
		j.logger = logger
	}
}

// New creates a new Redis journal with options.
func New(address, password string, db int, opts ...Option) *Journal {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis journal from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Journal {
	j := &Journal{
		client: client,
		key:    "swell:changes",
		limit:  1024,
	}

	for _, opt := range opts {
		opt(j)
	}

	if j.logger == nil {
		j.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return j
}

// Append pushes the change to the head of the list and trims retention.
func (j *Journal) Append(ctx context.Context, change domain.Change) error {
	data, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}

	pipe := j.client.Pipeline()
	pipe.LPush(ctx, j.key, data)
	if j.limit > 0 {
		pipe.LTrim(ctx, j.key, 0, j.limit-1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append to redis: %w", err)
	}
	return nil
}

// Recent returns stored changes newest-first. A limit <= 0 returns the whole
// retained list. Entries that no longer decode are skipped and logged rather
// than failing the read.
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.Change, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	raw, err := j.client.LRange(ctx, j.key, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read from redis: %w", err)
	}

	changes := make([]domain.Change, 0, len(raw))
	for _, entry := range raw {
		var ch domain.Change
		if err := json.Unmarshal([]byte(entry), &ch); err != nil {
			j.logger.Warn("skipping corrupt journal entry", "err", err)
			continue
		}
		changes = append(changes, ch)
	}
	return changes, nil
}

// Close closes the redis client.
func (j *Journal) Close() error {
	return j.client.Close()
}
