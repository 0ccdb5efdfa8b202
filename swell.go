package swell

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/swell/pkg/domain"
	"github.com/aretw0/swell/pkg/ports"
)

// Coordinator is the high-level entry point for the Swell library. It owns the
// wave buffer for one host document: every raw notification enters through
// Record, and every closed wave leaves as exactly one domain.Change fanned out
// to the configured sinks.
//
// A Coordinator is single-threaded by contract. The host delivers
// notifications synchronously on the same logical thread that mutates the
// graph, so no internal locking is performed; hosts that observe several
// documents, or that dispatch from multiple goroutines, must create one
// Coordinator per document or serialize upstream.
type Coordinator struct {
	wave     []domain.Record
	sinks    []ports.Sink
	journals []ports.Journal
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Coordinator.
type Option func(*Coordinator)

// WithSink registers an observer for raw records and reduced changes.
// Sinks are notified in registration order.
func WithSink(s ports.Sink) Option {
	return func(c *Coordinator) {
		if s != nil {
			c.sinks = append(c.sinks, s)
		}
	}
}

// WithJournal persists every reduced change to the given journal. Append
// failures are logged and swallowed; journaling never disturbs the pipeline.
func WithJournal(j ports.Journal) Option {
	return func(c *Coordinator) {
		if j != nil {
			c.journals = append(c.journals, j)
		}
	}
}

// WithLogger sets a custom structured logger for the Coordinator.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// New initializes a Coordinator with an empty wave.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{}

	for _, opt := range opts {
		opt(c)
	}

	// Ensure logger is initialized so the reduction error path never hits nil.
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, j := range c.journals {
		c.sinks = append(c.sinks, &journalSink{journal: j, logger: c.logger})
	}

	return c
}

// Record is the single ingestion point for raw host notifications.
//
// The generic node_update echo is dropped before it reaches the wave: the
// host fires it both as a trailing echo of other changes and as the terminal
// signal of node creation, so treating it as informative would double-count
// or misclassify creation waves. Every other declared kind is appended,
// announced to the sinks, and then checked against the termination set; a
// terminating kind closes the wave, reduces it and clears the buffer.
func (c *Coordinator) Record(ctx context.Context, kind domain.RawKind, subject domain.Subject) {
	if kind == domain.RawNodeUpdate {
		return
	}

	rec := domain.Record{Kind: kind, Subject: subject}
	c.wave = append(c.wave, rec)

	for _, s := range c.sinks {
		s.OnRecord(ctx, rec)
	}

	if kind.Terminates() {
		c.flush(ctx)
	}
}

// Pending reports how many records the open wave currently holds.
func (c *Coordinator) Pending() int {
	return len(c.wave)
}

// flush reduces the buffered wave to one change and clears the buffer.
// The buffer is cleared unconditionally, even when classification fails, so a
// broken wave can never poison the next logical action.
func (c *Coordinator) flush(ctx context.Context) {
	defer func() {
		c.wave = c.wave[:0]
	}()

	primary, err := domain.Classify(c.wave[0].Kind)
	if err != nil {
		// Closed taxonomy; reaching this means a kind was added without a
		// table entry. Abort this reduction and keep the host alive.
		c.logger.Error("wave reduction aborted", "err", err, "kind", c.wave[0].Kind)
		return
	}

	change := domain.Change{
		ID:       uuid.NewString(),
		Kind:     primary,
		WaveSize: len(c.wave),
		At:       time.Now(),
	}

	// Tree-level and generic signals cannot be attributed to specific
	// entities without a graph diff, so an undefined change carries no
	// subjects at all.
	if primary != domain.ChangeUndefined {
		change.Subjects = c.leadingSubjects()
	}

	for _, s := range c.sinks {
		s.OnChange(ctx, change)
	}
}

// leadingSubjects collects the distinct subjects of the wave's maximal
// leading run of same-kind records, preserving first-occurrence order.
// Records after the run, such as a terminating record of a different kind,
// are deliberately excluded.
func (c *Coordinator) leadingSubjects() []domain.Subject {
	first := c.wave[0]
	seen := make(map[domain.Subject]struct{}, len(c.wave))

	var subjects []domain.Subject
	for _, rec := range c.wave {
		if !rec.Matches(first) {
			break
		}
		if rec.Subject.IsZero() {
			continue
		}
		if _, dup := seen[rec.Subject]; dup {
			continue
		}
		seen[rec.Subject] = struct{}{}
		subjects = append(subjects, rec.Subject)
	}
	return subjects
}

// journalSink bridges a ports.Journal into the sink fan-out.
type journalSink struct {
	journal ports.Journal
	logger  *slog.Logger
}

func (s *journalSink) OnRecord(ctx context.Context, rec domain.Record) {}

func (s *journalSink) OnChange(ctx context.Context, change domain.Change) {
	if err := s.journal.Append(ctx, change); err != nil {
		s.logger.Warn("journal append failed", "err", err, "change_id", change.ID)
	}
}
