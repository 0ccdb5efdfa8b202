// Package hook runs configured shell commands when waves close. It is the
// outbound counterpart of the fswatch adapter: where fswatch turns the
// filesystem into raw records, hook turns reduced changes back into side
// effects (regenerate a preview, poke a CI job, notify a chat channel).
package hook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/swell/pkg/domain"
)

const defaultTimeout = 30 * time.Second

// Sink executes hooks whose "on" list matches the kind of each reduced
// change. Hooks run synchronously and sequentially in declaration order, so
// a slow hook delays the coordinator; keep commands short or have them
// detach on their own.
type Sink struct {
	hooks   []Config
	baseDir string
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures the Sink.
type Option func(*Sink)

// WithBaseDir sets the working directory for hook commands.
func WithBaseDir(dir string) Option {
	return func(s *Sink) {
		s.baseDir = dir
	}
}

// WithTimeout bounds each hook invocation. Zero or negative values keep the
// default of 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(s *Sink) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger for hook lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sink) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Sink from an already-loaded hook list.
func New(hooks []Config, opts ...Option) *Sink {
	s := &Sink{
		hooks:   hooks,
		timeout: defaultTimeout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnRecord is a no-op; hooks react to reduced changes, not raw records.
func (s *Sink) OnRecord(ctx context.Context, rec domain.Record) {}

// OnChange runs every hook whose "on" list contains the change kind. A
// failing hook is logged and skipped; it never stops later hooks and never
// surfaces to the pipeline.
func (s *Sink) OnChange(ctx context.Context, change domain.Change) {
	for _, h := range s.hooks {
		if !matches(h, change.Kind) {
			continue
		}
		if err := s.run(ctx, h, change); err != nil {
			s.logger.Warn("Hook failed",
				"hook", h.Name,
				"change", change.Kind,
				"err", err)
		}
	}
}

func matches(h Config, kind domain.ChangeKind) bool {
	if len(h.On) == 0 {
		return true
	}
	for _, on := range h.On {
		if domain.ChangeKind(on) == kind {
			return true
		}
	}
	return false
}

func (s *Sink) run(ctx context.Context, h Config, change domain.Change) error {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, h.Command, h.Args...)
	if s.baseDir != "" {
		cmd.Dir = s.baseDir
	}

	// Change data travels via environment variables rather than argv, so a
	// subject named "--foo" cannot be mistaken for a flag by the hook.
	cmd.Env = append(cmd.Environ(),
		"SWELL_CHANGE_ID="+change.ID,
		"SWELL_CHANGE_KIND="+string(change.Kind),
		"SWELL_CHANGE_SUBJECTS="+strings.Join(change.SubjectNames(), ","),
		"SWELL_CHANGE_WAVE="+strconv.Itoa(change.WaveSize),
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.logger.Debug("Running hook", "hook", h.Name, "command", h.Command)

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}

	if out := strings.TrimSpace(stdout.String()); out != "" {
		s.logger.Debug("Hook output", "hook", h.Name, "output", out)
	}
	return nil
}
