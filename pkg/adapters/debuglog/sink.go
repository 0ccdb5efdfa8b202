/*
Package debuglog provides the trace sink: a human-readable line per raw
record and per reduced change, gated by the host's debug preference.

The preference is consulted fresh on every call, never cached, so flipping
the flag in the host takes effect on the very next notification. The sink
holds no state and makes no decisions; it can be swapped for any other
ports.Sink without touching the pipeline.
*/
package debuglog

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/swell/pkg/domain"
	"github.com/aretw0/swell/pkg/ports"
)

// Sink traces pipeline traffic through a structured logger.
type Sink struct {
	prefs  ports.Preferences
	logger *slog.Logger
}

// New creates a trace sink. A nil prefs means "no gate": every call traces.
// The logger should be configured at debug level; a nil logger discards
// everything.
func New(prefs ports.Preferences, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Sink{prefs: prefs, logger: logger}
}

func (s *Sink) enabled() bool {
	if s.prefs == nil {
		return true
	}
	return s.prefs.DebugEnabled()
}

// OnRecord traces one raw record as it enters the wave.
func (s *Sink) OnRecord(ctx context.Context, rec domain.Record) {
	if !s.enabled() {
		return
	}
	if rec.Subject.IsZero() {
		s.logger.Debug("raw event", "kind", rec.Kind)
		return
	}
	s.logger.Debug("raw event",
		"kind", rec.Kind,
		"subject_type", rec.Subject.Type,
		"subject", rec.Subject.Name,
	)
}

// OnChange traces the reduced change of a closed wave.
func (s *Sink) OnChange(ctx context.Context, change domain.Change) {
	if !s.enabled() {
		return
	}
	if names := change.SubjectNames(); len(names) > 0 {
		s.logger.Debug("reduced change",
			"kind", change.Kind,
			"subjects", strings.Join(names, ", "),
			"wave_size", change.WaveSize,
		)
		return
	}
	s.logger.Debug("reduced change", "kind", change.Kind, "wave_size", change.WaveSize)
}
