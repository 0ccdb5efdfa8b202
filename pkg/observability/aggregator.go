package observability

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/aretw0/swell/pkg/domain"
)

// Stats is a point-in-time view of the pipeline counters.
type Stats struct {
	Records       int64            `json:"records"`
	Changes       int64            `json:"changes"`
	RecordsByKind map[string]int64 `json:"records_by_kind,omitempty"`
	ChangesByKind map[string]int64 `json:"changes_by_kind,omitempty"`
	LargestWave   int              `json:"largest_wave"`
	MeanWave      float64          `json:"mean_wave"`
	LastChangeAt  *time.Time       `json:"last_change_at,omitempty"`
}

// Aggregator combines the pipeline's record and change hooks into a single
// counter view. Unlike the Prometheus sink it keeps plain numbers readable
// in-process, for the /stats endpoint and for hosts that poll state directly.
type Aggregator struct {
	mu            sync.RWMutex
	records       int64
	changes       int64
	recordsByKind map[string]int64
	changesByKind map[string]int64
	waveSum       int64
	largestWave   int
	lastChangeAt  time.Time
}

// NewAggregator creates an aggregator with zeroed counters.
func NewAggregator() *Aggregator {
	return &Aggregator{
		recordsByKind: make(map[string]int64),
		changesByKind: make(map[string]int64),
	}
}

// OnRecord counts one buffered raw record.
func (a *Aggregator) OnRecord(ctx context.Context, rec domain.Record) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records++
	a.recordsByKind[string(rec.Kind)]++
}

// OnChange counts one reduced change and folds in its wave size.
func (a *Aggregator) OnChange(ctx context.Context, change domain.Change) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.changes++
	a.changesByKind[string(change.Kind)]++
	a.waveSum += int64(change.WaveSize)
	if change.WaveSize > a.largestWave {
		a.largestWave = change.WaveSize
	}
	a.lastChangeAt = change.At
}

// Snapshot returns a copy of the current counters.
func (a *Aggregator) Snapshot() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	stats := Stats{
		Records:     a.records,
		Changes:     a.changes,
		LargestWave: a.largestWave,
	}
	if a.changes > 0 {
		stats.MeanWave = float64(a.waveSum) / float64(a.changes)
	}
	if !a.lastChangeAt.IsZero() {
		at := a.lastChangeAt
		stats.LastChangeAt = &at
	}
	if len(a.recordsByKind) > 0 {
		stats.RecordsByKind = make(map[string]int64, len(a.recordsByKind))
		for k, v := range a.recordsByKind {
			stats.RecordsByKind[k] = v
		}
	}
	if len(a.changesByKind) > 0 {
		stats.ChangesByKind = make(map[string]int64, len(a.changesByKind))
		for k, v := range a.changesByKind {
			stats.ChangesByKind[k] = v
		}
	}
	return stats
}

// Handler serves the snapshot as JSON, for mounting under the HTTP API.
func (a *Aggregator) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(a.Snapshot())
	})
}
