// Package prom exposes the coalescing pipeline as Prometheus metrics: raw
// record and reduced change counters by kind, plus a wave-size histogram
// showing how much noise each logical action produced.
package prom

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/swell/pkg/domain"
)

// Sink implements ports.Sink backed by Prometheus collectors.
type Sink struct {
	rawEvents *prometheus.CounterVec
	changes   *prometheus.CounterVec
	waveSize  prometheus.Histogram
}

// New creates the sink and registers its collectors. Pass
// prometheus.DefaultRegisterer for the process-wide registry, or a private
// one in tests.
func New(reg prometheus.Registerer) (*Sink, error) {
	s := &Sink{
		rawEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swell_raw_events_total",
				Help: "Total raw records buffered, by raw kind",
			},
			[]string{"kind"},
		),
		changes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swell_changes_total",
				Help: "Total reduced changes emitted, by change kind",
			},
			[]string{"kind"},
		),
		waveSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "swell_wave_size",
				Help:    "Number of records per closed wave",
				Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
			},
		),
	}

	for _, c := range []prometheus.Collector{s.rawEvents, s.changes, s.waveSize} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNew is New that panics on registration failure, for wiring at startup.
func MustNew(reg prometheus.Registerer) *Sink {
	s, err := New(reg)
	if err != nil {
		panic(err)
	}
	return s
}

// OnRecord counts one buffered raw record.
func (s *Sink) OnRecord(ctx context.Context, rec domain.Record) {
	s.rawEvents.WithLabelValues(string(rec.Kind)).Inc()
}

// OnChange counts one reduced change and observes the wave it closed.
func (s *Sink) OnChange(ctx context.Context, change domain.Change) {
	s.changes.WithLabelValues(string(change.Kind)).Inc()
	s.waveSize.Observe(float64(change.WaveSize))
}
