/*
Package httpapi exposes a running pipeline over HTTP for inspection and
control: recent changes from the journal, a live SSE change stream, and the
debug-trace toggle, plus health, pipeline stats and optional Prometheus
metrics.

The surface is read-mostly and unauthenticated; it is meant for a developer
loopback, not the open internet.
*/
package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/swell/pkg/ports"
)

// DefaultRecentLimit bounds GET /changes when no limit parameter is given.
const DefaultRecentLimit = 50

// Config carries the collaborators the handler serves.
type Config struct {
	Journal ports.Journal
	Toggle  *DebugToggle
	Stream  *Stream      // optional; enables GET /events
	Metrics http.Handler // optional; mounted at /metrics
	Stats   http.Handler // optional; mounted at /stats
	Logger  *slog.Logger
}

// Server holds the handler state.
type Server struct {
	journal ports.Journal
	toggle  *DebugToggle
	stream  *Stream
	logger  *slog.Logger
}

// NewHandler builds the HTTP handler for the given collaborators.
func NewHandler(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	server := &Server{
		journal: cfg.Journal,
		toggle:  cfg.Toggle,
		stream:  cfg.Stream,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Get("/healthz", server.health)
	r.Get("/changes", server.recentChanges)
	r.Get("/debug", server.getDebug)
	r.Put("/debug", server.putDebug)
	if cfg.Stream != nil {
		r.Get("/events", server.subscribeEvents)
	}
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics)
	}
	if cfg.Stats != nil {
		r.Handle("/stats", cfg.Stats)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("response encode failed", "err", err)
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recentChanges handles GET /changes?limit=N.
func (s *Server) recentChanges(w http.ResponseWriter, r *http.Request) {
	if s.journal == nil {
		http.Error(w, "no journal configured", http.StatusNotFound)
		return
	}

	limit := DefaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	changes, err := s.journal.Recent(r.Context(), limit)
	if err != nil {
		s.logger.Error("journal read failed", "err", err)
		http.Error(w, fmt.Sprintf("journal read failed: %v", err), http.StatusInternalServerError)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{"changes": changes})
}

func (s *Server) getDebug(w http.ResponseWriter, r *http.Request) {
	if s.toggle == nil {
		http.Error(w, "no debug toggle configured", http.StatusNotFound)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"enabled": s.toggle.DebugEnabled()})
}

// putDebug handles PUT /debug with body {"enabled": bool}.
func (s *Server) putDebug(w http.ResponseWriter, r *http.Request) {
	if s.toggle == nil {
		http.Error(w, "no debug toggle configured", http.StatusNotFound)
		return
	}

	var body struct {
		Enabled *bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Enabled == nil {
		http.Error(w, "invalid request body, expected {\"enabled\": bool}", http.StatusBadRequest)
		return
	}

	s.toggle.Set(*body.Enabled)
	s.logger.Info("debug trace toggled", "enabled", *body.Enabled)
	s.respondJSON(w, http.StatusOK, map[string]bool{"enabled": s.toggle.DebugEnabled()})
}

// subscribeEvents handles the GET /events request (SSE).
func (s *Server) subscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.stream.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case change, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(change)
			if err != nil {
				s.logger.Warn("change encode failed", "err", err, "change_id", change.ID)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}
