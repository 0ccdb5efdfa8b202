package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swell "github.com/aretw0/swell"
	"github.com/aretw0/swell/internal/logging"
	"github.com/aretw0/swell/internal/presentation/tui"
	"github.com/aretw0/swell/pkg/adapters/debuglog"
	"github.com/aretw0/swell/pkg/adapters/fswatch"
	"github.com/aretw0/swell/pkg/adapters/hook"
	"github.com/aretw0/swell/pkg/adapters/httpapi"
	"github.com/aretw0/swell/pkg/adapters/prom"
	"github.com/aretw0/swell/pkg/bridge"
	"github.com/aretw0/swell/pkg/observability"
	"github.com/aretw0/swell/pkg/persistence/middleware"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures the coalescing daemon.
type ServeOptions struct {
	Root        string // directory whose files play the node tree
	Addr        string // HTTP listen address
	RedisAddr   string // non-empty switches the journal to redis
	JournalPath string // non-empty switches the journal to a file
	HooksPath   string // hook config; empty or missing file means no hooks
	Redact      bool   // hash subject names before journaling
	Debug       bool   // initial state of the debug trace toggle
}

// RunServe watches a directory, coalesces its change storms and serves the
// journal over HTTP until a signal arrives.
//
// The watcher goroutine is the only writer into the Coordinator; HTTP
// handlers touch the journal, the toggle, the stream and the stats
// aggregator, which guard themselves.
func RunServe(opts ServeOptions) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	tui.PrintBanner()

	journalCfg := JournalConfig{RedisAddr: opts.RedisAddr, Path: opts.JournalPath}
	journalKind := journalCfg.Kind()
	journal, closeJournal, err := OpenJournal(journalKind, journalCfg, logger)
	if err != nil {
		return err
	}
	defer closeJournal()
	if opts.Redact {
		journal = middleware.Chain(journal, middleware.NewRedaction())
	}

	registry := prometheus.NewRegistry()
	metrics, err := prom.New(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	toggle := httpapi.NewDebugToggle(opts.Debug)
	stream := httpapi.NewStream()
	stats := observability.NewAggregator()

	coordOpts := []swell.Option{
		swell.WithLogger(logging.ForComponent(logger, "coordinator")),
		swell.WithJournal(journal),
		swell.WithSink(metrics),
		swell.WithSink(stats),
		swell.WithSink(stream),
		swell.WithSink(debuglog.New(toggle, logging.ForComponent(logger, "trace"))),
	}

	if opts.HooksPath != "" {
		hookConfigs, err := hook.LoadConfigs(opts.HooksPath)
		if err != nil {
			return err
		}
		if len(hookConfigs) > 0 {
			coordOpts = append(coordOpts, swell.WithSink(hook.New(hookConfigs,
				hook.WithBaseDir(opts.Root),
				hook.WithLogger(logging.ForComponent(logger, "hooks")))))
			logger.Info("Hooks armed", "count", len(hookConfigs), "config", opts.HooksPath)
		}
	}

	coord := swell.New(coordOpts...)

	watcher := fswatch.New(opts.Root, bridge.New(coord),
		fswatch.WithLogger(logging.ForComponent(logger, "fswatch")))

	handler := httpapi.NewHandler(httpapi.Config{
		Journal: journal,
		Toggle:  toggle,
		Stream:  stream,
		Metrics: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Stats:   stats.Handler(),
		Logger:  logging.ForComponent(logger, "http"),
	})

	srv := &http.Server{
		Addr:    opts.Addr,
		Handler: handler,
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	watchErrors := make(chan error, 1)
	go func() {
		logger.Info("Watching for changes", "root", opts.Root, "journal", journalKind)
		watchErrors <- watcher.Run(sigCtx)
	}()

	select {
	case err := <-serverErrors:
		sigCtx.Cancel()
		<-watchErrors
		return fmt.Errorf("server error: %w", err)

	case err := <-watchErrors:
		// Watcher died on its own; bring the server down with it.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("watcher error: %w", err)
		}
		return nil

	case <-sigCtx.Done():
		logger.Info("Shutdown signal received", "signal", sigCtx.Signal())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown did not complete", "err", err)
			if err := srv.Close(); err != nil {
				logger.Error("Error closing server", "err", err)
			}
		}
		<-watchErrors
		logger.Info("Server stopped gracefully")
		return nil
	}
}
