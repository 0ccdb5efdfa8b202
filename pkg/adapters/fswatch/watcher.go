/*
Package fswatch drives the coalescing pipeline from filesystem events.

It is the development host: a watched directory plays the role of a node
tree and its files play the nodes, so the full pipeline can be exercised
without embedding into a real editor. File creation maps to a node-creation
wave (add_node followed by the closing tree_update), writes map to property
updates, removals to node-removal waves, and chmod churn to the generic
node_update echo that the pipeline discards as noise.
*/
package fswatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/swell/pkg/bridge"
)

// TreeType is the subject type reported for the watched directory.
const TreeType = "directory"

// Watcher observes one directory and feeds a Bridge.
type Watcher struct {
	root   string
	bridge *bridge.Bridge
	logger *slog.Logger
}

// Option configures the Watcher.
type Option func(*Watcher)

// WithLogger sets the logger for watch lifecycle and errors.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New creates a watcher for the given directory. The directory is not
// touched until Run.
func New(root string, b *bridge.Bridge, opts ...Option) *Watcher {
	w := &Watcher{
		root:   root,
		bridge: b,
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return w
}

// Run watches the directory until the context is cancelled. All events are
// dispatched from this single goroutine, which is what keeps the downstream
// Coordinator's single-threaded contract intact.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.root, err)
	}

	w.logger.Info("watching directory", "dir", w.root)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.dispatch(ctx, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "err", err)
		}
	}
}

// dispatch translates one filesystem event into bridge calls.
func (w *Watcher) dispatch(ctx context.Context, event fsnotify.Event) {
	nodeType, name := w.subjectFor(event.Name)

	switch {
	case event.Has(fsnotify.Create):
		w.bridge.NodeAdded(ctx, nodeType, name)
		w.bridge.TreeChanged(ctx, TreeType, w.treeName())

	case event.Has(fsnotify.Write):
		w.bridge.PropertyChanged(ctx, nodeType, name)

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.bridge.NodeFreed(ctx, nodeType, name)
		w.bridge.TreeChanged(ctx, TreeType, w.treeName())

	case event.Has(fsnotify.Chmod):
		// Metadata churn carries no intent; it flows in as the generic echo
		// and the pipeline drops it.
		w.bridge.NodeChanged(ctx, nodeType, name)
	}
}

// subjectFor derives a node subject from a path: the type is the file
// extension (or "file" when there is none) and the name is the path relative
// to the watched root.
func (w *Watcher) subjectFor(path string) (nodeType, name string) {
	nodeType = strings.TrimPrefix(filepath.Ext(path), ".")
	if nodeType == "" {
		nodeType = "file"
	}

	name = filepath.Base(path)
	if rel, err := filepath.Rel(w.root, path); err == nil && !strings.HasPrefix(rel, "..") {
		name = rel
	}
	return nodeType, name
}

func (w *Watcher) treeName() string {
	return filepath.Base(w.root)
}
