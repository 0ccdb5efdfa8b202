package cli

import (
	"context"
	"fmt"

	swell "github.com/aretw0/swell"
	"github.com/aretw0/swell/internal/logging"
	"github.com/aretw0/swell/internal/presentation/tui"
	"github.com/aretw0/swell/pkg/adapters/debuglog"
	"github.com/aretw0/swell/pkg/adapters/replay"
	"github.com/aretw0/swell/pkg/bridge"
)

// ReplayOptions configures a replay run.
type ReplayOptions struct {
	Journal     string // journal backend: memory (default), redis or file
	RedisAddr   string
	JournalPath string // file backend location
	Plain       bool   // skip the glamour renderer
	Debug       bool
}

// RunReplay feeds a fixture through a fresh pipeline and prints the report.
func RunReplay(path string, opts ReplayOptions) error {
	logger := newLogger(opts.Debug)

	steps, err := replay.Load(path)
	if err != nil {
		return err
	}
	for _, finding := range replay.Lint(steps) {
		printSystemMessage("%s", finding)
	}

	journal, closeJournal, err := OpenJournal(opts.Journal, JournalConfig{
		RedisAddr: opts.RedisAddr,
		Path:      opts.JournalPath,
	}, logger)
	if err != nil {
		return err
	}
	defer closeJournal()

	coordOpts := []swell.Option{
		swell.WithLogger(logger),
		swell.WithJournal(journal),
	}
	if opts.Debug {
		coordOpts = append(coordOpts, swell.WithSink(debuglog.New(nil, logging.ForComponent(logger, "trace"))))
	}
	coord := swell.New(coordOpts...)

	ctx := context.Background()
	if err := replay.Feed(ctx, bridge.New(coord), steps); err != nil {
		return err
	}
	if pending := coord.Pending(); pending > 0 {
		printSystemMessage("%d records still buffered; the fixture never closed its last wave.", pending)
	}

	changes, err := journal.Recent(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	return printMarkdown(replay.Summary(steps, changes), opts.Plain)
}

// printMarkdown renders through glamour unless plain output was requested.
func printMarkdown(markdown string, plain bool) error {
	if plain {
		fmt.Print(markdown)
		return nil
	}
	render := tui.NewRenderer()
	out, err := render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return nil
	}
	fmt.Print(out)
	return nil
}
