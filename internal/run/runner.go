// Package run sequences one exploration: fetch the weekly scoreboard,
// persist the raw response, print the game summary, then the structure
// inspection.
package run

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/kvckarthik/sportsData/internal/config"
	"github.com/kvckarthik/sportsData/internal/jsontree"
	"github.com/kvckarthik/sportsData/internal/logging"
	"github.com/kvckarthik/sportsData/internal/metrics"
	"github.com/kvckarthik/sportsData/internal/providers"
	"github.com/kvckarthik/sportsData/internal/report"
	"github.com/kvckarthik/sportsData/internal/snapshots"
)

var rule = strings.Repeat("=", 80)

// Runner drives one fetch-persist-report cycle.
type Runner struct {
	cfg      config.Config
	logger   *slog.Logger
	metrics  *metrics.Recorder
	provider providers.ScoreboardProvider
	writer   *snapshots.Writer
	store    *snapshots.Store
	out      io.Writer
	now      func() time.Time
}

// New constructs a runner with default provider wiring for the
// configured provider name.
func New(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, out io.Writer) *Runner {
	return NewWithProvider(cfg, logger, recorder, out, buildProvider(cfg, logger))
}

// NewWithProvider constructs a runner around an explicit provider,
// primarily for tests.
func NewWithProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, out io.Writer, provider providers.ScoreboardProvider) *Runner {
	return &Runner{
		cfg:      cfg,
		logger:   logger,
		metrics:  recorder,
		provider: provider,
		writer:   snapshots.NewWriter(cfg.Output.Dir),
		store:    snapshots.NewStore(cfg.Output.Dir),
		out:      out,
		now:      time.Now,
	}
}

// Run executes the pipeline. A failed fetch prints a notice and ends the
// run normally; a failed snapshot write is returned as an error.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, "NFL SCOREBOARD EXPLORATION")
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out)

	if prior := r.store.Runs(); len(prior) > 0 {
		logging.Info(r.logger, "found earlier snapshots",
			slog.Int(logging.FieldCount, len(prior)),
			slog.String(logging.FieldPath, r.writer.BasePath()),
		)
	}

	query := providers.Query{Year: r.cfg.Season.Year, Week: r.cfg.Season.Week}

	start := r.now()
	doc, err := r.provider.FetchScoreboard(ctx, query)
	r.metrics.RecordFetchAttempt(r.cfg.Provider, time.Since(start), err)
	if err != nil {
		logging.Error(r.logger, "scoreboard fetch failed", err,
			slog.String(logging.FieldProvider, r.cfg.Provider),
		)
		fmt.Fprintln(r.out, "Failed to fetch data. Exiting.")
		return nil
	}
	r.metrics.RecordEvents(r.cfg.Provider, len(doc.Scoreboard.Events))

	path, err := r.writer.WriteScoreboard(doc.Raw, start)
	r.metrics.RecordSnapshotWrite(err)
	if err != nil {
		return fmt.Errorf("saving raw response: %w", err)
	}
	logging.Info(r.logger, "saved raw response", slog.String(logging.FieldPath, path))
	fmt.Fprintf(r.out, "Saved raw response to: %s\n\n", path)

	report.Summary(r.out, doc.Scoreboard)

	tree, err := jsontree.Parse(doc.Raw)
	if err != nil {
		// The payload already decoded once, so this should not happen;
		// the summary above is still worth keeping on screen.
		logging.Error(r.logger, "raw document inspection failed", err)
	} else {
		report.Inspection(r.out, tree)
	}

	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, "EXPLORATION COMPLETE")
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Next steps:")
	fmt.Fprintf(r.out, "  1. Check %s/ for the full JSON\n", r.writer.BasePath())
	fmt.Fprintln(r.out, "  2. Manually inspect the JSON to see all available fields")
	fmt.Fprintln(r.out, "  3. Note any interesting fields for later use")
	fmt.Fprintln(r.out)

	return nil
}
