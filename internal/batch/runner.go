// Package batch evaluates many household files concurrently.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rgehrsitz/takehome/internal/calculation"
	"github.com/rgehrsitz/takehome/internal/config"
	"github.com/rgehrsitz/takehome/internal/domain"
)

// Result is the report of one input file
type Result struct {
	Path   string
	Report *domain.Report
}

// Runner fans files out over a bounded worker pool. Parser and Engine are
// shared across workers; both are read-only after construction.
type Runner struct {
	Parser *config.InputParser
	Engine *calculation.CalculationEngine
	// AsOfYear overrides the as_of_year of every file when non-zero.
	AsOfYear int
	Workers  int
	// Progress receives a progress bar when set.
	Progress io.Writer
	Logger   *slog.Logger
}

// NewRunner creates a runner with a single worker and no progress output
func NewRunner(engine *calculation.CalculationEngine) *Runner {
	return &Runner{
		Parser:  config.NewInputParser(),
		Engine:  engine,
		Workers: 1,
		Logger:  slog.Default(),
	}
}

// Run evaluates every path and returns the results in input order. The first
// failure cancels the remaining work.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files provided")
	}

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bar := r.newProgressBar(len(paths))
	var barMu sync.Mutex

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			report, err := r.runFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = Result{Path: path, Report: report}
			logger.Debug("batch file calculated", "path", path, "households", len(report.Results))

			if bar != nil {
				barMu.Lock()
				if err := bar.Add(1); err != nil {
					logger.Warn("Failed to update progress bar", "error", err)
				}
				barMu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) runFile(path string) (*domain.Report, error) {
	cfg, err := r.Parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if r.AsOfYear != 0 {
		cfg.AsOfYear = r.AsOfYear
	}
	return r.Engine.RunScenarios(cfg)
}

func (r *Runner) newProgressBar(total int) *progressbar.ProgressBar {
	if r.Progress == nil {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.Progress),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Calculating households..."),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(r.Progress)
		}),
	)
}
