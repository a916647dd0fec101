package finextract

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/finextract-go/pkg/finextract/models"
	"github.com/ukaji3/finextract-go/pkg/finextract/output"
)

// Pipeline runs Extract and Normalize per workbook, then aggregates all rows
// into one master table and writes it out.
type Pipeline struct {
	opts   Options
	logger *slog.Logger
}

// Result describes a completed run.
type Result struct {
	// Files lists the processed workbooks in processing order.
	Files []string
	// Table is the consolidated master table.
	Table models.MasterTable
	// OutputPath is where the table was written, empty if it was not.
	OutputPath string
}

// NewPipeline creates a pipeline. A nil logger falls back to slog.Default.
func NewPipeline(opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{opts: opts, logger: logger}
}

// Run discovers the input workbooks, processes them and writes the master
// CSV to Options.OutputPath. Any failure aborts the whole run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	files, err := Discover(p.opts.InputDir, p.opts.Pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s matching %q", ErrNoInputFiles, p.opts.InputDir, p.opts.Pattern)
	}
	p.logger.Info("Discovered input files",
		slog.String("dir", p.opts.InputDir),
		slog.Int("count", len(files)))

	table, err := p.Process(ctx, files)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: files, Table: table}
	if p.opts.OutputPath != "" {
		if err := output.WriteFile(p.opts.OutputPath, table); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", p.opts.OutputPath, err)
		}
		result.OutputPath = p.opts.OutputPath
		p.logger.Info("Wrote master table",
			slog.String("path", p.opts.OutputPath),
			slog.Int("rows", len(table)))
	}
	return result, nil
}

// Process extracts and normalizes files and returns the master table with
// rows in the order of files. Up to Options.Workers files are processed at
// once; the first error cancels the remaining work.
func (p *Pipeline) Process(ctx context.Context, files []string) (models.MasterTable, error) {
	perFile := make([][]models.PeriodRow, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.WorkerCount())
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows, err := p.processFile(path)
			if err != nil {
				return err
			}
			perFile[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agg := NewAggregator()
	for _, rows := range perFile {
		agg.Add(rows)
	}

	table, err := agg.Table()
	if err != nil {
		return nil, err
	}
	p.logger.Info("Aggregated master table",
		slog.Int("files", agg.Files()),
		slog.Int("rows", len(table)))
	return table, nil
}

func (p *Pipeline) processFile(path string) ([]models.PeriodRow, error) {
	p.logger.Info("Processing file", slog.String("file", path))

	table, err := Extract(path, p.opts)
	if err != nil {
		return nil, err
	}

	rows, err := Normalize(table, p.opts)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Normalized file",
		slog.String("file", path),
		slog.String("layout", table.Layout.String()),
		slog.Int("periods", len(table.Periods())),
		slog.Int("rows", len(rows)))
	return rows, nil
}
