// Package main provides the CLI entry point for finextract-go.
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ukaji3/finextract-go/internal/config"
	"github.com/ukaji3/finextract-go/internal/logging"
	"github.com/ukaji3/finextract-go/pkg/finextract"
)

type flags struct {
	configPath string
	outputPath string
	pattern    string
	sheetName  string
	skipRows   int
	workers    int
	logLevel   string
	summary    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "finextract [input-dir]",
		Short: "Consolidate income statements from earnings report workbooks",
		Long: `finextract-go reads the INCOME_STATEMENT sheet of every <year>-<quarter>
workbook in a directory and writes one long-form CSV with a row per metric and period.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output CSV path (default: master_financials.csv)")
	rootCmd.Flags().StringVar(&f.pattern, "pattern", "", "Glob for input workbooks (default: *.xls*)")
	rootCmd.Flags().StringVar(&f.sheetName, "sheet", "", "Sheet holding the income statement (default: INCOME_STATEMENT)")
	rootCmd.Flags().IntVar(&f.skipRows, "skip-rows", 0, "Rows above the statement region (default: 18)")
	rootCmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Workbooks processed concurrently (default: 1)")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&f.summary, "summary", false, "Print per-metric statistics after writing")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	// Flags override file and environment
	if len(args) == 1 {
		cfg.InputDir = args[0]
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputPath = f.outputPath
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = f.pattern
	}
	if cmd.Flags().Changed("sheet") {
		cfg.SheetName = f.sheetName
	}
	if cmd.Flags().Changed("skip-rows") {
		cfg.SkipRows = f.skipRows
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := cfg.Options()
	result, err := finextract.NewPipeline(opts, logger).Run(cmd.Context())
	if err != nil {
		logger.Error("Run failed", "error", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows from %d files to %s\n",
		len(result.Table), len(result.Files), result.OutputPath)

	if f.summary {
		summaries, err := finextract.Summarize(result.Table, opts.AllowedMetrics())
		if err != nil {
			return fmt.Errorf("summary failed: %w", err)
		}
		writeSummary(cmd.OutOrStdout(), summaries)
	}

	return nil
}

func writeSummary(w io.Writer, summaries []finextract.MetricSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Metric\tCount\tSum\tMean\tMin\tMax\t")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t\n", s.Metric, s.Count, s.Sum, s.Mean, s.Min, s.Max)
	}
	tw.Flush()
}
