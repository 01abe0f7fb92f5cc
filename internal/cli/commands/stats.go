package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/latparse/pkg/extractor"
	"github.com/ccollicutt/latparse/pkg/output"
	"github.com/ccollicutt/latparse/pkg/parser"
	"github.com/ccollicutt/latparse/pkg/stats"
)

// StatsOptions holds command-line options for the stats command.
type StatsOptions struct {
	Output  string
	Verbose bool
	Quiet   bool
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats <input_path>",
		Short: "Summarize Latency values without writing an output file",
		Long: `Extract the value field of every "Latency" line and print a summary:
count, min, max, mean, standard deviation and p50/p90/p99.

Lines are selected exactly as the extractor selects them, and a malformed
"Latency" line is still fatal. Values that are not numbers are counted as
invalid and skipped. Use "-" to read from standard input.

Exit codes:
  0 - Summary printed
  1 - Malformed "Latency" line
  2 - I/O or usage error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json|yaml)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show line counters, invalid values and debug logs")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, opts *StatsOptions) error {
	inputPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Fail on a bad format before reading anything
	formatter, err := output.NewFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	logger := NewLogger(cmd.ErrOrStderr(), opts.Verbose)

	src, closeSrc, err := openSource(cmd, inputPath)
	if err != nil {
		return err
	}
	defer closeSrc()

	start := time.Now()
	values, result, err := extractor.New(extractor.WithLogger(logger)).Values(ctx, src)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	summary := stats.Summarize(values)
	if summary.Invalid > 0 {
		logger.Warn("skipped values that are not numbers",
			"source", result.Source,
			"invalid", summary.Invalid)
	}

	report := output.NewReport(result, summary, start, time.Now())
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}

// openSource returns a line source for path, or for standard input when
// path is "-".
func openSource(cmd *cobra.Command, path string) (parser.LogSource, func(), error) {
	if path == "-" {
		return parser.NewReaderSource("stdin", cmd.InOrStdin()), func() {}, nil
	}

	src, err := extractor.OpenInput(path)
	if err != nil {
		return nil, nil, err
	}

	return src, func() { closeQuietly(src) }, nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
