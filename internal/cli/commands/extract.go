// Package commands implements the latparse subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/latparse/pkg/extractor"
)

// ExtractUse is the usage line of the extraction command.
const ExtractUse = "latparse <input_path> <output_path>"

// NewLogger creates the stderr logger shared by the commands.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// RunExtract is the RunE of the root command: it extracts the value field of
// every "Latency" line in args[0] into a freshly created args[1].
func RunExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := NewLogger(cmd.ErrOrStderr(), false)

	result, err := extractor.Run(ctx, args[0], args[1], extractor.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if result.LinesMatched == 0 {
		logger.Warn("no matching lines, output is empty",
			"marker", extractor.Marker,
			"source", result.Source,
			"lines", result.LinesRead,
			"output", result.Destination)
	}
	return nil
}
