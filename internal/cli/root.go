// Package cli provides the command-line interface for latparse.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/latparse/internal/cli/commands"
	"github.com/ccollicutt/latparse/pkg/extractor"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitMalformed = 1
	ExitError     = 2
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command line args with the given streams and returns the
// exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	// Cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	// An existing input file wins over a subcommand or flag of the same name
	if len(args) == 2 && pathExists(args[0]) {
		args = append([]string{"--"}, args...)
	}

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCode(err)
	}
	return ExitOK
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, extractor.ErrMalformedLine):
		return ExitMalformed
	default:
		return ExitError
	}
}

// NewRootCommand creates the root cobra command. The root command itself is
// the extractor; stats and version are subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   commands.ExtractUse,
		Short: `Extract the value field of "Latency" log lines`,
		Long: `latparse reads a log file line by line and, for every line whose first
space-separated token is exactly "Latency", writes the sixth token to the
output file unchanged. The output file is created or truncated.

  Latency a b c d 12.5    ->  12.5
  Other x y z             ->  (skipped)

Lines are split on single spaces only. A "Latency" line with fewer than six
tokens stops the run; values already written stay in the output file.

Exit codes:
  0 - Extraction completed (an empty output file if nothing matched)
  1 - Malformed "Latency" line
  2 - I/O or usage error`,
		Args:          cobra.ExactArgs(2),
		RunE:          commands.RunExtract,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(newHelpCommand())

	// Add subcommands
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}

// newHelpCommand replaces cobra's help command. It is hidden, and it fails
// on anything that is not a command name instead of printing the root help,
// so "latparse help out.txt" never exits 0 without extracting.
func newHelpCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "help [command]",
		Short:  "Help about any command",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			target, rest, err := root.Find(args)
			if err != nil {
				return err
			}
			if len(rest) > 0 {
				return fmt.Errorf("unknown help topic %q", rest[0])
			}
			target.InitDefaultHelpFlag()
			return target.Help()
		},
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
