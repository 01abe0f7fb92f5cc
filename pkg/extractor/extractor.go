// Package extractor pulls the value field out of "Latency" log lines.
//
// A line matches when its first space-separated token is exactly Marker.
// For every matching line the token at FieldIndex is copied to the output
// byte for byte: if it was the last token on the line it carries the line's
// newline with it, otherwise nothing separates it from the next value.
package extractor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ccollicutt/latparse/pkg/parser"
)

const (
	// Marker is the first token that selects a line.
	Marker = "Latency"

	// FieldIndex is the 0-based position of the value token on a matching line.
	FieldIndex = 5
)

// Result describes a completed (or aborted) extraction.
type Result struct {
	// Source is the input the lines were read from.
	Source string `json:"source" yaml:"source"`

	// Destination is the output path, empty when values were not written to a file.
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`

	// LinesRead is the number of lines consumed from the source.
	LinesRead int `json:"lines_read" yaml:"lines_read"`

	// LinesMatched is the number of lines whose first token was Marker.
	LinesMatched int `json:"lines_matched" yaml:"lines_matched"`

	// BytesWritten is the number of value bytes written to the output.
	BytesWritten int64 `json:"bytes_written" yaml:"bytes_written"`
}

// Extractor copies value tokens from matching lines.
type Extractor struct {
	logger *slog.Logger
}

// Option configures extractor behavior.
type Option func(*Extractor)

// WithLogger sets the logger used for run diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run extracts values from the file at inputPath into a freshly created file
// at outputPath. The input is opened before the output so that a missing
// input leaves any existing output untouched. Values written before an error
// stay on disk.
func Run(ctx context.Context, inputPath, outputPath string, opts ...Option) (*Result, error) {
	return New(opts...).Run(ctx, inputPath, outputPath)
}

// Run is the method form of the package-level Run.
func (e *Extractor) Run(ctx context.Context, inputPath, outputPath string) (result *Result, err error) {
	src, err := OpenInput(inputPath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	out, err := os.Create(outputPath) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, &OutputOpenError{Path: outputPath, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", outputPath, cerr)
		}
	}()

	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("writing %s: %w", outputPath, ferr)
		}
	}()

	result, err = e.Extract(ctx, src, w)
	if result != nil {
		result.Destination = outputPath
	}
	return result, err
}

// OpenInput opens the file at path as a line source. Open failures are
// returned as *InputOpenError carrying the underlying *fs.PathError.
func OpenInput(path string) (*parser.LineReader, error) {
	src := parser.NewLineReader(path)
	if err := src.Open(); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr
		}
		return nil, &InputOpenError{Path: path, Err: err}
	}
	return src, nil
}

// Extract reads every line from src and writes the value token of each
// matching line to w. It stops at the first error; the returned Result
// reflects the lines processed up to that point.
func (e *Extractor) Extract(ctx context.Context, src parser.LogSource, w io.Writer) (*Result, error) {
	result := &Result{}
	if named, ok := src.(interface{ Source() string }); ok {
		result.Source = named.Source()
	}

	err := e.each(ctx, src, result, func(value string) error {
		n, err := io.WriteString(w, value)
		result.BytesWritten += int64(n)
		if err != nil {
			return fmt.Errorf("writing value: %w", err)
		}
		return nil
	})

	e.logger.Debug("extraction finished",
		"source", result.Source,
		"lines", result.LinesRead,
		"matched", result.LinesMatched,
		"bytes", result.BytesWritten,
		"error", err != nil)

	return result, err
}

// Values collects the value tokens from src in input order instead of
// writing them.
func (e *Extractor) Values(ctx context.Context, src parser.LogSource) ([]string, *Result, error) {
	result := &Result{}
	if named, ok := src.(interface{ Source() string }); ok {
		result.Source = named.Source()
	}

	var values []string
	err := e.each(ctx, src, result, func(value string) error {
		values = append(values, value)
		return nil
	})
	return values, result, err
}

func (e *Extractor) each(ctx context.Context, src parser.LogSource, result *Result, emit func(string) error) error {
	for line, err := range parser.Lines(ctx, src) {
		if err != nil {
			return err
		}
		result.LinesRead++
		if result.Source == "" {
			result.Source = line.Source
		}

		value, ok, err := Field(line)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		result.LinesMatched++

		if err := emit(value); err != nil {
			return err
		}
	}
	return nil
}

// Field returns the value token of line and whether the line matched.
// A matching line without a token at FieldIndex yields a *MalformedLineError.
func Field(line *parser.Line) (string, bool, error) {
	tokens := line.Tokens()
	if tokens[0] != Marker {
		return "", false, nil
	}
	if len(tokens) <= FieldIndex {
		return "", true, &MalformedLineError{
			Source:  line.Source,
			LineNum: line.LineNum,
			Tokens:  len(tokens),
			Line:    line.Raw,
		}
	}
	return tokens[FieldIndex], true, nil
}

// IsMalformed reports whether err was caused by a malformed matching line.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedLine)
}
