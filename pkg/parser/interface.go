package parser

import (
	"context"
	"errors"
	"io"
	"iter"
)

// LogSource provides an iterator over raw log lines.
// Implementations must be safe for sequential access (not concurrent).
type LogSource interface {
	// Next returns the next line.
	// Returns io.EOF when no more lines are available.
	Next(ctx context.Context) (*Line, error)

	// Close releases any resources held by the source.
	Close() error
}

// Lines returns the lines of src as a finite, single-use sequence.
// A read error is yielded once with a nil line and ends the sequence;
// io.EOF ends it silently.
func Lines(ctx context.Context, src LogSource) iter.Seq2[*Line, error] {
	return func(yield func(*Line, error) bool) {
		for {
			line, err := src.Next(ctx)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}
