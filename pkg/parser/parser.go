package parser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// LineReader implements LogSource for a single file or reader.
// Unlike bufio.Scanner it keeps line terminators and has no line length limit.
type LineReader struct {
	path   string
	source string

	file        *os.File
	reader      *bufio.Reader
	currentLine int
	done        bool
}

// NewLineReader creates a LogSource that reads from the file at path.
// The file is opened on the first call to Next.
func NewLineReader(path string) *LineReader {
	return &LineReader{
		path:   path,
		source: path,
	}
}

// NewReaderSource creates a LogSource over an already open reader.
// Close does not close r.
func NewReaderSource(name string, r io.Reader) *LineReader {
	return &LineReader{
		source: name,
		reader: bufio.NewReader(r),
	}
}

// Open opens the underlying file if it is not open yet. Calling it is
// optional; Next opens the file on demand.
func (s *LineReader) Open() error {
	if s.reader != nil {
		return nil
	}

	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", s.path, err)
	}

	s.file = f
	s.reader = bufio.NewReader(f)
	return nil
}

// Next returns the next line, including its trailing newline.
// A final line without a newline is returned as-is.
// Returns io.EOF once a read yields no bytes.
func (s *LineReader) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.done {
		return nil, io.EOF
	}

	if err := s.Open(); err != nil {
		return nil, err
	}

	raw, err := s.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading %s: %w", s.source, err)
	}
	if err != nil {
		s.done = true
		if raw == "" {
			return nil, io.EOF
		}
	}

	s.currentLine++
	return &Line{
		Raw:     raw,
		Source:  s.source,
		LineNum: s.currentLine,
	}, nil
}

// Source returns the name lines are attributed to.
func (s *LineReader) Source() string {
	return s.source
}

// Close releases resources.
func (s *LineReader) Close() error {
	s.done = true
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		s.reader = nil
		return err
	}
	return nil
}
