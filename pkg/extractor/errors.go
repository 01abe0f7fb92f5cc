package extractor

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the typed errors below.
var (
	ErrInputOpen     = errors.New("cannot open input")
	ErrOutputOpen    = errors.New("cannot open output")
	ErrMalformedLine = errors.New("malformed matching line")
)

// InputOpenError is returned when the input file cannot be opened for reading.
type InputOpenError struct {
	Path string
	Err  error
}

func (e *InputOpenError) Error() string {
	return fmt.Sprintf("opening input %s: %v", e.Path, e.Err)
}

func (e *InputOpenError) Unwrap() []error { return []error{ErrInputOpen, e.Err} }

// OutputOpenError is returned when the output file cannot be created or truncated.
type OutputOpenError struct {
	Path string
	Err  error
}

func (e *OutputOpenError) Error() string {
	return fmt.Sprintf("opening output %s: %v", e.Path, e.Err)
}

func (e *OutputOpenError) Unwrap() []error { return []error{ErrOutputOpen, e.Err} }

// MalformedLineError is returned for a line that starts with the marker but
// has too few tokens to hold the value field.
type MalformedLineError struct {
	Source  string
	LineNum int
	Tokens  int
	Line    string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d: %q line has %d token(s), need at least %d: %q",
		e.Source, e.LineNum, Marker, e.Tokens, FieldIndex+1, e.Line)
}

func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedLine }
