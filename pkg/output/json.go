package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter formats latency reports as indented JSON. Durations are
// written in nanoseconds, the encoding/json default for time.Duration.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report as JSON. Quiet mode writes one flat object with
// the summary and the line counters.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		return encoder.Encode(report.Quiet())
	}
	return encoder.Encode(report)
}
