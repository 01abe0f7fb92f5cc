package output

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	s := report.Summary
	_, err := fmt.Fprintf(w, "latparse: %d values, p50=%s p90=%s p99=%s\n",
		s.Count, num(s.P50), num(s.P90), num(s.P99))
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	s := report.Summary

	fmt.Fprintln(w, "=== Latency Report ===")
	fmt.Fprintf(w, "Source: %s\n", report.Metadata.Source)
	fmt.Fprintln(w)

	if !s.HasValues() {
		fmt.Fprintf(w, "No %q values found\n", report.Metadata.Marker)
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		rows := []struct {
			name  string
			value float64
		}{
			{"min", s.Min},
			{"max", s.Max},
			{"mean", s.Mean},
			{"stddev", s.StdDev},
			{"p50", s.P50},
			{"p90", s.P90},
			{"p99", s.P99},
		}
		fmt.Fprintf(tw, "  count\t%d\n", s.Count)
		for _, row := range rows {
			fmt.Fprintf(tw, "  %s\t%s\n", row.name, num(row.value))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if s.Invalid > 0 {
		fmt.Fprintf(w, "\nInvalid values: %d\n", s.Invalid)
		if f.opts.Verbose {
			for _, v := range s.InvalidSamples {
				fmt.Fprintf(w, "  - %q\n", v)
			}
		}
	}

	fmt.Fprintln(w, "---")
	if f.opts.Verbose && report.Extraction != nil {
		e := report.Extraction
		fmt.Fprintf(w, "Lines read: %d, matched: %d\n", e.LinesRead, e.LinesMatched)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}
	_, err := fmt.Fprintf(w, "Summary: %d value(s), %d invalid\n", s.Count, s.Invalid)
	return err
}

func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
