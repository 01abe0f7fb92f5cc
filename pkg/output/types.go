// Package output provides formatting and output generation for latency reports.
package output

import (
	"time"

	"github.com/ccollicutt/latparse/pkg/extractor"
	"github.com/ccollicutt/latparse/pkg/stats"
)

// Report is the complete stats output.
type Report struct {
	// Summary provides aggregate latency statistics.
	Summary *stats.Summary `json:"summary" yaml:"summary"`

	// Extraction holds the line counters of the extraction run.
	Extraction *extractor.Result `json:"extraction" yaml:"extraction"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Metadata provides context about the run.
type Metadata struct {
	// Source is the log file that was read.
	Source string `json:"source" yaml:"source"`

	// Marker is the first token that selected lines.
	Marker string `json:"marker" yaml:"marker"`

	// AnalyzedAt is when the run finished.
	AnalyzedAt time.Time `json:"analyzed_at" yaml:"analyzed_at"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NewReport creates a Report from an extraction result and its summary.
func NewReport(result *extractor.Result, summary *stats.Summary, start, end time.Time) *Report {
	if result == nil {
		result = &extractor.Result{}
	}
	if summary == nil {
		summary = &stats.Summary{}
	}
	return &Report{
		Summary:    summary,
		Extraction: result,
		Metadata: Metadata{
			Source:     result.Source,
			Marker:     extractor.Marker,
			AnalyzedAt: end,
			Duration:   end.Sub(start),
		},
	}
}

// HasValues returns true if at least one value parsed as a number.
func (r *Report) HasValues() bool {
	return r.Summary.HasValues()
}

// QuietReport is the flat form written in quiet mode: the summary fields
// followed by the extraction line counters.
type QuietReport struct {
	stats.Summary `yaml:",inline"`

	LinesRead    int `json:"lines_read" yaml:"lines_read"`
	LinesMatched int `json:"lines_matched" yaml:"lines_matched"`
}

// Quiet returns the quiet form of the report.
func (r *Report) Quiet() *QuietReport {
	q := &QuietReport{Summary: *r.Summary}
	if r.Extraction != nil {
		q.LinesRead = r.Extraction.LinesRead
		q.LinesMatched = r.Extraction.LinesMatched
	}
	return q
}
