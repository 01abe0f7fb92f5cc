// Package stats summarizes extracted latency values.
package stats

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// MaxInvalidSamples bounds how many unparsable values a Summary keeps.
const MaxInvalidSamples = 10

// Summary contains aggregate statistics over a set of latency values.
type Summary struct {
	// Count is the number of values that parsed as numbers.
	Count int `json:"count" yaml:"count"`

	// Invalid is the number of values that did not parse.
	Invalid int `json:"invalid" yaml:"invalid"`

	// InvalidSamples holds the first few unparsable values, trimmed.
	InvalidSamples []string `json:"invalid_samples,omitempty" yaml:"invalid_samples,omitempty"`

	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`

	// Percentiles use the nearest-rank method.
	P50 float64 `json:"p50" yaml:"p50"`
	P90 float64 `json:"p90" yaml:"p90"`
	P99 float64 `json:"p99" yaml:"p99"`
}

// Summarize parses values and computes their summary. Values keep whatever
// trailing newline they were extracted with; surrounding whitespace is
// ignored here. Unparsable values are counted, never fatal.
func Summarize(values []string) *Summary {
	s := &Summary{}
	nums := make([]float64, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			s.Invalid++
			if len(s.InvalidSamples) < MaxInvalidSamples {
				s.InvalidSamples = append(s.InvalidSamples, trimmed)
			}
			continue
		}
		nums = append(nums, f)
	}

	s.Count = len(nums)
	if s.Count == 0 {
		return s
	}

	slices.Sort(nums)
	s.Min = nums[0]
	s.Max = nums[len(nums)-1]

	var sum float64
	for _, n := range nums {
		sum += n
	}
	s.Mean = sum / float64(len(nums))

	var sq float64
	for _, n := range nums {
		d := n - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(len(nums)))

	s.P50 = Percentile(nums, 50)
	s.P90 = Percentile(nums, 90)
	s.P99 = Percentile(nums, 99)

	return s
}

// Percentile returns the nearest-rank percentile p (0-100] of sorted.
// sorted must be in ascending order. Returns 0 for an empty slice.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := int(math.Ceil(p * float64(len(sorted)) / 100))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

// HasValues reports whether at least one value parsed.
func (s *Summary) HasValues() bool {
	return s.Count > 0
}
