// Package viewmodel turns raw aggregate rows into the display shapes the dashboard renders.
//
// The one rule that matters here is the rounding policy: every percentage is
// round(part/total*1000)/10, giving exactly one decimal place, and a zero total
// always produces 0 rather than NaN. Every widget goes through these helpers so
// the whole dashboard rounds the same way.
package viewmodel

import (
	"math"
	"strconv"
)

// Metric is one labeled row of a normalized distribution
type Metric struct {
	Label      string  `json:"label"`
	Value      int64   `json:"value"`
	Percentage float64 `json:"percentage"`
}

// Row is a raw labeled count before normalization
type Row struct {
	Label string
	Value int64
}

// Percent returns part/total as a percentage rounded to one decimal place
// A zero or negative total yields 0, never NaN or Inf
func Percent(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// PercentOfFraction converts an upstream 0..1 fraction to a one-decimal percentage
func PercentOfFraction(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Round(f*1000) / 10
}

// RatioString formats a one-decimal percentage for part of total
// total == 0 yields the string "0.0"
func RatioString(part, total int64) string {
	return strconv.FormatFloat(Percent(part, total), 'f', 1, 64)
}

// Distribution normalizes raw rows into percentage metrics
// The denominator is the sum over ALL rows and is fixed before rows with a
// non-positive value are dropped, so hidden rows still weigh the percentages
func Distribution(rows []Row) []Metric {
	var total int64
	for _, r := range rows {
		total += r.Value
	}

	out := make([]Metric, 0, len(rows))
	for _, r := range rows {
		if r.Value <= 0 {
			continue
		}
		out = append(out, Metric{
			Label:      Relabel(r.Label),
			Value:      r.Value,
			Percentage: Percent(r.Value, total),
		})
	}
	return out
}

// RatioPair is a two-way split such as team versus individual usage
type RatioPair struct {
	Left  Metric `json:"left"`
	Right Metric `json:"right"`
}

// NewRatioPair builds a two-way split where each side is a percentage of the combined total
func NewRatioPair(leftLabel string, left int64, rightLabel string, right int64) RatioPair {
	total := left + right
	return RatioPair{
		Left:  Metric{Label: Relabel(leftLabel), Value: left, Percentage: Percent(left, total)},
		Right: Metric{Label: Relabel(rightLabel), Value: right, Percentage: Percent(right, total)},
	}
}

// Merged is one output row of MergeBreakdown: the primary value first,
// then one value per secondary series in call order
type Merged struct {
	Label  string  `json:"label"`
	Values []int64 `json:"values"`
}

// MergeBreakdown left-joins secondary series onto the primary by label
// Output preserves primary order and length exactly; labels absent from a
// secondary contribute 0, and secondary-only labels are dropped
func MergeBreakdown(primary []Row, secondaries ...[]Row) []Merged {
	index := make([]map[string]int64, len(secondaries))
	for i, sec := range secondaries {
		m := make(map[string]int64, len(sec))
		for _, r := range sec {
			m[r.Label] = r.Value
		}
		index[i] = m
	}

	out := make([]Merged, len(primary))
	for i, p := range primary {
		vals := make([]int64, 1+len(secondaries))
		vals[0] = p.Value
		for j, m := range index {
			vals[1+j] = m[p.Label]
		}
		out[i] = Merged{Label: p.Label, Values: vals}
	}
	return out
}
