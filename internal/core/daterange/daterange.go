// Package daterange models the inclusive day range every dashboard query is scoped to
package daterange

import (
	"time"

	ptime "retroboard/internal/platform/time"
)

// ParamLayout is the wire format the aggregate API expects for date bounds
const ParamLayout = "2006-01-02T15:04:05"

// DayLayout is the format the SPA sends for range endpoints
const DayLayout = "2006-01-02"

// Range is an inclusive day range. A zero endpoint means "unbounded on that side"
// Start is always normalized to 00:00:00 and End to 23:59:59 of their day
type Range struct {
	Start time.Time
	End   time.Time
}

// New builds a normalized Range from two day values. Zero inputs stay zero
func New(start, end time.Time) Range {
	r := Range{}
	if !start.IsZero() {
		r.Start = ptime.StartOfDay(start)
	}
	if !end.IsZero() {
		r.End = ptime.EndOfDay(end)
	}
	return r
}

// ParseDays parses two SPA day strings ("2006-01-02"). Empty strings stay zero
func ParseDays(start, end string) (Range, error) {
	var s, e time.Time
	var err error
	if start != "" {
		if s, err = time.Parse(DayLayout, start); err != nil {
			return Range{}, err
		}
	}
	if end != "" {
		if e, err = time.Parse(DayLayout, end); err != nil {
			return Range{}, err
		}
	}
	return New(s, e), nil
}

// Complete reports whether both endpoints are set
func (r Range) Complete() bool { return !r.Start.IsZero() && !r.End.IsZero() }

// Equal is value identity on the normalized boundaries
func (r Range) Equal(o Range) bool { return r.Start.Equal(o.Start) && r.End.Equal(o.End) }

// Params renders the query parameters for an upstream call
// Missing endpoints are omitted entirely so the upstream applies no filter on that side
func (r Range) Params() map[string]string {
	p := make(map[string]string, 2)
	if !r.Start.IsZero() {
		p["startDate"] = r.Start.Format(ParamLayout)
	}
	if !r.End.IsZero() {
		p["endDate"] = r.End.Format(ParamLayout)
	}
	return p
}

// Days renders the SPA-facing day strings, empty for unset endpoints
func (r Range) Days() (start, end string) {
	if !r.Start.IsZero() {
		start = r.Start.Format(DayLayout)
	}
	if !r.End.IsZero() {
		end = r.End.Format(DayLayout)
	}
	return start, end
}
