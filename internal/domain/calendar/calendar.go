// Package calendar parses the partial ISO dates used by profile forms and
// does month arithmetic on them.
package calendar

import (
	"strings"
	"time"

	"github.com/okian/careerlens/internal/domain/model"
)

// Accepted layouts, most specific first.
var layouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
}

// Parse reads a YYYY-MM, YYYY-MM-DD or RFC 3339 date. Impossible calendar
// dates (2021-02-30) are rejected. Blank input reports ok=false.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// MonthsBetween returns the whole calendar months from a to b; negative when b precedes a.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// Range is the effective date span of a record.
type Range struct {
	Start   time.Time
	End     time.Time
	Ongoing bool
}

// Local returns now's wall clock re-read as UTC, so that a caller's
// calendar month lines up with the UTC dates Parse returns.
func Local(now time.Time) time.Time {
	y, m, d := now.Date()
	h, mi, sec := now.Clock()
	return time.Date(y, m, d, h, mi, sec, now.Nanosecond(), time.UTC)
}

// Effective resolves a record's span against now. A record takes part in
// date-dependent analysis only when its start parses and is not after now,
// and its end is either blank (ongoing, ends now) or parses. An end before
// the start collapses the span onto the start.
func Effective(r model.Record, now time.Time) (Range, bool) {
	now = Local(now)
	start, ok := Parse(r.StartDate)
	if !ok || start.After(now) {
		return Range{}, false
	}
	if strings.TrimSpace(r.EndDate) == "" {
		return Range{Start: start, End: now, Ongoing: true}, true
	}
	end, ok := Parse(r.EndDate)
	if !ok {
		return Range{}, false
	}
	if end.Before(start) {
		end = start
	}
	return Range{Start: start, End: end}, true
}
