// Package timeline turns a record list into a chronologically sorted,
// duration-annotated sequence of entries.
package timeline

import (
	"sort"
	"time"

	"github.com/okian/careerlens/internal/domain/calendar"
	"github.com/okian/careerlens/internal/domain/model"
)

// Build returns the timeline entries for records, sorted by start date with
// ties kept in input order. Records without a usable date range are left out.
func Build(records []model.Record, vocab Vocabulary, now time.Time) []model.TimelineEntry {
	entries := make([]model.TimelineEntry, 0, len(records))
	for i, r := range records {
		span, ok := calendar.Effective(r, now)
		if !ok {
			continue
		}
		entries = append(entries, model.TimelineEntry{
			Index:          i,
			Record:         r,
			Start:          span.Start,
			End:            span.End,
			DurationMonths: max(calendar.MonthsBetween(span.Start, span.End), 0),
			Ongoing:        span.Ongoing,
			Level:          vocab.Classify(r.LevelLabel),
		})
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Start.Before(entries[b].Start)
	})
	return entries
}
