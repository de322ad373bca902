// Package detect finds chronological gaps, overlapping ranges and level
// regressions in a record set.
package detect

import (
	"fmt"

	"github.com/okian/careerlens/internal/domain/calendar"
	"github.com/okian/careerlens/internal/domain/model"
)

// Gaps reports adjacent timeline entries separated by more than maxGapMonths.
// entries must already be sorted by start date, as timeline.Build returns them.
func Gaps(entries []model.TimelineEntry, maxGapMonths int) []model.Finding {
	findings := []model.Finding{}
	for i := 0; i+1 < len(entries); i++ {
		prev, next := entries[i], entries[i+1]
		months := calendar.MonthsBetween(prev.End, next.Start)
		if months <= maxGapMonths {
			continue
		}
		findings = append(findings, model.Finding{
			Kind:    model.FindingGap,
			Indices: []int{prev.Index, next.Index},
			Months:  months,
			Message: fmt.Sprintf("%d month gap between record %d and record %d", months, prev.Index+1, next.Index+1),
		})
	}
	return findings
}
