package detect

import (
	"fmt"
	"time"

	"github.com/okian/careerlens/internal/domain/calendar"
	"github.com/okian/careerlens/internal/domain/model"
)

// Overlaps reports every pair of records (i < j) whose effective date ranges
// intersect. Ranges are inclusive; a blank end date means the record runs until now.
func Overlaps(records []model.Record, now time.Time) []model.Finding {
	type span struct {
		index int
		calendar.Range
	}
	spans := make([]span, 0, len(records))
	for i, r := range records {
		if rg, ok := calendar.Effective(r, now); ok {
			spans = append(spans, span{index: i, Range: rg})
		}
	}

	findings := []model.Finding{}
	for a := 0; a < len(spans); a++ {
		for b := a + 1; b < len(spans); b++ {
			x, y := spans[a], spans[b]
			if x.Start.After(y.End) || x.End.Before(y.Start) {
				continue
			}
			findings = append(findings, model.Finding{
				Kind:    model.FindingOverlap,
				Indices: []int{x.index, y.index},
				Message: fmt.Sprintf("record %d overlaps record %d", x.index+1, y.index+1),
			})
		}
	}
	return findings
}
