package detect

import (
	"fmt"

	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/timeline"
)

// DefaultRegressionTolerance is the number of level steps a move may drop
// before it counts as a regression.
const DefaultRegressionTolerance = 2

// Regressions walks sorted timeline entries and reports each step down the
// level ladder larger than tolerance. Pairs with an unknown level are skipped.
func Regressions(entries []model.TimelineEntry, tolerance int) []model.Finding {
	findings := []model.Finding{}
	for i := 0; i+1 < len(entries); i++ {
		prev, next := entries[i], entries[i+1]
		if prev.Level == timeline.Unknown || next.Level == timeline.Unknown {
			continue
		}
		if prev.Level-next.Level <= tolerance {
			continue
		}
		findings = append(findings, model.Finding{
			Kind:    model.FindingRegression,
			Indices: []int{prev.Index, next.Index},
			Message: fmt.Sprintf("%q is %d levels below the preceding %q",
				next.Record.LevelLabel, prev.Level-next.Level, prev.Record.LevelLabel),
		})
	}
	return findings
}
