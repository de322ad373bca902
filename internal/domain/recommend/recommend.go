// Package recommend maps aggregated findings to advisory messages.
package recommend

import (
	"fmt"

	"github.com/okian/careerlens/internal/domain/model"
)

// Input bundles the detector outputs and stats the rules look at.
type Input struct {
	Duplicates  []model.Finding
	Regressions []model.Finding
	Gaps        []model.Finding
	Stats       model.Stats
}

// rule yields at most one message.
type rule func(Input) (model.Recommendation, bool)

// rules run in this order; the success rule is applied separately.
var rules = []rule{
	func(in Input) (model.Recommendation, bool) {
		return model.Recommendation{
			Severity: model.SeverityError,
			Message:  fmt.Sprintf("%d duplicate record(s) found.", len(in.Duplicates)),
		}, len(in.Duplicates) > 0
	},
	func(in Input) (model.Recommendation, bool) {
		return model.Recommendation{
			Severity: model.SeverityWarning,
			Message:  "Progression appears inconsistent.",
		}, len(in.Regressions) > 0
	},
	func(in Input) (model.Recommendation, bool) {
		return model.Recommendation{
			Severity: model.SeverityInfo,
			Message:  fmt.Sprintf("%d gap(s) detected; consider documenting them.", len(in.Gaps)),
		}, len(in.Gaps) > 0
	},
	func(in Input) (model.Recommendation, bool) {
		return model.Recommendation{
			Severity: model.SeverityInfo,
			Message:  fmt.Sprintf("%d ongoing record(s); add completion info when finished.", in.Stats.Ongoing),
		}, in.Stats.Ongoing > 0
	},
	func(in Input) (model.Recommendation, bool) {
		return model.Recommendation{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("%d incomplete record(s); fill in the required fields.", in.Stats.Incomplete),
		}, in.Stats.Incomplete > 0
	},
}

// Recommend evaluates the rule table. When no rule fires on a non-empty
// record list a single success message is returned.
func Recommend(in Input) []model.Recommendation {
	out := []model.Recommendation{}
	for _, r := range rules {
		if rec, ok := r(in); ok {
			out = append(out, rec)
		}
	}
	if len(out) == 0 && in.Stats.Total > 0 {
		out = append(out, model.Recommendation{
			Severity: model.SeveritySuccess,
			Message:  "All records complete and consistent.",
		})
	}
	return out
}

// Tally splits recommendations into achievements (success) and warnings
// (warning or error). Info messages count toward neither.
func Tally(recs []model.Recommendation) (achievements, warnings int) {
	for _, r := range recs {
		switch r.Severity {
		case model.SeveritySuccess:
			achievements++
		case model.SeverityWarning, model.SeverityError:
			warnings++
		case model.SeverityInfo:
		}
	}
	return achievements, warnings
}
