package recommend_test

import (
	"testing"

	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/recommend"
	. "github.com/smartystreets/goconvey/convey"
)

func findings(n int) []model.Finding {
	return make([]model.Finding, n)
}

func TestRecommend(t *testing.T) {
	Convey("Given no records", t, func() {
		Convey("Then there are no messages", func() {
			So(recommend.Recommend(recommend.Input{}), ShouldBeEmpty)
		})
	})

	Convey("Given a clean record set", t, func() {
		recs := recommend.Recommend(recommend.Input{Stats: model.Stats{Total: 3, Completed: 3}})

		Convey("Then a single success message is returned", func() {
			So(recs, ShouldResemble, []model.Recommendation{
				{Severity: model.SeveritySuccess, Message: "All records complete and consistent."},
			})
		})
	})

	Convey("Given every rule firing", t, func() {
		recs := recommend.Recommend(recommend.Input{
			Duplicates:  findings(2),
			Regressions: findings(1),
			Gaps:        findings(3),
			Stats:       model.Stats{Total: 6, Ongoing: 1, Incomplete: 2},
		})

		Convey("Then messages follow the fixed rule order", func() {
			So(recs, ShouldResemble, []model.Recommendation{
				{Severity: model.SeverityError, Message: "2 duplicate record(s) found."},
				{Severity: model.SeverityWarning, Message: "Progression appears inconsistent."},
				{Severity: model.SeverityInfo, Message: "3 gap(s) detected; consider documenting them."},
				{Severity: model.SeverityInfo, Message: "1 ongoing record(s); add completion info when finished."},
				{Severity: model.SeverityWarning, Message: "2 incomplete record(s); fill in the required fields."},
			})
		})

		Convey("Then the tally counts errors and warnings together", func() {
			achievements, warnings := recommend.Tally(recs)
			So(achievements, ShouldEqual, 0)
			So(warnings, ShouldEqual, 3)
		})
	})

	Convey("Given only an ongoing record", t, func() {
		recs := recommend.Recommend(recommend.Input{Stats: model.Stats{Total: 1, Ongoing: 1}})

		Convey("Then the info message suppresses the success message", func() {
			So(len(recs), ShouldEqual, 1)
			So(recs[0].Severity, ShouldEqual, model.SeverityInfo)
			So(recs[0].Message, ShouldContainSubstring, "ongoing record")
		})
	})
}
