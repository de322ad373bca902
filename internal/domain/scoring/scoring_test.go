package scoring_test

import (
	"math"
	"testing"

	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func success() []model.Recommendation {
	return []model.Recommendation{{Severity: model.SeveritySuccess}}
}

func TestCalculator(t *testing.T) {
	Convey("Given the default calculator", t, func() {
		c := scoring.NewCalculator()

		Convey("When there is no data", func() {
			Convey("Then the base score is returned", func() {
				So(c.Score(scoring.Input{}), ShouldEqual, 50)
			})
		})

		Convey("When a clean, long, diverse history is scored", func() {
			in := scoring.Input{
				Recommendations: success(),
				Stats: model.Stats{
					ExperienceYears:       6,
					AverageDurationMonths: 30,
					DistinctPrimaryLabels: 2,
				},
			}

			Convey("Then each bonus is added", func() {
				// 50 + 10 + 12 + 10 + 6
				So(c.Score(in), ShouldEqual, 88)
			})
		})

		Convey("When tenure and diversity exceed their caps", func() {
			in := scoring.Input{
				Recommendations: success(),
				Stats: model.Stats{
					ExperienceYears:       40,
					AverageDurationMonths: 48,
					DistinctPrimaryLabels: 9,
				},
			}

			Convey("Then the result is clamped to 100", func() {
				So(c.Score(in), ShouldEqual, 100)
			})
		})

		Convey("When warnings and gaps dominate", func() {
			recs := make([]model.Recommendation, 0, 12)
			for range 12 {
				recs = append(recs, model.Recommendation{Severity: model.SeverityWarning})
			}
			in := scoring.Input{Recommendations: recs, Gaps: 4}

			Convey("Then the result is clamped to 0", func() {
				So(c.Score(in), ShouldEqual, 0)
			})
		})

		Convey("When info messages are present", func() {
			in := scoring.Input{Recommendations: []model.Recommendation{{Severity: model.SeverityInfo}}, Gaps: 1}

			Convey("Then only the gap penalty applies", func() {
				So(c.Score(in), ShouldEqual, 45)
			})
		})
	})

	Convey("Given monotonic terms", t, func() {
		c := scoring.NewCalculator()
		base := scoring.Input{Stats: model.Stats{ExperienceYears: 1, AverageDurationMonths: 12, DistinctPrimaryLabels: 1}}

		Convey("Then more of a positive term never lowers the score", func() {
			more := base
			more.Stats.ExperienceYears = 3
			more.Stats.AverageDurationMonths = 40
			more.Stats.DistinctPrimaryLabels = 3
			So(c.Score(more), ShouldBeGreaterThanOrEqualTo, c.Score(base))
		})

		Convey("Then more gaps never raise the score", func() {
			worse := base
			worse.Gaps = 2
			So(c.Score(worse), ShouldBeLessThanOrEqualTo, c.Score(base))
		})
	})

	Convey("Given custom weights", t, func() {
		w := scoring.DefaultWeights()
		w.Base = 70
		w.Gap = 10

		Convey("Then valid weights are used", func() {
			c := scoring.NewCalculator(scoring.WithWeights(w))
			So(c.Score(scoring.Input{Gaps: 2}), ShouldEqual, 50)
		})

		Convey("Then negative or non-finite weights are rejected", func() {
			bad := w
			bad.Warning = -5
			So(bad.Valid(), ShouldBeFalse)
			So(scoring.NewCalculator(scoring.WithWeights(bad)).Weights(), ShouldResemble, scoring.DefaultWeights())

			nan := w
			nan.Base = math.NaN()
			So(nan.Valid(), ShouldBeFalse)
		})
	})
}
