package analysis_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/okian/careerlens/internal/domain/analysis"
	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/scoring"
	"github.com/okian/careerlens/internal/domain/variant"
	. "github.com/smartystreets/goconvey/convey"
)

var now = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func mustEngine(opts ...analysis.Option) *analysis.Engine {
	e, err := analysis.New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func TestNew(t *testing.T) {
	Convey("Given engine options", t, func() {
		Convey("Then defaults produce an education engine", func() {
			e, err := analysis.New()
			So(err, ShouldBeNil)
			So(e.Variant().Domain, ShouldEqual, model.DomainEducation)
		})

		Convey("Then negative thresholds are rejected", func() {
			_, err := analysis.New(analysis.WithMaxGapMonths(-1))
			So(errors.Is(err, analysis.ErrInvalidConfig), ShouldBeTrue)

			_, err = analysis.New(analysis.WithRegressionTolerance(-3))
			So(errors.Is(err, analysis.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("Then negative weights are rejected", func() {
			w := scoring.DefaultWeights()
			w.Gap = -5
			_, err := analysis.New(analysis.WithWeights(w))
			So(errors.Is(err, analysis.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("Then zero thresholds are allowed", func() {
			_, err := analysis.New(analysis.WithMaxGapMonths(0), analysis.WithRegressionTolerance(0))
			So(err, ShouldBeNil)
		})
	})
}

func TestAnalyzeScenarios(t *testing.T) {
	Convey("Given two records two months apart and a one month threshold", t, func() {
		e := mustEngine(analysis.WithMaxGapMonths(1))
		r := e.Analyze([]model.Record{
			{StartDate: "2020-01", EndDate: "2020-06"},
			{StartDate: "2020-08", EndDate: "2021-01"},
		}, now)

		Convey("Then one two-month gap is reported between them", func() {
			So(len(r.Gaps), ShouldEqual, 1)
			So(r.Gaps[0].Months, ShouldEqual, 2)
			So(r.Gaps[0].Indices, ShouldResemble, []int{0, 1})
			So(r.Overlaps, ShouldBeEmpty)
		})
	})

	Convey("Given a record nested inside another", t, func() {
		r := mustEngine().Analyze([]model.Record{
			{StartDate: "2020-01", EndDate: "2021-01"},
			{StartDate: "2020-06", EndDate: "2020-12"},
		}, now)

		Convey("Then one overlap is reported for the pair", func() {
			So(len(r.Overlaps), ShouldEqual, 1)
			So(r.Overlaps[0].Indices, ShouldResemble, []int{0, 1})
		})
	})

	Convey("Given the same degree entered twice", t, func() {
		r := mustEngine().Analyze([]model.Record{
			{PrimaryLabel: "MIT", LevelLabel: "BSc", StartDate: "2018-01"},
			{PrimaryLabel: "MIT", LevelLabel: "BSc", StartDate: "2018-01"},
		}, now)

		Convey("Then one duplicate is reported", func() {
			So(len(r.Duplicates), ShouldEqual, 1)
			So(r.Duplicates[0].Indices, ShouldResemble, []int{0, 1})
			So(r.Recommendations[0].Severity, ShouldEqual, model.SeverityError)
		})
	})

	Convey("Given an empty record list", t, func() {
		r := mustEngine().Analyze(nil, now)

		Convey("Then nothing is found and the base score is returned", func() {
			So(r.Timeline, ShouldBeEmpty)
			So(r.Gaps, ShouldBeEmpty)
			So(r.Overlaps, ShouldBeEmpty)
			So(r.Duplicates, ShouldBeEmpty)
			So(r.Regressions, ShouldBeEmpty)
			So(r.Recommendations, ShouldBeEmpty)
			So(r.Stats.Total, ShouldEqual, 0)
			So(r.Stats.Completed, ShouldEqual, 0)
			So(r.Stats.Ongoing, ShouldEqual, 0)
			So(r.Stats.NotStarted, ShouldEqual, 0)
			So(r.Stats.CompletionRate, ShouldEqual, 0)
			So(r.Score, ShouldEqual, 50)
		})
	})

	Convey("Given a single record without end date", t, func() {
		r := mustEngine().Analyze([]model.Record{{StartDate: "2020-01"}}, now)

		Convey("Then it is ongoing and an info message says so", func() {
			So(len(r.Timeline), ShouldEqual, 1)
			So(r.Timeline[0].Ongoing, ShouldBeTrue)
			So(r.Stats.Completed, ShouldEqual, 0)
			So(r.Stats.Ongoing, ShouldEqual, 1)
			So(r.Recommendations, ShouldContain, model.Recommendation{
				Severity: model.SeverityInfo,
				Message:  "1 ongoing record(s); add completion info when finished.",
			})
		})
	})
}

func TestAnalyzeZonedNow(t *testing.T) {
	Convey("Given a caller clock ahead of UTC on the first of the month", t, func() {
		zoned := time.Date(2024, 3, 1, 1, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60))
		r := mustEngine().Analyze([]model.Record{
			{PrimaryLabel: "MIT", LevelLabel: "MSc", StartDate: "2024-03"},
		}, zoned)

		Convey("Then a record started this month is ongoing", func() {
			So(len(r.Timeline), ShouldEqual, 1)
			So(r.Stats.Ongoing, ShouldEqual, 1)
			So(r.Stats.NotStarted, ShouldEqual, 0)
		})
	})

	Convey("Given a record whose end precedes its start", t, func() {
		r := mustEngine(analysis.WithMaxGapMonths(3)).Analyze([]model.Record{
			{StartDate: "2020-01", EndDate: "2021-04"},
			{StartDate: "2021-06", EndDate: "2019-01"},
			{StartDate: "2021-08", EndDate: "2022-01"},
		}, now)

		Convey("Then its span is the start month only and no gap is invented", func() {
			So(len(r.Timeline), ShouldEqual, 3)
			So(r.Gaps, ShouldBeEmpty)
			So(r.Overlaps, ShouldBeEmpty)
		})
	})
}

func TestAnalyzeProperties(t *testing.T) {
	Convey("Given a messy experience history", t, func() {
		records := []model.Record{
			{PrimaryLabel: "Acme", LevelLabel: "Senior Engineer", SecondaryLabel: "Berlin", StartDate: "2015-01", EndDate: "2018-12"},
			{PrimaryLabel: "Globex", LevelLabel: "Intern", SecondaryLabel: "berlin", StartDate: "2019-06", EndDate: "2019-09"},
			{PrimaryLabel: "Initech", LevelLabel: "Director", StartDate: "2021-01"},
			{PrimaryLabel: "Hooli", LevelLabel: "Lead", StartDate: "2099-01"},
			{PrimaryLabel: "", LevelLabel: "", StartDate: ""},
			{PrimaryLabel: "Acme", LevelLabel: "Senior Engineer", StartDate: "2015-01", EndDate: "garbage"},
		}
		snapshot := append([]model.Record(nil), records...)
		e := mustEngine(analysis.WithVariant(variant.Experience()))
		r := e.Analyze(records, now)

		Convey("Then the report is tagged with the variant", func() {
			So(r.Domain, ShouldEqual, model.DomainExperience)
			So(r.AnalyzedAt, ShouldEqual, now)
		})

		Convey("Then totals and rates are in range", func() {
			So(r.Stats.Total, ShouldEqual, len(records))
			So(r.Stats.CompletionRate, ShouldBeBetweenOrEqual, 0, 100)
			So(r.Stats.Completed+r.Stats.Ongoing+r.Stats.NotStarted, ShouldBeLessThanOrEqualTo, r.Stats.Total)
			So(r.Score, ShouldBeBetweenOrEqual, scoring.MinScore, scoring.MaxScore)
		})

		Convey("Then future and unparseable dates drop out of the timeline", func() {
			So(len(r.Timeline), ShouldEqual, 3)
		})

		Convey("Then the drop from senior to intern is a regression", func() {
			So(len(r.Regressions), ShouldEqual, 1)
			So(r.Regressions[0].Indices, ShouldResemble, []int{0, 1})
		})

		Convey("Then the gap before the director role is reported", func() {
			So(len(r.Gaps), ShouldEqual, 1)
			So(r.Gaps[0].Indices, ShouldResemble, []int{1, 2})
		})

		Convey("Then the input is not modified", func() {
			So(cmp.Diff(snapshot, records), ShouldBeEmpty)
		})

		Convey("Then analysing again yields the same report", func() {
			So(cmp.Diff(r, e.Analyze(records, now)), ShouldBeEmpty)
		})
	})
}
