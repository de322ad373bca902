package dedupe_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	dedupe "github.com/okian/careerlens/internal/domain/dedupe"
	"github.com/okian/careerlens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDetect(t *testing.T) {
	Convey("Given two identical education records", t, func() {
		records := []model.Record{
			{PrimaryLabel: "MIT", LevelLabel: "BSc", StartDate: "2018-01"},
			{PrimaryLabel: "MIT", LevelLabel: "BSc", StartDate: "2018-01"},
		}

		findings := dedupe.Detect(records)

		Convey("Then one finding references indices (0,1)", func() {
			So(len(findings), ShouldEqual, 1)
			So(findings[0].Kind, ShouldEqual, model.FindingDuplicate)
			So(findings[0].Indices, ShouldResemble, []int{0, 1})
		})

		Convey("Then running it again yields identical findings", func() {
			So(cmp.Diff(findings, dedupe.Detect(records)), ShouldBeEmpty)
		})
	})

	Convey("Given keys that differ only by case and whitespace", t, func() {
		records := []model.Record{
			{PrimaryLabel: "Acme Corp", LevelLabel: "Engineer", StartDate: "2020-01"},
			{PrimaryLabel: "Other", LevelLabel: "Engineer", StartDate: "2020-01"},
			{PrimaryLabel: "  acme corp ", LevelLabel: "ENGINEER", StartDate: " 2020-01"},
			{PrimaryLabel: "ACME CORP", LevelLabel: "engineer", StartDate: "2020-01"},
		}

		Convey("Then each repeat references the first occurrence", func() {
			findings := dedupe.Detect(records)
			So(len(findings), ShouldEqual, 2)
			So(findings[0].Indices, ShouldResemble, []int{0, 2})
			So(findings[1].Indices, ShouldResemble, []int{0, 3})
		})
	})

	Convey("Given records missing labels or dates", t, func() {
		records := []model.Record{
			{PrimaryLabel: "", LevelLabel: "BSc", StartDate: "2018-01"},
			{PrimaryLabel: "", LevelLabel: "BSc", StartDate: "2018-01"},
			{PrimaryLabel: "MIT", LevelLabel: " ", StartDate: "2018-01"},
			{PrimaryLabel: "MIT", LevelLabel: " ", StartDate: "2018-01"},
			{PrimaryLabel: "MIT", LevelLabel: "MSc"},
			{PrimaryLabel: "MIT", LevelLabel: "MSc", StartDate: ""},
		}

		Convey("Then unlabeled records are skipped and missing dates share a sentinel", func() {
			findings := dedupe.Detect(records)
			So(len(findings), ShouldEqual, 1)
			So(findings[0].Indices, ShouldResemble, []int{4, 5})
		})
	})

	Convey("Given a custom key function", t, func() {
		d := dedupe.New(dedupe.WithKeyFunc(func(r model.Record) (string, bool) {
			return strings.ToLower(r.PrimaryLabel), r.PrimaryLabel != ""
		}))
		records := []model.Record{
			{PrimaryLabel: "MIT", LevelLabel: "BSc"},
			{PrimaryLabel: "mit", LevelLabel: "PhD"},
		}

		Convey("Then records are grouped by that key", func() {
			So(len(d.Detect(records)), ShouldEqual, 1)
		})

		Convey("Then a nil key function keeps the default", func() {
			So(dedupe.New(dedupe.WithKeyFunc(nil)).Detect(records), ShouldBeEmpty)
		})
	})

	Convey("Given an empty list", t, func() {
		Convey("Then nothing is reported", func() {
			So(dedupe.Detect(nil), ShouldBeEmpty)
		})
	})
}
