package variant_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/timeline"
	"github.com/okian/careerlens/internal/domain/variant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLookup(t *testing.T) {
	Convey("Given domain names", t, func() {
		Convey("Then known domains resolve case-insensitively", func() {
			v, ok := variant.Lookup(" Education ")
			So(ok, ShouldBeTrue)
			So(v.Domain, ShouldEqual, model.DomainEducation)
			So(v.Collection, ShouldEqual, "educations")

			v, ok = variant.Lookup("experience")
			So(ok, ShouldBeTrue)
			So(v.Collection, ShouldEqual, "experiences")
		})

		Convey("Then unknown domains are rejected", func() {
			_, ok := variant.Lookup("documents")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestDecode(t *testing.T) {
	Convey("Given an education form row", t, func() {
		raw := map[string]any{
			"id":          float64(42),
			"institution": "MIT",
			"degree":      "BSc",
			"subject":     "Physics",
			"grade":       "A",
			"start_date":  "2018-09",
			"end_date":    nil,
		}

		Convey("Then fields land on the generic record", func() {
			r := variant.Education().Decode(raw)
			So(r, ShouldResemble, model.Record{
				ID:             "42",
				StartDate:      "2018-09",
				PrimaryLabel:   "MIT",
				LevelLabel:     "BSc",
				SecondaryLabel: "Physics",
				Notes:          "A",
			})
		})
	})

	Convey("Given an experience form row decoded with json.Number", t, func() {
		raw := map[string]any{
			"id":           json.Number("7"),
			"company_name": "Acme",
			"job_position": "Senior Engineer",
			"location":     "Berlin",
			"start_date":   time.Date(2019, 4, 1, 0, 0, 0, 0, time.UTC),
			"end_date":     "2021-03",
			"description":  true,
		}

		Convey("Then values are rendered as strings", func() {
			r := variant.Experience().Decode(raw)
			So(r.ID, ShouldEqual, "7")
			So(r.PrimaryLabel, ShouldEqual, "Acme")
			So(r.SecondaryLabel, ShouldEqual, "Berlin")
			So(r.StartDate, ShouldEqual, "2019-04-01")
			So(r.Notes, ShouldEqual, "true")
		})
	})

	Convey("Given a list with empty rows", t, func() {
		rs := variant.Education().DecodeAll([]map[string]any{{}, {"institution": "ETH"}})

		Convey("Then positions are preserved", func() {
			So(len(rs), ShouldEqual, 2)
			So(rs[0], ShouldResemble, model.Record{})
			So(rs[1].PrimaryLabel, ShouldEqual, "ETH")
		})
	})
}

func TestVocabularies(t *testing.T) {
	Convey("Given the default education vocabulary", t, func() {
		levels := variant.Education().Levels

		Convey("Then degrees are ordered", func() {
			bsc := levels.Classify("BSc Computer Science")
			msc := levels.Classify("MSc Data Science")
			phd := levels.Classify("Doctor of Philosophy")
			So(bsc, ShouldBeLessThan, msc)
			So(msc, ShouldBeLessThan, phd)
			So(levels.Classify("Postdoctoral Fellow"), ShouldBeGreaterThan, phd)
		})
	})

	Convey("Given the default seniority vocabulary", t, func() {
		levels := variant.Experience().Levels

		Convey("Then titles are ordered", func() {
			So(levels.Classify("Software Engineer"), ShouldBeLessThan, levels.Classify("Senior Software Engineer"))
			So(levels.Classify("Engineering Manager"), ShouldBeGreaterThan, levels.Classify("Tech Lead"))
			So(levels.Classify("CTO"), ShouldEqual, len(levels)-1)
			So(levels.Classify("Barista"), ShouldEqual, timeline.Unknown)
		})
	})

	Convey("Given field names", t, func() {
		Convey("Then generic names map to form fields", func() {
			So(variant.Education().FieldName("PrimaryLabel"), ShouldEqual, "institution")
			So(variant.Experience().FieldName("LevelLabel"), ShouldEqual, "job_position")
			So(variant.Experience().FieldName("Other"), ShouldEqual, "Other")
		})
	})
}
