package calendar_test

import (
	"testing"
	"time"

	"github.com/okian/careerlens/internal/domain/calendar"
	"github.com/okian/careerlens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given date strings in form formats", t, func() {
		Convey("When parsing a year-month", func() {
			d, ok := calendar.Parse("2020-03")

			Convey("Then it resolves to the first of the month", func() {
				So(ok, ShouldBeTrue)
				So(d, ShouldEqual, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC))
			})
		})

		Convey("When parsing a full date with surrounding space", func() {
			d, ok := calendar.Parse(" 2020-03-15 ")

			Convey("Then it is accepted", func() {
				So(ok, ShouldBeTrue)
				So(d.Day(), ShouldEqual, 15)
			})
		})

		Convey("When parsing an RFC 3339 timestamp", func() {
			d, ok := calendar.Parse("2020-03-15T10:00:00+02:00")

			Convey("Then it is normalised to UTC", func() {
				So(ok, ShouldBeTrue)
				So(d.Location(), ShouldEqual, time.UTC)
				So(d.Hour(), ShouldEqual, 8)
			})
		})

		Convey("When parsing invalid input", func() {
			for _, s := range []string{"", "   ", "2021-02-30", "2020-13", "March 2020", "20-01"} {
				_, ok := calendar.Parse(s)
				So(ok, ShouldBeFalse)
			}
		})
	})
}

func TestMonthsBetween(t *testing.T) {
	Convey("Given two dates", t, func() {
		a := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
		b := time.Date(2021, 1, 20, 0, 0, 0, 0, time.UTC)

		Convey("Then months are counted by calendar month", func() {
			So(calendar.MonthsBetween(a, b), ShouldEqual, 7)
			So(calendar.MonthsBetween(b, a), ShouldEqual, -7)
			So(calendar.MonthsBetween(a, a), ShouldEqual, 0)
		})
	})
}

func TestEffective(t *testing.T) {
	Convey("Given a fixed now", t, func() {
		now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

		Convey("When the record has no end date", func() {
			r, ok := calendar.Effective(model.Record{StartDate: "2023-01"}, now)

			Convey("Then it is ongoing and ends now", func() {
				So(ok, ShouldBeTrue)
				So(r.Ongoing, ShouldBeTrue)
				So(r.End, ShouldEqual, now)
			})
		})

		Convey("When the record is completed", func() {
			r, ok := calendar.Effective(model.Record{StartDate: "2023-01", EndDate: "2023-09"}, now)

			Convey("Then both ends are parsed", func() {
				So(ok, ShouldBeTrue)
				So(r.Ongoing, ShouldBeFalse)
				So(r.End.Month(), ShouldEqual, time.September)
			})
		})

		Convey("When dates are unusable", func() {
			_, missing := calendar.Effective(model.Record{}, now)
			_, future := calendar.Effective(model.Record{StartDate: "2025-01"}, now)
			_, badEnd := calendar.Effective(model.Record{StartDate: "2023-01", EndDate: "soon"}, now)

			Convey("Then the record is excluded", func() {
				So(missing, ShouldBeFalse)
				So(future, ShouldBeFalse)
				So(badEnd, ShouldBeFalse)
			})
		})

		Convey("When the end precedes the start", func() {
			r, ok := calendar.Effective(model.Record{StartDate: "2023-06", EndDate: "2023-01"}, now)

			Convey("Then the span collapses onto the start", func() {
				So(ok, ShouldBeTrue)
				So(r.End, ShouldEqual, r.Start)
			})
		})
	})

	Convey("Given a now ahead of UTC on the first of the month", t, func() {
		now := time.Date(2024, 3, 1, 1, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60))

		Convey("When a record starts in that month", func() {
			r, ok := calendar.Effective(model.Record{StartDate: "2024-03"}, now)

			Convey("Then the start is not treated as future", func() {
				So(ok, ShouldBeTrue)
				So(r.Ongoing, ShouldBeTrue)
				So(calendar.MonthsBetween(r.Start, r.End), ShouldEqual, 0)
			})
		})
	})
}

func TestLocal(t *testing.T) {
	Convey("Given a zoned time", t, func() {
		zoned := time.Date(2024, 2, 29, 23, 30, 0, 0, time.FixedZone("UTC-8", -8*60*60))

		Convey("Then its wall clock is kept in UTC", func() {
			So(calendar.Local(zoned), ShouldEqual, time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC))
		})
	})
}
