// Package stats aggregates completion counts, durations and label
// distributions over a record list and its timeline.
package stats

import (
	"math"
	"strings"

	"github.com/okian/careerlens/internal/domain/calendar"
	"github.com/okian/careerlens/internal/domain/model"
)

const monthsPerYear = 12

// Category is a named keyword bucket, e.g. an industry or a field of study.
type Category struct {
	Name     string   `koanf:"name" yaml:"name" json:"name"`
	Keywords []string `koanf:"keywords" yaml:"keywords" json:"keywords"`
}

// Aggregator computes Stats. It holds configuration only and is safe for concurrent use.
type Aggregator struct {
	categories []Category
}

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithCategories enables the keyword-bucket distribution.
func WithCategories(categories []Category) Option {
	return func(a *Aggregator) {
		a.categories = append([]Category(nil), categories...)
	}
}

// New creates an Aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate is a convenience for New().Aggregate(records, entries).
func Aggregate(records []model.Record, entries []model.TimelineEntry) model.Stats {
	return New().Aggregate(records, entries)
}

// Aggregate computes stats for records. entries must be the timeline built
// from the same records; they decide which records have a usable date range.
func (a *Aggregator) Aggregate(records []model.Record, entries []model.TimelineEntry) model.Stats {
	s := model.Stats{
		Total:        len(records),
		Distribution: []model.Bucket{},
	}
	if len(records) == 0 {
		return s
	}

	byIndex := make(map[int]model.TimelineEntry, len(entries))
	for _, e := range entries {
		byIndex[e.Index] = e
	}

	var (
		filled       int
		completedSum int
		primaries    = make(map[string]struct{}, len(records))
		secondaries  = make([]string, 0, len(records))
		categoryHits = make([]string, 0, len(records))
	)
	for i, r := range records {
		start := strings.TrimSpace(r.StartDate)
		switch e, dated := byIndex[i]; {
		case dated && e.Ongoing:
			s.Ongoing++
		case dated:
			s.Completed++
			completedSum += e.DurationMonths
		case badEnd(r):
			// start is usable but the end is not: counts toward Total only
		default:
			// blank, unparseable or future start
			s.NotStarted++
		}

		if isBlank(r.PrimaryLabel) || isBlank(r.LevelLabel) || start == "" {
			s.Incomplete++
		}
		filled += countFilled(r.PrimaryLabel, r.LevelLabel, r.SecondaryLabel, r.StartDate)

		if p := normalize(r.PrimaryLabel); p != "" {
			primaries[p] = struct{}{}
		}
		secondaries = append(secondaries, r.SecondaryLabel)
		if name, ok := a.categorize(r); ok {
			categoryHits = append(categoryHits, name)
		}
	}

	for _, e := range entries {
		s.TotalDurationMonths += e.DurationMonths
	}

	s.CompletionRate = percent(s.Completed, s.Total)
	s.Completeness = percent(filled, s.Total*4)
	if s.Completed > 0 {
		s.AverageDurationMonths = round1(float64(completedSum) / float64(s.Completed))
	}
	s.ExperienceYears = round1(float64(s.TotalDurationMonths) / monthsPerYear)
	s.DistinctPrimaryLabels = len(primaries)
	s.Distribution = Distribution(secondaries)
	if len(a.categories) > 0 {
		s.Categories = Distribution(categoryHits)
	}
	return s
}

// categorize returns the first category with a keyword found in the
// record's primary, level or secondary label.
func (a *Aggregator) categorize(r model.Record) (string, bool) {
	text := normalize(r.PrimaryLabel + " " + r.LevelLabel + " " + r.SecondaryLabel)
	if text == "" {
		return "", false
	}
	for _, c := range a.categories {
		for _, kw := range c.Keywords {
			if kw = normalize(kw); kw != "" && strings.Contains(text, kw) {
				return c.Name, true
			}
		}
	}
	return "", false
}

// Distribution counts labels case-insensitively after trimming. Buckets are
// sorted by descending count, ties by first appearance; each bucket keeps the
// spelling of its first occurrence. Blank labels are ignored.
func Distribution(labels []string) []model.Bucket {
	buckets := []model.Bucket{}
	pos := make(map[string]int, len(labels))
	for _, l := range labels {
		key := normalize(l)
		if key == "" {
			continue
		}
		if i, ok := pos[key]; ok {
			buckets[i].Count++
			continue
		}
		pos[key] = len(buckets)
		buckets = append(buckets, model.Bucket{Label: strings.TrimSpace(l), Count: 1})
	}
	// insertion sort keeps first-seen order among equal counts
	for i := 1; i < len(buckets); i++ {
		for j := i; j > 0 && buckets[j].Count > buckets[j-1].Count; j-- {
			buckets[j], buckets[j-1] = buckets[j-1], buckets[j]
		}
	}
	return buckets
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func countFilled(fields ...string) int {
	n := 0
	for _, f := range fields {
		if !isBlank(f) {
			n++
		}
	}
	return n
}

// badEnd reports a parseable start paired with a non-blank end that does
// not parse.
func badEnd(r model.Record) bool {
	if _, ok := calendar.Parse(r.StartDate); !ok || isBlank(r.EndDate) {
		return false
	}
	_, ok := calendar.Parse(r.EndDate)
	return !ok
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
