// Package analysis runs the full pipeline over one record list: timeline,
// detectors, stats, recommendations and score.
package analysis

import (
	"fmt"
	"time"

	"github.com/okian/careerlens/internal/domain/calendar"
	"github.com/okian/careerlens/internal/domain/dedupe"
	"github.com/okian/careerlens/internal/domain/detect"
	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/recommend"
	"github.com/okian/careerlens/internal/domain/scoring"
	"github.com/okian/careerlens/internal/domain/stats"
	"github.com/okian/careerlens/internal/domain/timeline"
	"github.com/okian/careerlens/internal/domain/variant"
)

// Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	variant             variant.Variant
	levels              timeline.Vocabulary
	categories          []stats.Category
	maxGapMonths        int
	regressionTolerance int
	weights             *scoring.Weights

	dedupe     *dedupe.Detector
	aggregator *stats.Aggregator
	calculator *scoring.Calculator
}

// New creates an Engine. The education variant and default thresholds apply
// unless overridden.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		maxGapMonths:        variant.DefaultMaxGapMonths,
		regressionTolerance: variant.DefaultRegressionTolerance,
	}
	WithVariant(variant.Education())(e)
	for _, opt := range opts {
		opt(e)
	}

	if e.maxGapMonths < 0 {
		return nil, fmt.Errorf("%w: max gap months %d is negative", ErrInvalidConfig, e.maxGapMonths)
	}
	if e.regressionTolerance < 0 {
		return nil, fmt.Errorf("%w: regression tolerance %d is negative", ErrInvalidConfig, e.regressionTolerance)
	}
	var scoreOpts []scoring.Option
	if e.weights != nil {
		if !e.weights.Valid() {
			return nil, fmt.Errorf("%w: score weights must be finite and non-negative", ErrInvalidConfig)
		}
		scoreOpts = append(scoreOpts, scoring.WithWeights(*e.weights))
	}

	e.dedupe = dedupe.New()
	e.aggregator = stats.New(stats.WithCategories(e.categories))
	e.calculator = scoring.NewCalculator(scoreOpts...)
	return e, nil
}

// Variant returns the form variant the engine analyses.
func (e *Engine) Variant() variant.Variant { return e.variant }

// Analyze runs every stage over records. It never fails on record content;
// unusable records simply drop out of the date-based stages.
func (e *Engine) Analyze(records []model.Record, now time.Time) model.Report {
	now = calendar.Local(now)
	entries := timeline.Build(records, e.levels, now)

	gaps := detect.Gaps(entries, e.maxGapMonths)
	overlaps := detect.Overlaps(records, now)
	duplicates := e.dedupe.Detect(records)
	regressions := detect.Regressions(entries, e.regressionTolerance)

	st := e.aggregator.Aggregate(records, entries)
	recs := recommend.Recommend(recommend.Input{
		Duplicates:  duplicates,
		Regressions: regressions,
		Gaps:        gaps,
		Stats:       st,
	})

	return model.Report{
		Domain:          e.variant.Domain,
		AnalyzedAt:      now,
		Timeline:        entries,
		Gaps:            gaps,
		Overlaps:        overlaps,
		Duplicates:      duplicates,
		Regressions:     regressions,
		Stats:           st,
		Recommendations: recs,
		Score: e.calculator.Score(scoring.Input{
			Recommendations: recs,
			Gaps:            len(gaps),
			Stats:           st,
		}),
	}
}
