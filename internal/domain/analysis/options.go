package analysis

import (
	"github.com/okian/careerlens/internal/domain/scoring"
	"github.com/okian/careerlens/internal/domain/stats"
	"github.com/okian/careerlens/internal/domain/variant"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithVariant selects the form variant; its vocabularies become the defaults.
func WithVariant(v variant.Variant) Option {
	return func(e *Engine) {
		e.variant = v
		e.levels = v.Levels
		e.categories = v.Categories
	}
}

// WithMaxGapMonths sets the gap threshold.
func WithMaxGapMonths(months int) Option {
	return func(e *Engine) {
		e.maxGapMonths = months
	}
}

// WithRegressionTolerance sets how many levels a record may drop below its predecessor.
func WithRegressionTolerance(levels int) Option {
	return func(e *Engine) {
		e.regressionTolerance = levels
	}
}

// WithWeights overrides the score weights.
func WithWeights(w scoring.Weights) Option {
	return func(e *Engine) {
		e.weights = &w
	}
}

// WithCategories overrides the variant's category buckets.
func WithCategories(categories []stats.Category) Option {
	return func(e *Engine) {
		e.categories = categories
	}
}
