// Package scoring combines aggregated findings into a 0-100 quality score.
package scoring

import (
	"math"

	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/recommend"
)

// Score bounds.
const (
	MinScore = 0
	MaxScore = 100
)

// Weights parameterise the score formula. Every weight is a magnitude; the
// sign of each term is fixed so that achievements, tenure, stability and
// diversity raise the score while warnings and gaps lower it.
type Weights struct {
	Base                float64 `koanf:"base"`
	Achievement         float64 `koanf:"achievement"`
	Warning             float64 `koanf:"warning"`
	PerYear             float64 `koanf:"per_year"`
	YearsCap            float64 `koanf:"years_cap"`
	StabilityMonths     float64 `koanf:"stability_months"`
	StabilityBonus      float64 `koanf:"stability_bonus"`
	LongStabilityMonths float64 `koanf:"long_stability_months"`
	LongStabilityBonus  float64 `koanf:"long_stability_bonus"`
	Diversity           float64 `koanf:"diversity"`
	DiversityCap        float64 `koanf:"diversity_cap"`
	Gap                 float64 `koanf:"gap"`
}

// DefaultWeights returns the reference weights.
func DefaultWeights() Weights {
	return Weights{
		Base:                50,
		Achievement:         10,
		Warning:             5,
		PerYear:             2,
		YearsCap:            20,
		StabilityMonths:     24,
		StabilityBonus:      10,
		LongStabilityMonths: 36,
		LongStabilityBonus:  5,
		Diversity:           3,
		DiversityCap:        15,
		Gap:                 5,
	}
}

// Valid reports whether every weight is a finite, non-negative number.
func (w Weights) Valid() bool {
	for _, v := range []float64{
		w.Base, w.Achievement, w.Warning, w.PerYear, w.YearsCap,
		w.StabilityMonths, w.StabilityBonus, w.LongStabilityMonths, w.LongStabilityBonus,
		w.Diversity, w.DiversityCap, w.Gap,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithWeights replaces the default weights. Invalid weights are ignored.
func WithWeights(w Weights) Option {
	return func(c *Calculator) {
		if w.Valid() {
			c.weights = w
		}
	}
}

// Input is what the score is computed from.
type Input struct {
	Recommendations []model.Recommendation
	Gaps            int
	Stats           model.Stats
}

// Calculator computes scores. It holds configuration only.
type Calculator struct {
	weights Weights
}

// NewCalculator creates a Calculator with configuration options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Weights returns the weights in use.
func (c *Calculator) Weights() Weights { return c.weights }

// Score computes the clamped integer score.
func (c *Calculator) Score(in Input) int {
	w := c.weights
	achievements, warnings := recommend.Tally(in.Recommendations)

	score := w.Base +
		w.Achievement*float64(achievements) -
		w.Warning*float64(warnings) +
		math.Min(w.PerYear*math.Max(in.Stats.ExperienceYears, 0), w.YearsCap) +
		c.stability(in.Stats.AverageDurationMonths) +
		math.Min(w.Diversity*float64(in.Stats.DistinctPrimaryLabels), w.DiversityCap) -
		w.Gap*float64(in.Gaps)

	return int(math.Max(MinScore, math.Min(MaxScore, math.Round(score))))
}

func (c *Calculator) stability(avgMonths float64) float64 {
	w := c.weights
	bonus := 0.0
	if avgMonths >= w.StabilityMonths {
		bonus += w.StabilityBonus
	}
	if avgMonths >= w.LongStabilityMonths {
		bonus += w.LongStabilityBonus
	}
	return bonus
}
