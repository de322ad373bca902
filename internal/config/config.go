// Package config defines service configuration structures and loading hooks.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/okian/careerlens/internal/domain/scoring"
	"github.com/okian/careerlens/internal/domain/variant"
)

// Thresholds tune the detectors for one form variant.
type Thresholds struct {
	// MaxGapMonths is the largest gap between consecutive records that is not reported.
	MaxGapMonths int `koanf:"max_gap_months"`

	// RegressionTolerance is how many levels a record may fall below its predecessor.
	RegressionTolerance int `koanf:"regression_tolerance"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log lines.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// MaxRecords caps the records accepted in one list.
	MaxRecords int `koanf:"max_records"`

	// MaxBatchSize caps the profiles accepted in one batch request.
	MaxBatchSize int `koanf:"max_batch_size"`

	// BatchParallelism bounds concurrent analyses within a batch.
	BatchParallelism int `koanf:"batch_parallelism"`

	// ReportCapacity bounds the reports kept for lookup and ranking.
	ReportCapacity int `koanf:"report_capacity"`

	Education  Thresholds `koanf:"education"`
	Experience Thresholds `koanf:"experience"`

	// Score holds the score formula weights.
	Score scoring.Weights `koanf:"score"`
}

// New creates a Config with defaults.
func New() *Config {
	defaults := Thresholds{
		MaxGapMonths:        variant.DefaultMaxGapMonths,
		RegressionTolerance: variant.DefaultRegressionTolerance,
	}
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Addr:             ":9080",
		MaxRecords:       200,
		MaxBatchSize:     100,
		BatchParallelism: runtime.NumCPU(),
		ReportCapacity:   1000,
		Education:        defaults,
		Experience:       defaults,
		Score:            scoring.DefaultWeights(),
	}
}

// Validate reports the first unusable setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	case c.MaxRecords <= 0:
		return fmt.Errorf("%w: max_records must be positive", ErrInvalidConfig)
	case c.MaxBatchSize <= 0:
		return fmt.Errorf("%w: max_batch_size must be positive", ErrInvalidConfig)
	case c.BatchParallelism <= 0:
		return fmt.Errorf("%w: batch_parallelism must be positive", ErrInvalidConfig)
	case c.ReportCapacity <= 0:
		return fmt.Errorf("%w: report_capacity must be positive", ErrInvalidConfig)
	case !c.Score.Valid():
		return fmt.Errorf("%w: score weights must be finite and non-negative", ErrInvalidConfig)
	}
	for name, t := range map[string]Thresholds{"education": c.Education, "experience": c.Experience} {
		if t.MaxGapMonths < 0 || t.RegressionTolerance < 0 {
			return fmt.Errorf("%w: %s thresholds must not be negative", ErrInvalidConfig, name)
		}
	}
	return nil
}

// ThresholdsFor returns the thresholds configured for a domain name.
func (c *Config) ThresholdsFor(domain string) Thresholds {
	if domain == "experience" {
		return c.Experience
	}
	return c.Education
}
