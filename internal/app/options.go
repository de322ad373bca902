package service

import (
	"time"

	"github.com/okian/careerlens/internal/adapters/repository"
	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/scoring"
	"github.com/okian/careerlens/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces the wall clock used as "now" for every analysis.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator replaces the report ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithThresholds sets the detector thresholds for one domain. Negative
// values are passed through and rejected by Start.
func WithThresholds(domain model.Domain, maxGapMonths, regressionTolerance int) Option {
	return func(s *Service) {
		s.thresholds[domain] = thresholds{maxGapMonths: maxGapMonths, regressionTolerance: regressionTolerance}
	}
}

// WithWeights sets the score weights for every domain.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		s.weights = &w
	}
}

// WithMaxRecords caps the records accepted in one list.
func WithMaxRecords(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxRecords = n
		}
	}
}

// WithMaxBatchSize caps the items accepted in one batch.
func WithMaxBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBatchSize = n
		}
	}
}

// WithBatchParallelism bounds concurrent analyses within a batch.
func WithBatchParallelism(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.parallelism = n
		}
	}
}

// WithStore replaces the report store created by Start.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.reports = store
		}
	}
}

// WithReportCapacity bounds the reports kept by the default store.
func WithReportCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.capacity = n
		}
	}
}
