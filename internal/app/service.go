// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/careerlens/internal/adapters/repository"
	"github.com/okian/careerlens/internal/domain/analysis"
	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/scoring"
	"github.com/okian/careerlens/internal/domain/types"
	"github.com/okian/careerlens/internal/domain/validation"
	"github.com/okian/careerlens/internal/domain/variant"
	"github.com/okian/careerlens/pkg/logger"
	"github.com/okian/careerlens/pkg/metrics"
)

type thresholds struct {
	maxGapMonths        int
	regressionTolerance int
}

// Service analyses and validates education and experience record lists.
type Service struct {
	mu sync.RWMutex

	// Core components
	engines   map[model.Domain]*analysis.Engine
	validator *validation.Validator
	reports   repository.Store

	// Configuration
	thresholds   map[model.Domain]thresholds
	weights      *scoring.Weights
	maxRecords   int
	maxBatchSize int
	parallelism  int
	capacity     int
	clock        func() time.Time
	newID        func() string

	// State
	started bool

	// Counters
	analyses           atomic.Int64
	batches            atomic.Int64
	validationFailures atomic.Int64
	failures           atomic.Int64

	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	defaults := thresholds{
		maxGapMonths:        variant.DefaultMaxGapMonths,
		regressionTolerance: variant.DefaultRegressionTolerance,
	}
	s := &Service{
		thresholds: map[model.Domain]thresholds{
			model.DomainEducation:  defaults,
			model.DomainExperience: defaults,
		},
		maxRecords:   200,
		maxBatchSize: 100,
		parallelism:  runtime.NumCPU(),
		capacity:     repository.DefaultCapacity,
		clock:        time.Now,
		newID:        func() string { return uuid.NewString() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds one analysis engine per domain. It fails if any configured
// threshold or weight is unusable.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	engines := make(map[model.Domain]*analysis.Engine, len(variant.All()))
	for _, v := range variant.All() {
		t := s.thresholds[v.Domain]
		opts := []analysis.Option{
			analysis.WithVariant(v),
			analysis.WithMaxGapMonths(t.maxGapMonths),
			analysis.WithRegressionTolerance(t.regressionTolerance),
		}
		if s.weights != nil {
			opts = append(opts, analysis.WithWeights(*s.weights))
		}
		e, err := analysis.New(opts...)
		if err != nil {
			return fmt.Errorf("%s engine: %w", v.Domain, err)
		}
		engines[v.Domain] = e
	}
	s.engines = engines
	s.validator = validation.New()
	if s.reports == nil {
		s.reports = repository.NewMemoryStore(repository.WithCapacity(s.capacity))
	}
	s.started = true

	s.logger.Info(ctx, "analysis service started",
		logger.Int("maxRecords", s.maxRecords),
		logger.Int("maxBatchSize", s.maxBatchSize),
		logger.Int("parallelism", s.parallelism),
	)
	return nil
}

// Stop marks the service as stopped. Analyses already running complete.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "analysis service stopped")
}

func (s *Service) engine(domain model.Domain) (*analysis.Engine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	e, ok := s.engines[domain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDomain, domain)
	}
	return e, nil
}

func (s *Service) store() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	return s.reports, nil
}

func (s *Service) lookup(domain string, n int) (variant.Variant, error) {
	v, ok := variant.Lookup(domain)
	if !ok {
		return variant.Variant{}, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
	}
	if n > s.maxRecords {
		return variant.Variant{}, fmt.Errorf("%w: %d records exceeds limit of %d", ErrTooManyRecords, n, s.maxRecords)
	}
	return v, nil
}

// Analyze decodes raw form rows for domain and runs the full analysis.
func (s *Service) Analyze(ctx context.Context, domain string, raws []types.RawRecord) (model.Report, error) {
	v, err := s.lookup(domain, len(raws))
	if err != nil {
		s.failures.Add(1)
		return model.Report{}, err
	}
	return s.AnalyzeRecords(ctx, v.Domain, v.DecodeAll(raws))
}

// AnalyzeRecords runs the full analysis over already decoded records.
func (s *Service) AnalyzeRecords(ctx context.Context, domain model.Domain, records []model.Record) (model.Report, error) {
	if err := ctx.Err(); err != nil {
		return model.Report{}, err
	}
	e, err := s.engine(domain)
	if err != nil {
		s.failures.Add(1)
		return model.Report{}, err
	}

	start := time.Now()
	report := e.Analyze(records, s.clock().UTC())
	report.ID = s.newID()
	took := time.Since(start)

	s.analyses.Add(1)
	label := string(domain)
	metrics.RecordAnalysis(label, len(records), report.Score, float64(took.Microseconds())/1000)
	metrics.RecordFindings(label, string(model.FindingGap), len(report.Gaps))
	metrics.RecordFindings(label, string(model.FindingOverlap), len(report.Overlaps))
	metrics.RecordFindings(label, string(model.FindingDuplicate), len(report.Duplicates))
	metrics.RecordFindings(label, string(model.FindingRegression), len(report.Regressions))

	if store, err := s.store(); err == nil {
		if err := store.Save(ctx, report); err != nil {
			s.logger.Warn(ctx, "report not stored", logger.String("reportID", report.ID), logger.Error(err))
		}
	}

	s.logger.Debug(ctx, "analysis finished",
		logger.String("reportID", report.ID),
		logger.String("domain", label),
		logger.Int("records", len(records)),
		logger.Int("score", report.Score),
		logger.Duration("took", took),
	)
	return report, nil
}

// AnalyzeBatch analyses many profiles concurrently. Per-item failures are
// reported in the matching result; only cancellation fails the batch.
func (s *Service) AnalyzeBatch(ctx context.Context, items []types.BatchItem) ([]types.BatchResult, error) {
	if len(items) > s.maxBatchSize {
		s.failures.Add(1)
		return nil, fmt.Errorf("%w: %d batch items exceeds limit of %d", ErrTooManyRecords, len(items), s.maxBatchSize)
	}
	metrics.RecordBatchSize(len(items))

	results := make([]types.BatchResult, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := s.Analyze(gctx, item.Domain, item.Records)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				results[i] = types.BatchResult{ID: id, Error: err.Error()}
				return nil
			}
			results[i] = types.BatchResult{ID: id, Report: &report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.batches.Add(1)
	s.logger.Debug(ctx, "batch finished", logger.Int("items", len(items)))
	return results, nil
}

// Validate checks raw form rows for domain and returns field errors, empty
// when the list is valid.
func (s *Service) Validate(ctx context.Context, domain string, raws []types.RawRecord) (validation.FieldErrors, error) {
	v, err := s.lookup(domain, len(raws))
	if err != nil {
		s.failures.Add(1)
		return nil, err
	}
	if _, err := s.engine(v.Domain); err != nil {
		return nil, err
	}

	fieldErrs := s.validator.Validate(ctx, v, v.DecodeAll(raws), s.clock().UTC())
	if len(fieldErrs) > 0 {
		s.validationFailures.Add(1)
		metrics.RecordValidationFailure(string(v.Domain))
		s.logger.Debug(ctx, "validation failed",
			logger.String("domain", string(v.Domain)),
			logger.Int("errors", fieldErrs.Count()),
		)
	}
	return fieldErrs, nil
}

// Report returns a previously computed report by ID.
func (s *Service) Report(ctx context.Context, id string) (model.Report, error) {
	store, err := s.store()
	if err != nil {
		return model.Report{}, err
	}
	return store.Get(ctx, id)
}

// TopReports ranks stored reports by score. An empty domain ranks all of them.
func (s *Service) TopReports(ctx context.Context, domain string, n int) ([]repository.Entry, error) {
	store, err := s.store()
	if err != nil {
		return nil, err
	}
	var d model.Domain
	if domain != "" {
		v, ok := variant.Lookup(domain)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, domain)
		}
		d = v.Domain
	}
	return store.TopN(ctx, d, n)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	domains := make([]string, 0, len(variant.All()))
	for _, v := range variant.All() {
		domains = append(domains, string(v.Domain))
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	metrics.UpdateSystemMemoryUsage(mem.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	stored := 0
	if s.reports != nil {
		stored = s.reports.Count(context.Background())
	}

	return map[string]interface{}{
		"started":            s.started,
		"storedReports":      stored,
		"domains":            domains,
		"analyses":           s.analyses.Load(),
		"batches":            s.batches.Load(),
		"validationFailures": s.validationFailures.Load(),
		"failures":           s.failures.Load(),
		"maxRecords":         s.maxRecords,
		"maxBatchSize":       s.maxBatchSize,
		"parallelism":        s.parallelism,
	}
}
