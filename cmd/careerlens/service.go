package main

import (
	"context"
	"fmt"
	"io"

	service "github.com/okian/careerlens/internal/app"
	"github.com/okian/careerlens/internal/config"
	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/pkg/logger"
)

// setup loads configuration, initialises the global logger writing to logOut
// and returns a started service. Callers must Stop it.
func setup(ctx context.Context, logOut io.Writer, extra ...service.Option) (*config.Config, *service.Service, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithOutput(logOut)); err != nil {
		return nil, nil, fmt.Errorf("init logging: %w", err)
	}
	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	opts := []service.Option{
		service.WithLogger(log),
		service.WithThresholds(model.DomainEducation, cfg.Education.MaxGapMonths, cfg.Education.RegressionTolerance),
		service.WithThresholds(model.DomainExperience, cfg.Experience.MaxGapMonths, cfg.Experience.RegressionTolerance),
		service.WithWeights(cfg.Score),
		service.WithMaxRecords(cfg.MaxRecords),
		service.WithMaxBatchSize(cfg.MaxBatchSize),
		service.WithBatchParallelism(cfg.BatchParallelism),
		service.WithReportCapacity(cfg.ReportCapacity),
	}
	svc := service.New(append(opts, extra...)...)
	if err := svc.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("start service: %w", err)
	}
	return cfg, svc, nil
}
