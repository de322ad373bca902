// Package repository keeps analysis reports for later lookup and ranking.
package repository

import (
	"context"
	"time"

	"github.com/okian/careerlens/internal/domain/model"
)

// Entry is one row of the score ranking.
type Entry struct {
	Rank       int          `json:"rank"`
	ReportID   string       `json:"report_id"`
	Domain     model.Domain `json:"domain"`
	Score      int          `json:"score"`
	AnalyzedAt time.Time    `json:"analyzed_at"`
}

// Store provides read/write access to stored reports.
type Store interface {
	// Save stores report under its ID, replacing any earlier report with that ID.
	Save(ctx context.Context, report model.Report) error

	// Get returns the report with id.
	// Returns ErrNotFound if the report is unknown or was evicted.
	Get(ctx context.Context, id string) (model.Report, error)

	// TopN returns the n best-scoring reports, optionally limited to one domain
	// (empty domain means all), ordered by score desc.
	TopN(ctx context.Context, domain model.Domain, n int) ([]Entry, error)

	// Count returns the number of stored reports.
	Count(ctx context.Context) int
}
