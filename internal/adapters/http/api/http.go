// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/careerlens/internal/adapters/repository"
	service "github.com/okian/careerlens/internal/app"
	"github.com/okian/careerlens/internal/domain/model"
	"github.com/okian/careerlens/internal/domain/types"
	"github.com/okian/careerlens/internal/domain/validation"
	"github.com/okian/careerlens/internal/domain/variant"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 4 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Analyze(ctx context.Context, domain string, raws []types.RawRecord) (model.Report, error)
	AnalyzeBatch(ctx context.Context, items []types.BatchItem) ([]types.BatchResult, error)
	Validate(ctx context.Context, domain string, raws []types.RawRecord) (validation.FieldErrors, error)
	Report(ctx context.Context, id string) (model.Report, error)
	TopReports(ctx context.Context, domain string, n int) ([]repository.Entry, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	analyzeHandler  *AnalyzeHandler
	validateHandler *ValidateHandler
	batchHandler    *BatchHandler
	reportsHandler  *ReportsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		analyzeHandler:  NewAnalyzeHandler(deps),
		validateHandler: NewValidateHandler(deps),
		batchHandler:    NewBatchHandler(deps),
		reportsHandler:  NewReportsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux. Business routes carry their
// method so that /reports/{id} and /{domain}/analyze do not conflict.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("POST /analyze/batch", MetricsMiddleware(s.batchHandler.HandleBatch, "analyze_batch"))
	mux.HandleFunc("POST /{domain}/analyze", MetricsMiddleware(s.analyzeHandler.HandleAnalyze, "analyze"))
	mux.HandleFunc("POST /{domain}/validate", MetricsMiddleware(s.validateHandler.HandleValidate, "validate"))
	mux.HandleFunc("GET /reports", MetricsMiddleware(s.reportsHandler.HandleTop, "reports_top"))
	mux.HandleFunc("GET /reports/{id}", MetricsMiddleware(s.reportsHandler.HandleGet, "reports_get"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, types.ErrorResponse{Code: status, Message: msg})
}

// writeServiceError maps service sentinels to status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownDomain):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, repository.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrTooManyRecords):
		writeError(w, http.StatusRequestEntityTooLarge, err)
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

// decodeJSON decodes a size-limited body, keeping numbers as json.Number.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	return dec.Decode(v)
}

// decodeRecords reads {"<collection>": [...]} for the domain in the path.
func decodeRecords(w http.ResponseWriter, r *http.Request, op string) (string, []types.RawRecord, int, error) {
	domain := r.PathValue("domain")
	v, ok := variant.Lookup(domain)
	if !ok {
		return "", nil, http.StatusNotFound, WrapKind(op, ErrUnknownDomain, fmt.Errorf("%q", domain))
	}
	// other keys, such as form tokens, are ignored
	var body map[string]json.RawMessage
	if err := decodeJSON(w, r, &body); err != nil {
		return "", nil, http.StatusBadRequest, WrapKind(op, ErrBadRequest, err)
	}
	raw, ok := body[v.Collection]
	if !ok {
		return "", nil, http.StatusBadRequest, WrapKind(op, ErrBadRequest, fmt.Errorf("missing %s", v.Collection))
	}
	var raws []types.RawRecord
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&raws); err != nil {
		return "", nil, http.StatusBadRequest, WrapKind(op, ErrBadRequest, fmt.Errorf("%s: %w", v.Collection, err))
	}
	return string(v.Domain), raws, http.StatusOK, nil
}
