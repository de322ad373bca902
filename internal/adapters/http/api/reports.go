package api

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

// ReportsHandler serves stored reports and the score ranking.
type ReportsHandler struct {
	deps Dependencies
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(deps Dependencies) *ReportsHandler {
	return &ReportsHandler{deps: deps}
}

// HandleGet handles GET /reports/{id}.
func (h *ReportsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	report, err := h.deps.Report(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleTop handles GET /reports?limit=N&domain=D.
func (h *ReportsHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	const op = "api.reports_top"
	q := r.URL.Query()
	limit := defaultTopLimit
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > maxTopLimit {
			writeError(w, http.StatusBadRequest, WrapKind(op, ErrBadRequest, fmt.Errorf("limit must be between 1 and %d", maxTopLimit)))
			return
		}
		limit = n
	}
	entries, err := h.deps.TopReports(r.Context(), q.Get("domain"), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}
