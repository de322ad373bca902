package api

import (
	"net/http"
)

// AnalyzeHandler handles POST /{domain}/analyze.
type AnalyzeHandler struct {
	deps Dependencies
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps}
}

// HandleAnalyze returns the full report for the posted record list.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"
	domain, raws, status, err := decodeRecords(w, r, op)
	if err != nil {
		writeError(w, status, err)
		return
	}
	report, err := h.deps.Analyze(r.Context(), domain, raws)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
