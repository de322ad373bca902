package api

import (
	"errors"
	"net/http"

	"github.com/okian/careerlens/internal/domain/types"
)

// BatchHandler handles POST /analyze/batch.
type BatchHandler struct {
	deps Dependencies
}

// NewBatchHandler creates a new batch handler.
func NewBatchHandler(deps Dependencies) *BatchHandler {
	return &BatchHandler{deps: deps}
}

// HandleBatch analyses every item; per-item failures are reported inline.
func (h *BatchHandler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze_batch"
	var req types.BatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, WrapKind(op, ErrBadRequest, errors.New("items must not be empty")))
		return
	}
	results, err := h.deps.AnalyzeBatch(r.Context(), req.Items)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.BatchResponse{Results: results})
}
