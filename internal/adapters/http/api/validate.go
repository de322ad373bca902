package api

import (
	"net/http"

	"github.com/okian/careerlens/internal/domain/types"
)

// ValidateHandler handles POST /{domain}/validate.
type ValidateHandler struct {
	deps Dependencies
}

// NewValidateHandler creates a new validate handler.
func NewValidateHandler(deps Dependencies) *ValidateHandler {
	return &ValidateHandler{deps: deps}
}

// HandleValidate answers 200 when every record is valid and 422 with
// per-field messages otherwise.
func (h *ValidateHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	const op = "api.validate"
	domain, raws, status, err := decodeRecords(w, r, op)
	if err != nil {
		writeError(w, status, err)
		return
	}
	fieldErrs, err := h.deps.Validate(r.Context(), domain, raws)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, types.ValidationErrorResponse{
			Error:  "Validation failed",
			Errors: fieldErrs,
		})
		return
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Validation passed"})
}
