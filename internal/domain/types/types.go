// Package types contains request and response envelopes shared by the
// service and its transports.
package types

import "github.com/okian/careerlens/internal/domain/model"

// RawRecord is one form row as submitted, keyed by the variant's field names.
type RawRecord = map[string]any

// BatchItem is one profile in a batch request.
type BatchItem struct {
	ID      string      `json:"id,omitempty"`
	Domain  string      `json:"domain"`
	Records []RawRecord `json:"records"`
}

// BatchRequest is the body of POST /analyze/batch.
type BatchRequest struct {
	Items []BatchItem `json:"items"`
}

// BatchResult carries either a report or the reason the item failed.
type BatchResult struct {
	ID     string        `json:"id,omitempty"`
	Report *model.Report `json:"report,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// BatchResponse is the body returned by POST /analyze/batch.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse mirrors the host backend's 422 body.
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Errors map[string][]string `json:"errors"`
}

// ErrorResponse is returned for every other failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
