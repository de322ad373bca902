package repository

import "errors"

// Sentinel kinds for report store errors.
var (
	ErrNotFound     = errors.New("report not found")
	ErrInvalidLimit = errors.New("invalid ranking limit")
	ErrMissingID    = errors.New("report has no id")
)
