package service

import "errors"

// Sentinel errors returned by Service operations.
var (
	ErrUnknownDomain  = errors.New("unknown domain")
	ErrTooManyRecords = errors.New("too many records")
	ErrNotStarted     = errors.New("service not started")
)
