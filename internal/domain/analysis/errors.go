package analysis

import "errors"

// ErrInvalidConfig is returned when an Engine is built with unusable thresholds.
var ErrInvalidConfig = errors.New("invalid analysis configuration")
