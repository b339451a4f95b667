package domain

import "errors"

// Domain errors.
var (
	ErrMalformedSnapshot = errors.New("malformed project snapshot")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidPriority   = errors.New("invalid priority")
)
