package domain

import "errors"

// Error kinds recognized at operation boundaries. Operations convert these
// to descriptive user-facing strings; they never cross into the dispatch
// loop as errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrInvalidArgument = errors.New("invalid argument")
)
