package planning

import "errors"

// Input validation errors. Every calculator either returns a computed value
// or one of these; there are no partial results.
var (
	ErrEmptyDemandSample   = errors.New("planning: demand sample is empty")
	ErrInvalidLeadTime     = errors.New("planning: lead time must be positive")
	ErrInvalidServiceLevel = errors.New("planning: service level must be within (0, 1)")
	ErrInvalidDaysOfStock  = errors.New("planning: days of stock must be positive")
)
