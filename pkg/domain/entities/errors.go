package entities

import "errors"

// Validation errors for transportation problems. They are returned wrapped with
// the offending position, so callers should match them with errors.Is.
var (
	// ErrDimensionMismatch means the cost matrix does not match the supply and demand lengths
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrNegativeValue means a supply, demand or cost entry is below zero
	ErrNegativeValue = errors.New("negative value")
	// ErrEmptyProblem means there are no suppliers or no consumers
	ErrEmptyProblem = errors.New("empty problem")
)

// Editing errors
var (
	ErrCountOutOfRange = errors.New("count out of range")
	ErrIndexOutOfRange = errors.New("index out of range")
)
