package arn

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bounded ARN fields.
var (
	// ErrServiceTooLong indicates a service segment over MaxServiceLen bytes.
	ErrServiceTooLong = errors.New("service name too long (max 32 characters)")

	// ErrAccountTooLong indicates an account segment over MaxAccountLen bytes.
	ErrAccountTooLong = errors.New("account ID too long (max 12 characters)")

	// ErrResourceIDTooLong indicates a resource ID over MaxResourceIDLen bytes.
	ErrResourceIDTooLong = errors.New("resource ID too long (max 64 characters)")
)

// InvalidFormatError reports input with fewer than the six colon-separated
// segments an ARN requires.
type InvalidFormatError struct {
	Segments int
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid ARN format: expected at least 6 parts separated by ':' but got %d", e.Segments)
}

// InvalidRegionError reports a region segment that is not in the region
// table. It carries the offending text verbatim.
type InvalidRegionError struct {
	Region string
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("invalid region: %s", e.Region)
}
