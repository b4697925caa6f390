package gapanalysis

import (
	"fmt"
	"time"
)

// ValidationError represents a user-input validation failure, rejected
// before any external call. Not retryable without changing the input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// APICallError represents a transport-level failure calling the LLM.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// TimeoutError indicates the analysis call exceeded its time bound. Kept
// distinct from APICallError so callers can suggest shortening the input.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("gap analysis timed out after %s", e.Timeout)
}

// ParseError represents an LLM response that could not be interpreted as
// the expected structured shape even after defensive extraction. The raw
// response is preserved for diagnostics.
type ParseError struct {
	Message     string
	RawResponse string
	Cause       error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
