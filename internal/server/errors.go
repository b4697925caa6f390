// Package server provides the HTTP REST API for the resume tailoring
// engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-tailoring/internal/gapanalysis"
	"github.com/jonathan/resume-tailoring/internal/schemas"
	"github.com/jonathan/resume-tailoring/internal/session"
)

// ErrSessionNotFound indicates the session ID is unknown.
type ErrSessionNotFound struct {
	SessionID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		notFound    *ErrSessionNotFound
		validation  *ErrValidation
		inputErr    *gapanalysis.ValidationError
		schemaErr   *schemas.ValidationError
		timeoutErr  *gapanalysis.TimeoutError
		apiErr      *gapanalysis.APICallError
		parseErr    *gapanalysis.ParseError
		stateErr    *session.StateError
		gapIndexErr *session.GapIndexError
		proposalErr *session.ProposalError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &inputErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout
	case errors.As(err, &apiErr), errors.As(err, &parseErr):
		return http.StatusBadGateway
	case errors.As(err, &stateErr):
		return http.StatusConflict
	case errors.As(err, &gapIndexErr):
		return http.StatusBadRequest
	case errors.As(err, &proposalErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
