// Package server provides the HTTP REST API for the town matching engine.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrTownNotFound indicates the requested town does not exist
type ErrTownNotFound struct {
	TownID uuid.UUID
}

func (e *ErrTownNotFound) Error() string {
	return fmt.Sprintf("town not found: %s", e.TownID)
}

// ErrPreferencesNotFound indicates the user has no saved preferences
type ErrPreferencesNotFound struct {
	UserID uuid.UUID
}

func (e *ErrPreferencesNotFound) Error() string {
	return fmt.Sprintf("no preferences found for user: %s", e.UserID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrInvalidWeights indicates a weight table that cannot be scored with
type ErrInvalidWeights struct {
	Reason string
}

func (e *ErrInvalidWeights) Error() string {
	return fmt.Sprintf("invalid weights: %s", e.Reason)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrTownNotFound, *ErrPreferencesNotFound:
		return http.StatusNotFound
	case *ErrValidation, *ErrInvalidWeights:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
