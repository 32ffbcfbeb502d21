package apperror

import (
	"errors"
	"net/http"
	"strings"
)

// Sentinel kinds for domain violations. Services attach a message with the
// constructor helpers; handlers branch on the kind with errors.Is.
var (
	// ErrNotFound indicates an entity id that does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrAccessDenied indicates the caller does not own the target entity.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidState indicates an operation outside its allowed lifecycle state.
	ErrInvalidState = errors.New("invalid state")
)

func NotFound(msg string) error {
	return errors.Join(ErrNotFound, errors.New(strings.TrimSpace(msg)))
}

func AccessDenied(msg string) error {
	return errors.Join(ErrAccessDenied, errors.New(strings.TrimSpace(msg)))
}

func InvalidState(msg string) error {
	return errors.Join(ErrInvalidState, errors.New(strings.TrimSpace(msg)))
}

// Status maps a domain error kind to an HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
