package bookstack

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an API failure for callers that branch on it.
type ErrorKind string

const (
	KindUnauthorized   ErrorKind = "unauthorized"
	KindNotFound       ErrorKind = "not_found"
	KindRemote         ErrorKind = "remote_error"
	KindSchemaMismatch ErrorKind = "schema_mismatch"
)

// APIError carries the failure kind plus the action that was being
// attempted, so tool results can tell the caller exactly what failed.
type APIError struct {
	Kind    ErrorKind
	Action  string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to %s: %s (status %d)", e.Action, e.Message, e.Status)
	}
	return fmt.Sprintf("failed to %s: %s", e.Action, e.Message)
}

// IsNotFound reports whether err is an APIError for a missing item.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}
