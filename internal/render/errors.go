package render

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned by the HTTP renderer when the service responds with a
// non-2xx status.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: render service returned %d: %s", e.Operation, e.StatusCode, e.Message)
}

// IsStatus reports whether err is an *APIError with the given HTTP status.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsNotFound reports whether err is an *APIError with status 404.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
