package apierr

import (
	"fmt"
	"net/http"
)

// Error carries the HTTP status a failure should surface as, together
// with a short machine-readable code and the underlying cause.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// InvalidID marks a path identifier that is not a well-formed store id.
// Raised before any store access.
func InvalidID(resource string) *Error {
	return New(http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid %s id", resource))
}

// NotFound marks a well-formed identifier with no matching document.
func NotFound(resource string) *Error {
	return New(http.StatusNotFound, "not_found", fmt.Errorf("%s not found", resource))
}

// StoreUnavailable marks an operation attempted without a database
// connection.
func StoreUnavailable() *Error {
	return New(http.StatusServiceUnavailable, "store_unavailable", fmt.Errorf("no database connection established"))
}
