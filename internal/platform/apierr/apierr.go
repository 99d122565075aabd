package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is the transport-facing error. Services return it; handlers render it.
type Error struct {
	Status int
	Code   string
	// Entity names the missing or conflicting record ("stain", "material", "guide").
	Entity string
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

// NotFound reports a missing stain, material or guide, e.g. NotFound("stain") -> "Stain not found".
func NotFound(entity string) *Error {
	entity = strings.TrimSpace(strings.ToLower(entity))
	return &Error{
		Status: http.StatusNotFound,
		Code:   entity + "_not_found",
		Entity: entity,
		Err:    errors.New(capitalize(entity) + " not found"),
	}
}

func BadRequest(err error) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "invalid_request", Err: err}
}

func Conflict(entity string, err error) *Error {
	return &Error{Status: http.StatusConflict, Code: entity + "_exists", Entity: entity, Err: err}
}

// Upstream wraps a storage failure. The message is generic; the cause stays reachable via Unwrap.
func Upstream(op string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: "upstream_failure", Err: fmt.Errorf("%s: %w", op, err)}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	ae, ok := As(err)
	return ok && ae.Status == http.StatusNotFound
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
