package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedResponse = errors.New("malformed response")
)

// NetworkError means the request never produced a response.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() []error { return []error{ErrUnavailable, e.Err} }

// AuthError is a 401 response. The token, if one was sent, has been
// reported to the unauthorized handler by the time the caller sees it.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string { return e.Detail }

func (e *AuthError) Unwrap() error { return ErrUnauthorized }

// APIError is a non-2xx response other than 401.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string { return e.Detail }

// MalformedResponseError is a 2xx response whose body could not be decoded.
type MalformedResponseError struct {
	Status int
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response (status %d): %v", e.Status, e.Err)
}

func (e *MalformedResponseError) Unwrap() []error { return []error{ErrMalformedResponse, e.Err} }

// ErrorDetail returns the backend-supplied message carried by an AuthError
// or APIError anywhere in err's chain, or "" when there is none.
func ErrorDetail(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Detail
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
