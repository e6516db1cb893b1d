package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors matched by [ServerError] through errors.Is.
var (
	// ErrUnauthorized matches 401 and 403 responses.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound matches 404 responses.
	ErrNotFound = errors.New("not found")
)

// NetworkError reports a call that produced no response at all.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError reports a call that did not complete within its deadline.
type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out: %v", e.Op, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response. Code and Message come from the JSON error
// body when the server sent one.
type ServerError struct {
	Op      string
	Status  int
	Code    string
	Message string
}

func (e *ServerError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: http %d (%s): %s", e.Op, e.Status, e.Code, msg)
	}
	return fmt.Sprintf("%s: http %d: %s", e.Op, e.Status, msg)
}

// Is maps the response status onto [ErrUnauthorized] and [ErrNotFound].
func (e *ServerError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	default:
		return false
	}
}

// ProtocolError reports a 2xx response whose body could not be decoded.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// TierLimitError reports a server-enforced quota violation. It is never
// retried.
type TierLimitError struct {
	Op      string
	Status  int
	Message string
}

func (e *TierLimitError) Error() string {
	return fmt.Sprintf("%s: tier limit reached: %s", e.Op, e.Message)
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized reports whether err is a 401 or 403 response.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsTierLimit reports whether err carries a [TierLimitError].
func IsTierLimit(err error) bool {
	var tierErr *TierLimitError
	return errors.As(err, &tierErr)
}
