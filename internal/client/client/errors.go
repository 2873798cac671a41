package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no usable session credential was presented
	// (either none is stored locally or the server rejected it).
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrUnavailable means the request could not complete at the transport
	// level; the server never produced a response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUserExists is the signup conflict: the username is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrValidation marks required input missing before a request is even
	// attempted.
	ErrValidation = errors.New("validation error")
)

// RemoteError is a rejection the store reported itself: a non-2xx response
// that is not covered by a more specific sentinel above. Message carries the
// server-provided reason when one was present in the payload.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote rejection (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote rejection (%d)", e.StatusCode)
}
