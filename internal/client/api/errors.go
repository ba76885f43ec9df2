package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the request never got
	// a response from the server.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks 401 responses.
	ErrUnauthorized = errors.New("unauthorized")
)

// ServerError is a non-2xx response. Message carries the server-provided
// error text when the body had one, so it can be surfaced verbatim.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}
