package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired marks a 401 response. Matched with errors.Is.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx response from the content platform.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// Is reports 401 responses as ErrSessionExpired.
func (e *APIError) Is(target error) bool {
	return target == ErrSessionExpired && e.Status == http.StatusUnauthorized
}
