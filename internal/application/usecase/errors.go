package usecase

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// APIErrorTitle is shown when the server rejected a request.
	APIErrorTitle = "API error"
	// NetworkErrorTitle is shown when a request could not complete.
	NetworkErrorTitle = "Network error"
	// ErrorTitle is shown for any other failure.
	ErrorTitle = "Error"
)

// APIError reports a response the server answered with a failure.
type APIError struct {
	StatusCode int
	Status     string
	Code       int
	Message    string
	CausedBy   []string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: %s", e.Status)
}

// Text returns the message shown to the user.
func (e *APIError) Text() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		return strings.TrimSpace(e.Status)
	}
	if len(e.CausedBy) > 0 {
		return msg + "\n" + strings.Join(e.CausedBy, "\n")
	}
	return msg
}

// NetworkError reports a request that failed before a usable response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "network error"
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Describe returns the user-facing title and message for err.
func Describe(err error) (title, message string) {
	if err == nil {
		return "", ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return APIErrorTitle, apiErr.Text()
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return NetworkErrorTitle, netErr.Error()
	}
	return ErrorTitle, err.Error()
}
