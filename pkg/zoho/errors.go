package zoho

import "fmt"

// APIError is a non-2xx answer of the projects API.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("zoho %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Retryable reports whether the call may succeed on a later attempt.
func (e *APIError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
