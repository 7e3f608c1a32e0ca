package backend

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// NetworkError is returned when a request was sent but no response was received.
type NetworkError struct {
	Err error
}

// Error implements error.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("no response from server: %v", e.Err)
}

// Unwrap returns the transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is returned when the server responded with a non-2xx status.
type HTTPError struct {
	StatusCode int
	// StatusText is the reason phrase, e.g. "Too Many Requests".
	StatusText string
	// ErrorText is the `error` field of a structured error body, empty if absent.
	ErrorText string
}

// Error implements error.
func (e *HTTPError) Error() string {
	if e.ErrorText != "" {
		return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.ErrorText)
	}
	return fmt.Sprintf("server responded %d %s", e.StatusCode, e.StatusText)
}

// IsRateLimited returns true if the server rejected the request for exceeding its quota.
func (e *HTTPError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

func newHTTPError(response *http.Response, body []byte) *HTTPError {
	err := &HTTPError{
		StatusCode: response.StatusCode,
		StatusText: statusText(response),
	}
	if gjson.ValidBytes(body) {
		if result := gjson.GetBytes(body, "error"); result.Exists() {
			err.ErrorText = result.String()
		}
	}
	return err
}

// statusText strips the code from a "429 Too Many Requests" status line.
func statusText(response *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(response.Status, strconv.Itoa(response.StatusCode)))
	if text == "" {
		text = http.StatusText(response.StatusCode)
	}
	return text
}
