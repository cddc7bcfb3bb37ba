package contentful

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from a Contentful API.
type APIError struct {
	URL        string
	StatusCode int
	ID         string // Contentful error id, e.g. "NotFound", "AccessTokenInvalid"
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e == nil {
		return "contentful: api error"
	}
	msg := fmt.Sprintf("contentful: HTTP %d", e.StatusCode)
	if e.ID != "" {
		msg += " " + e.ID
	}
	if m := strings.TrimSpace(e.Message); m != "" {
		msg += ": " + m
	}
	if e.RequestID != "" {
		msg += " (request " + e.RequestID + ")"
	}
	return msg
}

// IsNotFound reports whether err is a 404 from the API, as returned for an
// unknown space, environment or content type.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func newAPIError(u string, resp *http.Response, body []byte) *APIError {
	e := &APIError{
		URL:        u,
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("X-Contentful-Request-Id"),
	}
	var payload struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		e.ID = payload.Sys.ID
		e.Message = payload.Message
	}
	return e
}
