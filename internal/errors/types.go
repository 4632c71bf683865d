package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

type ErrorCategory string

const (
	StatusError    ErrorCategory = "status"
	RefreshError   ErrorCategory = "refresh"
	TransportError ErrorCategory = "transport"
	DecodeError    ErrorCategory = "decode"
)

// Labels used as the single key of the error payload handed back to MCP hosts.
const (
	LabelStatus    = "Unexpected HTTP status code"
	LabelRefresh   = "Token refresh failed"
	LabelUnhandled = "Unhandled error"
)

type InsightsError struct {
	Category   ErrorCategory
	Op         string // Operation that failed, e.g. "GET" or "refresh"
	Endpoint   string // API endpoint relative to the API base (when applicable)
	StatusCode int    // Set for StatusError only
	Body       string // Response body, StatusError only
	Cause      error  // Underlying error
}

func (e *InsightsError) Error() string {
	if e.Category == StatusError {
		return fmt.Sprintf("%s %s: unexpected HTTP status code %d, content: %s", e.Op, e.Endpoint, e.StatusCode, e.Body)
	}
	if e.Endpoint != "" {
		return fmt.Sprintf("%s %s failed: %v", e.Op, e.Endpoint, e.Cause)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Cause)
}

func (e *InsightsError) Unwrap() error { return e.Cause }

// Label returns the human readable key that identifies the failure category.
func (e *InsightsError) Label() string {
	switch e.Category {
	case StatusError:
		return LabelStatus
	case RefreshError:
		return LabelRefresh
	default:
		return LabelUnhandled
	}
}

// Message returns the value paired with Label in the error payload.
func (e *InsightsError) Message() string {
	if e.Category == StatusError {
		return fmt.Sprintf("%d, content: %s", e.StatusCode, e.Body)
	}
	if e.Cause == nil {
		return e.Error()
	}
	return e.Cause.Error()
}

// Payload renders the error in the { <label>: <message> } shape.
func (e *InsightsError) Payload() map[string]string {
	return map[string]string{e.Label(): e.Message()}
}

func NewStatusError(op, endpoint string, statusCode int, body []byte) *InsightsError {
	return &InsightsError{
		Category:   StatusError,
		Op:         op,
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Body:       string(body),
		Cause:      errors.Newf("unexpected HTTP status code %d", statusCode),
	}
}

func NewRefreshError(cause error) *InsightsError {
	return &InsightsError{
		Category: RefreshError,
		Op:       "refresh",
		Cause:    errors.Wrap(cause, "refresh access token"),
	}
}

func NewTransportError(op, endpoint string, cause error) *InsightsError {
	return &InsightsError{
		Category: TransportError,
		Op:       op,
		Endpoint: endpoint,
		Cause:    cause,
	}
}

func NewDecodeError(op, endpoint string, cause error) *InsightsError {
	return &InsightsError{
		Category: DecodeError,
		Op:       op,
		Endpoint: endpoint,
		Cause:    errors.Wrap(cause, "decode response"),
	}
}

// Payload returns the { <label>: <message> } mapping for any error. Errors
// that are not an *InsightsError are reported as unhandled.
func Payload(err error) map[string]string {
	var ie *InsightsError
	if errors.As(err, &ie) {
		return ie.Payload()
	}
	return map[string]string{LabelUnhandled: err.Error()}
}

// CategoryOf reports the category of err, or the empty string when err does
// not carry one.
func CategoryOf(err error) ErrorCategory {
	var ie *InsightsError
	if errors.As(err, &ie) {
		return ie.Category
	}
	return ""
}
