package httpapi

import (
	"errors"
	"net/http"

	"github.com/mle-ats/assignmail/internal/assignment"
)

// HTTPError is an error with everything needed to render a JSON error response.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to users).
	Err error

	// Message is the user-facing error message.
	Message string

	// RequestID is the request tracking ID.
	RequestID string

	// Code is the HTTP status code (e.g., 404, 500).
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// WithError attaches the underlying error.
func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Err = err
	}
}

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	e := &HTTPError{
		Code:    code,
		Message: message,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, opts...)
}

func ErrBadGateway(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusBadGateway, message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message, opts...)
}

// AsHTTPError extracts the HTTPError from an error chain if present.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// assignmentError maps pipeline failures to HTTP responses.
// Anything unclassified is a 500 carrying the error text, like the original relay.
func assignmentError(err error) *HTTPError {
	switch {
	case errors.Is(err, assignment.ErrMissingInput):
		return ErrBadRequest("Missing recruiterId or jobId", WithError(err))
	case errors.Is(err, assignment.ErrRecruiterNotFound):
		return ErrNotFound("Recruiter not found", WithError(err))
	case errors.Is(err, assignment.ErrJobNotFound):
		return ErrNotFound("Job not found", WithError(err))
	case errors.Is(err, assignment.ErrAttachmentFetch):
		return ErrBadGateway("Failed to fetch job description", WithError(err))
	case errors.Is(err, assignment.ErrDelivery):
		return ErrInternal("Failed to send email", WithError(err))
	default:
		return ErrInternal(err.Error(), WithError(err))
	}
}
