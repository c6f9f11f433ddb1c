package core

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a client error.
type ErrorType int

// Error type constants categorize failures for programmatic handling.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeTransport indicates the HTTP request itself failed
	// (network, TLS, timeout). Nothing was decoded.
	ErrorTypeTransport
	// ErrorTypeDecode indicates the response body could not be decoded
	// as the exchange's response envelope.
	ErrorTypeDecode
	// ErrorTypeAPI indicates the exchange accepted the HTTP request but
	// signaled a logical failure through the envelope status field.
	ErrorTypeAPI
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"TRANSPORT",
		"DECODE",
		"API",
	}[t]
}

// Sentinel errors for common error conditions.
var (
	// ErrNoCredentials is returned when a signed operation is attempted
	// without credentials configured.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrCircuitBreakerOpen is returned when the circuit breaker refuses
	// a request.
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

// Error represents a structured failure from the client.
// API errors carry the exchange's error code and message; decode and API
// errors additionally carry the raw response body for diagnosis.
type Error struct {
	// Type categorizes the error.
	Type ErrorType `json:"type"`
	// Code is the exchange-specific error code (API errors only).
	Code string `json:"code,omitempty"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Body is the raw response body, when one was received.
	Body string `json:"body,omitempty"`

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[huobi] %s (%s): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("[huobi] %s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewTransportError wraps a failed dispatch as a transport error.
func NewTransportError(cause error) *Error {
	return &Error{
		Type:    ErrorTypeTransport,
		Message: cause.Error(),
		cause:   cause,
	}
}

// NewDecodeError wraps a response-body decoding failure, keeping the raw
// body for diagnosis.
func NewDecodeError(cause error, body string) *Error {
	return &Error{
		Type:    ErrorTypeDecode,
		Message: cause.Error(),
		Body:    body,
		cause:   cause,
	}
}

// NewAPIError builds an error from a rejected envelope. The full raw body is
// retained so callers can branch on exchange-specific fields.
func NewAPIError(code, message, body string) *Error {
	return &Error{
		Type:    ErrorTypeAPI,
		Code:    code,
		Message: message,
		Body:    body,
	}
}

// IsTransportError returns true if the error is a failed dispatch.
func IsTransportError(err error) bool {
	return isType(err, ErrorTypeTransport)
}

// IsDecodeError returns true if the error is an envelope decoding failure.
func IsDecodeError(err error) bool {
	return isType(err, ErrorTypeDecode)
}

// IsAPIError returns true if the error is a server-signaled rejection.
func IsAPIError(err error) bool {
	return isType(err, ErrorTypeAPI)
}

func isType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

func errInvalidBreakerConfig(field string) error {
	return errors.New(field + " must be positive when circuit breaker is enabled")
}
