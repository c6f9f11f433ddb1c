package core

import (
	"encoding/json"

	"github.com/bytedance/sonic"
)

// Envelope status values used by the exchange.
const (
	// StatusOK marks a successful response.
	StatusOK = "ok"
	// StatusError marks a rejected request.
	StatusError = "error"
)

// Envelope is the exchange's uniform response wrapper. Every REST response
// carries it; the status field signals request-level success or failure
// independent of the HTTP status code.
type Envelope struct {
	Status  string          `json:"status,omitempty"`
	ErrCode string          `json:"err-code,omitempty"`
	ErrMsg  string          `json:"err-msg,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// IsError reports whether the envelope represents a rejected request.
// A missing status field counts as success; the exchange omits it on some
// endpoints and the payload shape is the caller's concern.
func (e *Envelope) IsError() bool {
	return e.Status == StatusError
}

// Err converts a rejected envelope into a typed API error carrying the raw
// body. Returns nil for successful envelopes.
func (e *Envelope) Err(body string) error {
	if !e.IsError() {
		return nil
	}
	return NewAPIError(e.ErrCode, e.ErrMsg, body)
}

// DecodeEnvelope parses a response body into an Envelope. A failure here
// means the body is not valid JSON for the envelope shape and is surfaced
// as a decode error with the raw body attached.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		return nil, NewDecodeError(err, string(body))
	}
	return &env, nil
}
