// Package api provides typed wrappers over the signed-request client for a
// catalogue of Huobi REST endpoints. Each wrapper builds parameters, calls
// the client, and decodes the envelope payload into a typed model; the
// signing and error-envelope handling live entirely in the client.
package api

import (
	"fmt"

	"github.com/bytedance/sonic"

	"huobi/pkg/client"
)

// API exposes typed Huobi endpoint calls on top of a Client.
type API struct {
	client *client.Client
}

// New creates an API bound to the given client.
func New(c *client.Client) *API {
	return &API{client: c}
}

func decode[T any](body string, what string) (T, error) {
	var out T
	if err := sonic.Unmarshal([]byte(body), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("unmarshal %s: %w", what, err)
	}
	return out, nil
}
