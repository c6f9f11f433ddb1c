// Package client implements the credential-bound Huobi REST client. It
// constructs canonically encoded, HMAC-signed request URLs, dispatches them
// through the transport collaborator, and surfaces the exchange's response
// envelope as typed errors.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"huobi/internal/circuitbreaker"
	httpclient "huobi/internal/http"
	"huobi/pkg/core"
	"huobi/pkg/sign"
)

// Client issues requests against a single exchange host on behalf of one set
// of credentials. It holds only immutable configuration, so a single instance
// is safe for concurrent use without locking.
type Client struct {
	config  *core.Config
	http    *httpclient.Client
	breaker *circuitbreaker.Breaker
	logger  zerolog.Logger
	now     func() time.Time
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds configuration options for the Client.
type Options struct {
	Logger zerolog.Logger
	Clock  func() time.Time
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock returns an option that overrides the timestamp source.
// Used in tests to pin the injected Timestamp parameter.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Clock = now
	}
}

// New creates a Client from the given configuration.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	hc, err := httpclient.NewClient(&httpclient.Config{
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		RetryWaitMin: config.RetryWaitMin,
		RetryWaitMax: config.RetryWaitMax,
		Headers:      map[string]string{"User-Agent": config.UserAgent},
	}, options.Logger)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	var cb *circuitbreaker.Breaker
	if config.CircuitBreakerEnabled {
		cb = circuitbreaker.New(circuitbreaker.Config{
			FailThreshold:    config.CircuitBreakerFailThreshold,
			SuccessThreshold: config.CircuitBreakerSuccessThreshold,
			Timeout:          config.CircuitBreakerTimeout,
		})
	}

	return &Client{
		config:  config,
		http:    hc,
		breaker: cb,
		logger:  options.Logger,
		now:     options.Clock,
	}, nil
}

// Close releases resources held by the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}

// Get issues an unsigned GET against a public endpoint. Caller parameters
// are canonicalized as-is; no auth parameters or signature are attached.
// Returns the raw response body after the envelope check.
func (c *Client) Get(ctx context.Context, endpoint string, params core.Params) (string, error) {
	url := c.baseURL() + endpoint
	if query := sign.Canonicalize(params); query != "" {
		url += "?" + query
	}

	return c.dispatch(ctx, func() (*resty.Response, error) {
		return c.http.Get(ctx, url,
			httpclient.WithHeader("Content-Type", "application/x-www-form-urlencoded"))
	})
}

// GetSigned issues a signed GET. The four auth parameters are injected,
// the augmented set is canonicalized and signed, and the percent-encoded
// signature is appended to the final query. Returns the raw response body.
func (c *Client) GetSigned(ctx context.Context, endpoint string, params core.Params) (string, error) {
	url, err := c.signedURL(http.MethodGet, endpoint, params)
	if err != nil {
		return "", err
	}

	return c.dispatch(ctx, func() (*resty.Response, error) {
		return c.http.Get(ctx, url,
			httpclient.WithHeader("Content-Type", "application/x-www-form-urlencoded"))
	})
}

// PostSigned issues a signed POST carrying payload as a JSON body. The
// signature covers the canonical query only, never the body; the exchange
// verifies POST bodies separately. Returns the raw response body.
func (c *Client) PostSigned(ctx context.Context, endpoint string, params core.Params, payload any) (string, error) {
	url, err := c.signedURL(http.MethodPost, endpoint, params)
	if err != nil {
		return "", err
	}

	return c.dispatch(ctx, func() (*resty.Response, error) {
		return c.http.Post(ctx, url, payload, httpclient.WithHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		}))
	})
}

// signedURL builds the complete request target for a signed operation:
// auth parameter injection, canonicalization, pre-sign assembly, HMAC, and
// signature attachment.
func (c *Client) signedURL(method, endpoint string, params core.Params) (string, error) {
	if c.config.Credentials == nil {
		return "", core.ErrNoCredentials
	}
	creds := c.config.Credentials

	p := params.Clone().
		Set("AccessKeyId", creds.APIKey).
		Set("SignatureMethod", sign.SignatureMethod).
		Set("SignatureVersion", sign.SignatureVersion).
		Set("Timestamp", sign.Timestamp(c.now()))

	query := sign.Canonicalize(p)
	preSign := sign.PreSign(method, c.config.Host(), endpoint, query)
	signature := sign.HMACSHA256(creds.SecretKey, preSign)

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Str("access_key", core.MaskKey(creds.APIKey)).
		Msg("signed request")

	// The signature itself is excluded from the signed portion.
	return c.baseURL() + endpoint + "?" + query + "&Signature=" + sign.PercentEncode(signature), nil
}

// dispatch runs one request through the optional circuit breaker and applies
// the envelope check. No retries, no recovery; every failure is surfaced.
func (c *Client) dispatch(ctx context.Context, fn func() (*resty.Response, error)) (string, error) {
	if c.breaker != nil && !c.breaker.Allow() {
		return "", core.ErrCircuitBreakerOpen
	}

	resp, err := fn()
	if c.breaker != nil {
		c.breaker.Record(err == nil)
	}
	if err != nil {
		c.logger.Error().Err(err).Msg("http request failed")
		return "", core.NewTransportError(err)
	}

	body := resp.Bytes()
	env, err := core.DecodeEnvelope(body)
	if err != nil {
		return "", err
	}

	if apiErr := env.Err(string(body)); apiErr != nil {
		c.logger.Warn().
			Str("err_code", env.ErrCode).
			Str("err_msg", env.ErrMsg).
			Msg("api error")
		return "", apiErr
	}

	return string(body), nil
}

func (c *Client) baseURL() string {
	return strings.TrimSuffix(c.config.BaseURL, "/")
}
