package core

import (
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
)

// ProductionURL is the default Huobi REST API base URL.
const ProductionURL = "https://api.huobi.pro"

// Credentials holds API authentication credentials.
// The secret key is only ever used as HMAC key material; it must never be
// written to logs, request URLs, or error messages.
type Credentials struct {
	// APIKey is the public API key identifier (AccessKeyId).
	APIKey string `json:"api_key"`
	// SecretKey is the private key used for signing requests.
	SecretKey string `json:"secret_key"`
}

// String returns a loggable representation with the API key masked and the
// secret key omitted entirely.
func (c Credentials) String() string {
	return "Credentials{APIKey:" + MaskKey(c.APIKey) + "}"
}

// MaskKey obscures all but the first and last four characters of a key.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Config contains all configuration options for a Client.
// It includes authentication, networking, and circuit breaker settings.
type Config struct {
	// BaseURL is the scheme and host all requests are issued against.
	// The host component is also a literal part of the pre-sign string.
	BaseURL     string       `json:"base_url" validate:"required,url"`
	Credentials *Credentials `json:"credentials,omitempty"`

	// Timeout is the maximum duration for HTTP requests.
	Timeout      time.Duration `json:"timeout" validate:"min=1ms"`
	MaxRetries   int           `json:"max_retries" validate:"min=0"`
	RetryWaitMin time.Duration `json:"retry_wait_min" validate:"min=0"`
	RetryWaitMax time.Duration `json:"retry_wait_max" validate:"min=0"`

	// UserAgent is sent with every request.
	UserAgent string `json:"user_agent"`

	CircuitBreakerEnabled          bool          `json:"circuit_breaker_enabled"`
	CircuitBreakerFailThreshold    int           `json:"circuit_breaker_fail_threshold"`
	CircuitBreakerSuccessThreshold int           `json:"circuit_breaker_success_threshold"`
	CircuitBreakerTimeout          time.Duration `json:"circuit_breaker_timeout"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config initialized with sensible defaults:
// production base URL, 10s timeout, no retries, circuit breaker disabled.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:      ProductionURL,
		Timeout:      10 * time.Second,
		MaxRetries:   0,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 1 * time.Second,
		UserAgent:    "huobi-go",

		CircuitBreakerEnabled:          false,
		CircuitBreakerFailThreshold:    5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,

		LogLevel: "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return err
	}
	if c.CircuitBreakerEnabled {
		if c.CircuitBreakerFailThreshold <= 0 {
			return errInvalidBreakerConfig("CircuitBreakerFailThreshold")
		}
		if c.CircuitBreakerSuccessThreshold <= 0 {
			return errInvalidBreakerConfig("CircuitBreakerSuccessThreshold")
		}
		if c.CircuitBreakerTimeout <= 0 {
			return errInvalidBreakerConfig("CircuitBreakerTimeout")
		}
	}
	return nil
}

// Host returns the host component of the base URL, as used in the pre-sign
// string.
func (c *Config) Host() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithBaseURL sets the API base URL and returns the config for chaining.
func (c *Config) WithBaseURL(baseURL string) *Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithCircuitBreaker enables the circuit breaker and returns the config for chaining.
func (c *Config) WithCircuitBreaker(failThreshold, successThreshold int, timeout time.Duration) *Config {
	c.CircuitBreakerEnabled = true
	c.CircuitBreakerFailThreshold = failThreshold
	c.CircuitBreakerSuccessThreshold = successThreshold
	c.CircuitBreakerTimeout = timeout
	return c
}
