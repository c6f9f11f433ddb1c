package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProductionURL, config.BaseURL)
	assert.Equal(t, 10*time.Second, config.Timeout)
	assert.Equal(t, 0, config.MaxRetries)
	assert.False(t, config.CircuitBreakerEnabled)
	assert.NoError(t, config.Validate())
}

func TestConfig_Validate_MissingBaseURL(t *testing.T) {
	config := DefaultConfig()
	config.BaseURL = ""

	assert.Error(t, config.Validate())
}

func TestConfig_Validate_InvalidBaseURL(t *testing.T) {
	config := DefaultConfig()
	config.BaseURL = "not-a-url"

	assert.Error(t, config.Validate())
}

func TestConfig_Validate_CircuitBreaker(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fail threshold", func(c *Config) { c.CircuitBreakerFailThreshold = 0 }},
		{"zero success threshold", func(c *Config) { c.CircuitBreakerSuccessThreshold = 0 }},
		{"zero timeout", func(c *Config) { c.CircuitBreakerTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig().WithCircuitBreaker(5, 2, 30*time.Second)
			tt.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestConfig_Host(t *testing.T) {
	tests := []struct {
		baseURL  string
		expected string
	}{
		{"https://api.huobi.pro", "api.huobi.pro"},
		{"https://api.huobi.pro/", "api.huobi.pro"},
		{"http://127.0.0.1:8080", "127.0.0.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.baseURL, func(t *testing.T) {
			config := DefaultConfig().WithBaseURL(tt.baseURL)
			assert.Equal(t, tt.expected, config.Host())
		})
	}
}

func TestConfig_Chaining(t *testing.T) {
	creds := &Credentials{APIKey: "key", SecretKey: "secret"}
	config := DefaultConfig().
		WithCredentials(creds).
		WithBaseURL("https://api.testnet.huobi.pro").
		WithTimeout(5 * time.Second)

	require.NotNil(t, config.Credentials)
	assert.Equal(t, "key", config.Credentials.APIKey)
	assert.Equal(t, "https://api.testnet.huobi.pro", config.BaseURL)
	assert.Equal(t, 5*time.Second, config.Timeout)
}

func TestCredentials_String_NeverExposesSecret(t *testing.T) {
	creds := Credentials{APIKey: "abcdef1234567890", SecretKey: "super-secret-value"}

	s := creds.String()
	assert.NotContains(t, s, "super-secret-value")
	assert.NotContains(t, s, creds.APIKey)
	assert.Contains(t, s, "abcd****7890")
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "****"},
		{"short", "****"},
		{"12345678", "****"},
		{"abcdef1234567890", "abcd****7890"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskKey(tt.input))
		})
	}
}
