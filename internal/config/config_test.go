package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Paysafecard: PaysafecardConfig{
			APIKey:          "psc_test_key",
			Testing:         true,
			SuccessURL:      "http://localhost:8080/capture?payment_id={payment_id}",
			FailureURL:      "http://localhost:8080/failure",
			NotificationURL: "http://localhost:8080/notify",
			RequestTimeout:  30 * time.Second,
		},
		Observability: ObservabilityConfig{LogLevel: "info"},
	}
}

func TestConfig_Validate_Success(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_MissingAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.Paysafecard.APIKey = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIKey")
}

func TestConfig_Validate_InvalidServerPort(t *testing.T) {
	tests := []struct {
		name string
		port int
	}{
		{"port zero", 0},
		{"port negative", -1},
		{"port too high", 99999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.Port = tt.port
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_InvalidURLs(t *testing.T) {
	cfg := validConfig()
	cfg.Paysafecard.SuccessURL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Paysafecard.NotificationURL = ""
	assert.NoError(t, cfg.Validate(), "notification url is optional")
}

func TestConfig_Validate_NegativeTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Paysafecard.RequestTimeout = -1 * time.Second

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request_timeout")
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	// defaults alone carry no API key
	_, err := Load()
	assert.Error(t, err)
}
