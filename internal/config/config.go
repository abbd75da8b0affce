package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the demo shop configuration.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Paysafecard   PaysafecardConfig   `mapstructure:"paysafecard"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"required"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORS            CORSConfig    `mapstructure:"cors"`
}

// CORSConfig holds CORS settings for the demo endpoints.
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

// PaysafecardConfig holds the API credentials and the redirect URLs handed
// to the payment client.
type PaysafecardConfig struct {
	APIKey          string        `mapstructure:"api_key" validate:"required"`
	Testing         bool          `mapstructure:"testing"`
	SuccessURL      string        `mapstructure:"success_url" validate:"required,url"`
	FailureURL      string        `mapstructure:"failure_url" validate:"required,url"`
	NotificationURL string        `mapstructure:"notification_url" validate:"omitempty,url"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

var validate = validator.New()

// Load reads configuration from an optional YAML file and PSC_-prefixed
// environment variables, applying defaults for everything not set.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("PSC")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for missing or out-of-range values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Paysafecard.RequestTimeout < 0 {
		return fmt.Errorf("paysafecard request_timeout must not be negative")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.cors.allowed_origins", []string{"*"})
	v.SetDefault("server.cors.allow_credentials", false)

	v.SetDefault("paysafecard.testing", true)
	v.SetDefault("paysafecard.success_url", "http://localhost:8080/capture?payment_id={payment_id}")
	v.SetDefault("paysafecard.failure_url", "http://localhost:8080/failure")
	v.SetDefault("paysafecard.notification_url", "http://localhost:8080/notify")
	v.SetDefault("paysafecard.request_timeout", "30s")

	v.SetDefault("observability.log_level", "info")
}
