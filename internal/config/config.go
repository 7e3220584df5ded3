package config

import (
	"fmt"
	"time"

	"github.com/fyrsmithlabs/habitd/internal/insights"
	"github.com/fyrsmithlabs/habitd/internal/logging"
)

// Config is the root habitd configuration.
type Config struct {
	Log       logging.Config  `koanf:"log"`
	Engine    insights.Config `koanf:"engine"`
	Forecast  ForecastConfig  `koanf:"forecast"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ForecastConfig controls forecast generation.
type ForecastConfig struct {
	// HorizonDays is the default number of days to forecast ahead.
	HorizonDays int `koanf:"horizon_days"`
}

// TelemetryConfig holds OpenTelemetry configuration.
type TelemetryConfig struct {
	Enabled        bool           `koanf:"enabled"`
	Endpoint       string         `koanf:"endpoint"`
	Protocol       string         `koanf:"protocol"`
	ServiceName    string         `koanf:"service_name"`
	ServiceVersion string         `koanf:"service_version"`
	Insecure       bool           `koanf:"insecure"`
	TLSSkipVerify  bool           `koanf:"tls_skip_verify"`
	Sampling       SamplingConfig `koanf:"sampling"`
	Metrics        MetricsConfig  `koanf:"metrics"`
	Shutdown       ShutdownConfig `koanf:"shutdown"`
}

// SamplingConfig controls trace sampling.
type SamplingConfig struct {
	Rate           float64 `koanf:"rate"`
	AlwaysOnErrors bool    `koanf:"always_on_errors"`
}

// MetricsConfig controls OTEL metric export.
type MetricsConfig struct {
	Enabled        bool     `koanf:"enabled"`
	ExportInterval Duration `koanf:"export_interval"`
}

// ShutdownConfig controls telemetry shutdown behavior.
type ShutdownConfig struct {
	Timeout Duration `koanf:"timeout"`
}

// DefaultTelemetry returns telemetry config defaults. Telemetry is off
// until explicitly enabled.
func DefaultTelemetry() TelemetryConfig {
	return TelemetryConfig{
		Enabled:        false,
		Endpoint:       "localhost:4317",
		Protocol:       "grpc",
		ServiceName:    "habitd",
		ServiceVersion: "dev",
		Insecure:       true,
		Sampling: SamplingConfig{
			Rate:           1.0,
			AlwaysOnErrors: true,
		},
		Metrics: MetricsConfig{
			Enabled:        true,
			ExportInterval: Duration(60 * time.Second),
		},
		Shutdown: ShutdownConfig{
			Timeout: Duration(10 * time.Second),
		},
	}
}

// Validate checks the telemetry section.
func (c *TelemetryConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Endpoint == "" {
		return fmt.Errorf("telemetry endpoint is required when enabled")
	}
	switch c.Protocol {
	case "grpc", "http/protobuf":
	default:
		return fmt.Errorf("telemetry protocol must be 'grpc' or 'http/protobuf', got %q", c.Protocol)
	}
	if c.ServiceName == "" {
		return fmt.Errorf("telemetry service_name is required when enabled")
	}
	if c.Sampling.Rate < 0 || c.Sampling.Rate > 1 {
		return fmt.Errorf("sampling rate must be in [0, 1], got %v", c.Sampling.Rate)
	}
	if c.Metrics.Enabled && c.Metrics.ExportInterval.Duration() < time.Second {
		return fmt.Errorf("metrics export_interval must be at least 1s")
	}
	if c.Shutdown.Timeout.Duration() <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	return nil
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Log:    *logging.NewDefaultConfig(),
		Engine: insights.DefaultConfig(),
		Forecast: ForecastConfig{
			HorizonDays: 7,
		},
		Telemetry: DefaultTelemetry(),
	}
}

// Validate checks the full configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if c.Forecast.HorizonDays < 1 || c.Forecast.HorizonDays > 365 {
		return fmt.Errorf("forecast: horizon_days must be in [1, 365], got %d", c.Forecast.HorizonDays)
	}
	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	return nil
}
