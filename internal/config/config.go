// Package config loads the command-line application settings from the
// environment. Every variable is prefixed with INFURA_, e.g. INFURA_NETWORK.
package config

import (
	"time"

	"github.com/gabapcia/infura/internal/infura"
	httptransport "github.com/gabapcia/infura/internal/pkg/transport/http"
	"github.com/gabapcia/infura/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// prefix is prepended to every environment variable name.
const prefix = "INFURA"

// Config holds the application settings.
type Config struct {
	BaseURL          string        `envconfig:"BASE_URL" default:"https://api.infura.io" validate:"required,url"`
	Network          string        `envconfig:"NETWORK" default:"mainnet" validate:"required"`
	APIVersion       string        `envconfig:"API_VERSION" default:"v1" validate:"required"`
	JSONRPCVersion   string        `envconfig:"JSONRPC_VERSION" default:"2.0" validate:"required"`
	Timeout          time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	RetryMax         int           `envconfig:"RETRY_MAX" default:"0" validate:"gte=0"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool          `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string        `envconfig:"SERVICE_NAME" default:"infura" validate:"required"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ClientOptions translates the configuration into infura client options.
func (c Config) ClientOptions() []infura.Option {
	httpClient := httptransport.NewClient(
		httptransport.WithTimeout(c.Timeout),
		httptransport.WithRetryMax(c.RetryMax),
	)

	return []infura.Option{
		infura.WithBaseURL(c.BaseURL),
		infura.WithNetwork(infura.Network(c.Network)),
		infura.WithAPIVersion(c.APIVersion),
		infura.WithJSONRPCVersion(c.JSONRPCVersion),
		infura.WithHTTPClient(httpClient),
	}
}
