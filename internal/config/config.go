package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix for all environment variables, e.g. SOKUDO_API_KEY.
const envPrefix = "SOKUDO"

// Config is the process-wide configuration, loaded once at startup and
// immutable afterwards.
type Config struct {
	// APIKey authenticates against the PageSpeed Insights API. Required.
	// It is sent as a query parameter on the upstream call and must never
	// appear in logs or responses.
	APIKey string `envconfig:"API_KEY" required:"true"`

	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`

	// AllowedOrigins is the CORS allow-list. Origins not on the list get no
	// Access-Control-Allow-Origin header; the request is still served.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"https://sokudo.app,http://localhost:3000"`

	// UpstreamEndpoint is the runPagespeed endpoint. Overridable so tests
	// and the demo server can stand in for the real API.
	UpstreamEndpoint string `envconfig:"UPSTREAM_ENDPOINT" default:"https://www.googleapis.com/pagespeedonline/v5/runPagespeed"`

	// Strategy is the device profile passed upstream (mobile or desktop).
	Strategy string `envconfig:"STRATEGY" default:"mobile"`

	// UpstreamTimeout bounds the single outbound audit call. Lighthouse
	// runs routinely take tens of seconds.
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"60s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"` // json, console
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}
	return &cfg, nil
}
