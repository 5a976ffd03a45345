package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	// TrustProxy takes client addresses from X-Forwarded-For
	TrustProxy bool `env:"SERVER_TRUST_PROXY" envDefault:"false"`

	Relay   RelayConfig
	Email   EmailConfig
	Contact ContactConfig
	Site    SiteConfig
	Otel    OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Relay providers
const (
	RelayWeb3Forms = "web3forms"
	RelayMailgun   = "mailgun"
	RelayNoop      = "noop"
)

// RelayConfig selects and configures the form relay service.
type RelayConfig struct {
	// Provider: "web3forms", "mailgun" or "noop"
	Provider string `env:"RELAY_PROVIDER" envDefault:"web3forms"`

	// Endpoint receiving form-encoded submissions
	Endpoint string `env:"RELAY_ENDPOINT" envDefault:"https://api.web3forms.com/submit"`

	// AccessKey is the relay's public form identifier. It ships in every
	// submission and is not a secret.
	AccessKey string `env:"RELAY_ACCESS_KEY" envDefault:""`

	// Timeout applied by the HTTP transport, zero means no timeout
	Timeout time.Duration `env:"RELAY_TIMEOUT" envDefault:"30s"`
}

// IsConfigured returns true if the selected provider has what it needs.
func (r *RelayConfig) IsConfigured(email *EmailConfig) bool {
	switch r.Provider {
	case RelayWeb3Forms:
		return r.Endpoint != "" && r.AccessKey != ""
	case RelayMailgun:
		return email.IsConfigured()
	case RelayNoop:
		return true
	default:
		return false
	}
}

// EmailConfig holds Mailgun settings for the mailgun relay
type EmailConfig struct {
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	// MailgunAPIBase overrides the API base, e.g. the EU region
	MailgunAPIBase string `env:"MAILGUN_API_BASE" envDefault:""`
	FromEmail      string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@example.com"`
	FromName       string `env:"EMAIL_FROM_NAME" envDefault:"YourBrand"`
	// ToAddress receives contact form messages
	ToAddress string `env:"CONTACT_TO_ADDRESS" envDefault:"hello@yourbrand.com"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// ContactConfig tunes the contact form sessions.
type ContactConfig struct {
	// SessionTTL is how long an idle form session is kept
	SessionTTL time.Duration `env:"CONTACT_SESSION_TTL" envDefault:"30m"`
	// SweepInterval is how often idle sessions are evicted
	SweepInterval time.Duration `env:"CONTACT_SESSION_SWEEP" envDefault:"5m"`
	// RatePerMinute limits submissions per client address
	RatePerMinute int `env:"CONTACT_RATE_PER_MINUTE" envDefault:"6"`
	RateBurst     int `env:"CONTACT_RATE_BURST" envDefault:"3"`
	// SecureCookie marks the form session cookie Secure
	SecureCookie bool `env:"CONTACT_SECURE_COOKIE" envDefault:"false"`
}

// SiteConfig holds page content settings
type SiteConfig struct {
	// Locale used when the request does not ask for a supported one
	Locale string `env:"SITE_LOCALE" envDefault:"ru"`
	// ContentPath points to a YAML file replacing the embedded content
	ContentPath string `env:"SITE_CONTENT_PATH" envDefault:""`
}

// Address returns the listen address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsLocal reports whether the process runs in local development
func (c *Config) IsLocal() bool {
	return c.Environment == "" || c.Environment == "local"
}

// Validate rejects combinations that cannot work at runtime
func (c *Config) Validate() error {
	switch c.Relay.Provider {
	case RelayWeb3Forms, RelayMailgun, RelayNoop:
	default:
		return fmt.Errorf("unknown RELAY_PROVIDER %q", c.Relay.Provider)
	}
	if !c.IsLocal() {
		if c.Relay.Provider == RelayNoop {
			return fmt.Errorf("RELAY_PROVIDER=noop is only allowed with ENVIRONMENT=local")
		}
		if !c.Relay.IsConfigured(&c.Email) {
			return fmt.Errorf("RELAY_PROVIDER=%s is not configured", c.Relay.Provider)
		}
	}
	if c.Contact.SessionTTL <= 0 {
		return fmt.Errorf("CONTACT_SESSION_TTL must be positive")
	}
	if c.Contact.SweepInterval <= 0 {
		return fmt.Errorf("CONTACT_SESSION_SWEEP must be positive")
	}
	if c.Contact.RatePerMinute <= 0 || c.Contact.RateBurst <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE and CONTACT_RATE_BURST must be positive")
	}
	if c.Otel.SamplingRate < 0 || c.Otel.SamplingRate > 1 {
		return fmt.Errorf("OTEL_SAMPLING_RATE must be within 0..1")
	}
	return nil
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("relay_provider", cfg.Relay.Provider),
		slog.Bool("relay_configured", cfg.Relay.IsConfigured(&cfg.Email)),
		slog.String("locale", cfg.Site.Locale),
	)

	return cfg, nil
}
