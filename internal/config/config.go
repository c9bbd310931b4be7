package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Identity IdentityConfig `mapstructure:"identity" validate:"required"`
	Push     PushConfig     `mapstructure:"push"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ShutdownTimeoutSeconds is how long in-flight requests get to drain
	// after SIGINT/SIGTERM before the server is torn down.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains dashboard authentication settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
}

// IdentityConfig contains settings for the external identity provider's
// admin API (account creation, deletion, credential updates).
type IdentityConfig struct {
	BaseURL    string `mapstructure:"base_url"    validate:"required,url"`
	ServiceKey string `mapstructure:"service_key" validate:"required"`

	// GeneratedEmailDomain is the domain used when provisioning riders
	// without a supplied email (rider123456@<domain>).
	GeneratedEmailDomain string `mapstructure:"generated_email_domain" validate:"required,fqdn"`
}

// PushConfig contains settings for the push-notification provider.
type PushConfig struct {
	EndpointURL string `mapstructure:"endpoint_url" validate:"required,url"`

	// BatchSize is the maximum number of notifications forwarded to the
	// provider in a single request. The provider rejects larger batches.
	BatchSize int `mapstructure:"batch_size" validate:"required,gt=0,lte=100"`
}
