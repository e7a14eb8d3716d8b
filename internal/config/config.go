package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database" validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth" validate:"required"`
	Pagination PaginationConfig `mapstructure:"pagination" validate:"required"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Debug exposes internal error details in 5xx responses and adds source
	// locations to log records.
	Debug                    bool   `mapstructure:"debug"`
	AppName                  string `mapstructure:"app_name" validate:"required"`
	Version                  string `mapstructure:"version" validate:"required"`
	ReadHeaderTimeoutSeconds int    `mapstructure:"read_header_timeout_seconds" validate:"gt=0"`
	ShutdownTimeoutSeconds   int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// ReadHeaderTimeout returns the header read timeout as a duration.
func (c ServerConfig) ReadHeaderTimeout() time.Duration {
	return time.Duration(c.ReadHeaderTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown timeout as a duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret" validate:"required,min=32"`
	BCryptCost                  int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes" validate:"gt=0,lt=1440"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"gt=0,gtfield=TokenLifetimeMinutes"`
}

// PaginationConfig bounds page sizes accepted by list endpoints.
type PaginationConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size" validate:"gt=0,ltefield=MaxPageSize"`
	MaxPageSize     int `mapstructure:"max_page_size" validate:"gt=0"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig controls per-client request throttling. When RedisURL is
// empty the limiter keeps its counters in process memory.
type RateLimitConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute" validate:"required_if=Enabled true,gte=0"`
	RedisURL          string `mapstructure:"redis_url" validate:"omitempty,url"`
}
