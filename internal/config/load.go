package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. TODOLIST_DATABASE_URL for database.url.
const EnvPrefix = "TODOLIST"

// defaults lists every known key with its default value. Keys without a
// sensible default map to "" so that viper still binds their env variable.
var defaults = map[string]any{
	"server.port":                        8080,
	"server.log_level":                   "info",
	"server.debug":                       false,
	"server.app_name":                    "TodoList API",
	"server.version":                     "1.0.0",
	"server.read_header_timeout_seconds": 5,
	"server.shutdown_timeout_seconds":    10,

	"database.url":                       "",
	"database.max_open_conns":            10,
	"database.max_idle_conns":            5,
	"database.conn_max_lifetime_minutes": 5,

	"auth.jwt_secret":                     "",
	"auth.bcrypt_cost":                    10,
	"auth.token_lifetime_minutes":         30,
	"auth.refresh_token_lifetime_minutes": 10080,

	"pagination.default_page_size": 20,
	"pagination.max_page_size":     100,

	"cors.allowed_origins": []string{"http://localhost:3000", "http://localhost:8080"},

	"rate_limit.enabled":             true,
	"rate_limit.requests_per_minute": 60,
	"rate_limit.redis_url":           "",
}

// Load configuration from environment variables and optionally config files.
// A .env file in the working directory is loaded first when present.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv alone does not reach Unmarshal for keys read from nested
	// structs, so bind each key explicitly.
	for key := range defaults {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.CORS.AllowedOrigins = splitOrigins(cfg.CORS.AllowedOrigins)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// splitOrigins flattens comma-separated entries and drops blanks, so both a
// YAML list and a single env string are accepted.
func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, entry := range in {
		for _, origin := range strings.Split(entry, ",") {
			if o := strings.TrimSpace(origin); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
