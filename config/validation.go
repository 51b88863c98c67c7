package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements defines the variables that must be set explicitly in an environment
type ConfigRequirements struct {
	RequiredEnvVars []string
}

var requirements = map[Environment]ConfigRequirements{
	Development: {},
	Test:        {},
	CI: {
		RequiredEnvVars: []string{"DB_DRIVER"},
	},
	Production: {
		RequiredEnvVars: []string{
			"SERVER_PORT",
			"DB_DRIVER",
			"FRUITYVICE_BASE_URL",
		},
	},
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs []string
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg}.Error())
	}

	for _, envVar := range requirements[cfg.Env].RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			add(envVar, "required environment variable is not set")
		}
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DBHost == "" {
			add("DB_HOST", "required for the postgres driver")
		}
		if cfg.DBName == "" {
			add("DB_NAME", "required for the postgres driver")
		}
		if cfg.Env == Production && cfg.DBPassword == "" {
			add("DB_PASSWORD", "db_password secret is required in production")
		}
	case DriverSQLite:
		if cfg.DBPath == "" {
			add("DB_PATH", "required for the sqlite driver")
		}
	default:
		add("DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver))
	}

	if u, err := url.Parse(cfg.FruityviceBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		add("FRUITYVICE_BASE_URL", fmt.Sprintf("not an absolute URL: %q", cfg.FruityviceBaseURL))
	}
	if cfg.FruityviceTimeout <= 0 {
		add("FRUITYVICE_TIMEOUT", "must be positive")
	}
	if cfg.SessionTTL <= 0 {
		add("SESSION_TTL", "must be positive")
	}
	if cfg.OrderRateLimit <= 0 {
		add("ORDER_RATE_LIMIT", "must be positive")
	}
	if cfg.OrderRateWindow <= 0 {
		add("ORDER_RATE_WINDOW", "must be positive")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		add("LOG_LEVEL", fmt.Sprintf("unknown level %q", cfg.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}
