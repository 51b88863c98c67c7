package config

import (
	"os"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from ENV. CI=true wins.
func GetEnvironment() Environment {
	return ParseEnvironment(os.Getenv("ENV"), os.Getenv("CI") == "true")
}

// ParseEnvironment maps a raw ENV value to an Environment, defaulting to development.
func ParseEnvironment(name string, ci bool) Environment {
	if ci {
		return CI
	}
	switch Environment(strings.ToLower(strings.TrimSpace(name))) {
	case Production:
		return Production
	case Test:
		return Test
	case CI:
		return CI
	default:
		return Development
	}
}

// LoadsDotEnv reports whether a local .env file is consulted before reading variables.
func (e Environment) LoadsDotEnv() bool {
	return e == Development || e == Test
}

// ReadsSecretFiles reports whether passwords may come from Docker secrets.
func (e Environment) ReadsSecretFiles() bool {
	return e == Production || e == Development
}
