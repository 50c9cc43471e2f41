// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/greeter/greeter/internal/model"
)

// ErrEmptyPort is returned when PORT is present but blank.
var ErrEmptyPort = errors.New("PORT is set but empty")

// EnvironmentVar selects the deployment environment.
// Anything other than "production" enables .env loading.
const EnvironmentVar = "ENVIRONMENT"

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        uint16 `env:"PORT" envDefault:"3000"`

	// Echoed by the root page. Required, but may be empty.
	MySecret string `env:"MY_SECRET,required"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Server timeouts
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the listen address, bound on all interfaces.
func (c *Config) Addr() string {
	return "0.0.0.0:" + strconv.FormatUint(uint64(c.Port), 10)
}

// Settings returns the shared read-only values handed to handlers.
func (c *Config) Settings() model.Settings {
	return model.Settings{Secret: c.MySecret}
}

// Load parses environment variables and returns a Config.
// Returns an error if MY_SECRET is missing or PORT is not a valid uint16.
// PORT defaults to 3000 only when absent; a blank value is rejected.
func Load() (*Config, error) {
	if port, ok := os.LookupEnv("PORT"); ok && port == "" {
		return nil, fmt.Errorf("failed to parse config: %w", ErrEmptyPort)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// DotEnvPath returns the dotenv file named by ENV_FILE, or ".env".
func DotEnvPath() string {
	if path := os.Getenv("ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}

// LoadDotEnv loads variables from path into the process environment unless
// ENVIRONMENT is "production". Variables that are already set win over the file.
// It reports whether a file was applied; a missing file is not an error.
func LoadDotEnv(path string) (bool, error) {
	if os.Getenv(EnvironmentVar) == "production" {
		return false, nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return true, nil
}
