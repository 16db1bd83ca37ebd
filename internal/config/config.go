package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"viewcrumbs_echo/internal/breadcrumbs"
)

// Config is the process configuration, resolved once at startup.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	LogLevel    string
	Breadcrumbs *breadcrumbs.Config
}

// Load reads .env (if present) and the environment.
// It reports whether a .env file was found so the caller can log it.
func Load(files ...string) (*Config, bool, error) {
	envLoaded := godotenv.Load(files...) == nil

	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		Breadcrumbs: breadcrumbs.DefaultConfig(),
	}

	// BREADCRUMBS_* mirror the settings the builder reads
	if v := os.Getenv("BREADCRUMBS_HOME_LABEL"); v != "" {
		cfg.Breadcrumbs.HomeLabel = v
	}
	if v := os.Getenv("BREADCRUMBS_HOME_PATH"); v != "" {
		cfg.Breadcrumbs.HomePath = v
	}
	if v := os.Getenv("BREADCRUMBS_CONTEXT_KEY"); v != "" {
		cfg.Breadcrumbs.ContextKey = v
	}
	if v := os.Getenv("BREADCRUMBS_ADD_HOME"); v != "" {
		addHome, err := strconv.ParseBool(v)
		if err != nil {
			return nil, envLoaded, fmt.Errorf("invalid BREADCRUMBS_ADD_HOME %q: %w", v, err)
		}
		cfg.Breadcrumbs.AddHome = addHome
	}

	return cfg, envLoaded, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
