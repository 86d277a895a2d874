package config

import (
	"log/slog"
	"net"
	"os"
	"strings"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	Host string
	Port string

	// Session
	SessionSecret string // env: SESSION_SECRET, keys cookie encryption

	// Model artifacts
	HeartModelPath       string
	CholesterolModelPath string

	// Pages
	ViewsDir  string
	StaticDir string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Observability
	LogLevel       string // "debug", "info", "warn", "error"
	MetricsEnabled bool

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "HeartCheck"
	SiteTagline string // env: SITE_TAGLINE

	// Optional YAML overrides
	ConfigFile string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	env := getEnv("ENV", "development")
	defaultLevel := "info"
	if env == "development" || env == "dev" {
		defaultLevel = "debug"
	}

	return &Config{
		Env:                  env,
		Host:                 getEnv("HOST", "0.0.0.0"),
		Port:                 getEnv("PORT", "5000"),
		SessionSecret:        getEnv("SESSION_SECRET", "dev_key"),
		HeartModelPath:       getEnv("HEART_MODEL_PATH", "heart_disease_model.yaml"),
		CholesterolModelPath: getEnv("CHOLESTEROL_MODEL_PATH", "cholesterol_model.yaml"),
		ViewsDir:             getEnv("VIEWS_DIR", "./views"),
		StaticDir:            getEnv("STATIC_DIR", "./static"),
		CORSOrigins:          getEnv("CORS_ORIGINS", "*"),
		LogLevel:             getEnv("LOG_LEVEL", defaultLevel),
		MetricsEnabled:       getEnv("METRICS_ENABLED", "true") != "false",

		SiteTitle:   getEnv("SITE_TITLE", "HeartCheck"),
		SiteTagline: getEnv("SITE_TAGLINE", "Heart disease risk and cholesterol estimates"),

		ConfigFile: getEnv("CONFIG_FILE", "config.yaml"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// ServerAddr joins host and port into a listen address.
func (c *Config) ServerAddr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
