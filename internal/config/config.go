// Package config loads server configuration from a YAML file, environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config is the server configuration.
type Config struct {
	ListenAddr  string        `yaml:"listen_addr"`
	DBPath      string        `yaml:"db_path"`
	LogLevel    string        `yaml:"log_level"`
	MetricsPath string        `yaml:"metrics_path"`
	RequireAuth bool          `yaml:"require_auth"`
	JWTSecret   string        `yaml:"jwt_secret"`
	TokenTTL    time.Duration `yaml:"token_ttl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr:  ":8080",
		DBPath:      "./data/hall.db",
		LogLevel:    "info",
		MetricsPath: "/metrics",
		TokenTTL:    24 * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads the YAML file at path, if any, over the defaults and then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.ListenAddr = getEnv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	return cfg, nil
}

// Parse builds the configuration from command-line arguments (without the
// program name). --config names the YAML file; other flags override it.
func Parse(args []string) (Config, error) {
	fs := pflag.NewFlagSet("safeforhall", pflag.ContinueOnError)
	path := fs.StringP("config", "c", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	listen := fs.String("listen", "", "address to listen on")
	dbPath := fs.String("db", "", "SQLite database path")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	requireAuth := fs.Bool("require-auth", false, "require operator tokens on person and event services")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := Load(*path)
	if err != nil {
		return Config{}, err
	}
	if fs.Changed("listen") {
		cfg.ListenAddr = *listen
	}
	if fs.Changed("db") {
		cfg.DBPath = *dbPath
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if fs.Changed("require-auth") {
		cfg.RequireAuth = *requireAuth
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that cannot be defaulted.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db path is required")
	}
	if c.RequireAuth && c.JWTSecret == "" {
		return errors.New("jwt secret is required when auth is enabled")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}
	return nil
}
