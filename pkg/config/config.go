package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the fundamentals command
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	Env string `default:"development"` // development, staging, production

	// Logging
	LogLevel  string `default:"warn"`
	LogFormat string `default:"console"`

	// Metrics engine
	Precedence string `default:"last"` // last, first

	// Report
	Output  string `default:"text"` // text, json, yaml
	Explain bool   `default:"false"`
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}

	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if cfg.Env == "production" {
		// production defaults to JSON lines
		cfg.LogFormat = "json"
	}
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.Precedence = getEnv("FUNDAMENTALS_PRECEDENCE", cfg.Precedence)
	cfg.Output = getEnv("FUNDAMENTALS_OUTPUT", cfg.Output)
	cfg.Explain = getEnvAsBool("FUNDAMENTALS_EXPLAIN", cfg.Explain)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that enumerated settings hold known values
func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Precedence != "last" && c.Precedence != "first" {
		return fmt.Errorf("FUNDAMENTALS_PRECEDENCE must be one of: last, first")
	}

	if c.Output != "text" && c.Output != "json" && c.Output != "yaml" {
		return fmt.Errorf("FUNDAMENTALS_OUTPUT must be one of: text, json, yaml")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	// Also try next to the executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
