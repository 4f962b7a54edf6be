package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("Expected LogLevel to be warn, got %s", cfg.LogLevel)
	}

	if cfg.Precedence != "last" {
		t.Errorf("Expected Precedence to be last, got %s", cfg.Precedence)
	}

	if cfg.Output != "text" {
		t.Errorf("Expected Output to be text, got %s", cfg.Output)
	}

	if cfg.Explain {
		t.Error("Expected Explain to default to false")
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("FUNDAMENTALS_PRECEDENCE", "first")
	t.Setenv("FUNDAMENTALS_OUTPUT", "yaml")
	t.Setenv("FUNDAMENTALS_EXPLAIN", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" {
		t.Errorf("Expected LogFormat to be json, got %s", cfg.LogFormat)
	}

	if cfg.Precedence != "first" {
		t.Errorf("Expected Precedence to be first, got %s", cfg.Precedence)
	}

	if cfg.Output != "yaml" {
		t.Errorf("Expected Output to be yaml, got %s", cfg.Output)
	}

	if !cfg.Explain {
		t.Error("Expected Explain to be true")
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	t.Setenv("ENV", "invalid")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateInvalidPrecedence(t *testing.T) {
	t.Setenv("FUNDAMENTALS_PRECEDENCE", "random")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when FUNDAMENTALS_PRECEDENCE is invalid, got nil")
	}
}

func TestValidateInvalidOutput(t *testing.T) {
	t.Setenv("FUNDAMENTALS_OUTPUT", "xml")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when FUNDAMENTALS_OUTPUT is invalid, got nil")
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")

	value := getEnvAsBool("TEST_BOOL", false)
	if value != true {
		t.Errorf("Expected value to be true, got %v", value)
	}

	t.Setenv("TEST_BOOL", "not-a-bool")
	if getEnvAsBool("TEST_BOOL", true) != true {
		t.Error("Expected fallback to default on malformed bool")
	}
}

func TestProductionDefaultsToJSONLogs(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("Expected LogFormat to be json in production, got %s", cfg.LogFormat)
	}

	t.Setenv("LOG_FORMAT", "console")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LogFormat != "console" {
		t.Errorf("Expected explicit LOG_FORMAT to win, got %s", cfg.LogFormat)
	}
}
