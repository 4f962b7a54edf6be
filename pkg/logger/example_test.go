package logger_test

import (
	"os"

	"github.com/wonny/fundamentals/pkg/config"
	"github.com/wonny/fundamentals/pkg/logger"
)

// Example_withFields shows the per-run fields the command attaches
func Example_withFields() {
	cfg := &config.Config{
		Env:       "production",
		LogLevel:  "debug",
		LogFormat: "json",
	}

	log := logger.New(cfg, os.Stderr).WithField("run_id", "3f2a")

	log.WithFields(map[string]interface{}{
		"metric":   "EBITDA",
		"formula":  "direct",
		"quarters": 8,
	}).Debug("Metric computed")
}
