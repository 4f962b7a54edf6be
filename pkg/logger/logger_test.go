package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/fundamentals/pkg/config"
)

func jsonLogger(level string, buf *bytes.Buffer) *Logger {
	return New(&config.Config{Env: "development", LogLevel: level, LogFormat: "json"}, buf)
}

// lines decodes every JSON log line written to buf
func lines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := jsonLogger("warn", &buf)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("nothing computable")

	entries := lines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "nothing computable", entries[0]["message"])
	assert.Equal(t, "development", entries[0]["env"])
}

func TestLoggersDoNotShareLevels(t *testing.T) {
	var quiet, loud bytes.Buffer
	q := jsonLogger("error", &quiet)
	l := jsonLogger("debug", &loud)

	q.Debug("dropped")
	l.Debug("kept")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "kept")
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	log := jsonLogger("debug", &buf)

	log.WithField("run_id", "r-1").
		WithFields(map[string]interface{}{"metric": "P/E", "quarters": 4}).
		WithError(errors.New("invalid amount: 12x")).
		Debug("metric computed")

	entries := lines(t, &buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "r-1", e["run_id"])
	assert.Equal(t, "P/E", e["metric"])
	assert.Equal(t, float64(4), e["quarters"])
	assert.Equal(t, "invalid amount: 12x", e["error"])
}

func TestConsoleFormat(t *testing.T) {
	for _, format := range []string{"console", "pretty"} {
		var buf bytes.Buffer
		New(&config.Config{LogLevel: "info", LogFormat: format}, &buf).Info("report rendered")

		assert.Contains(t, buf.String(), "report rendered")
		assert.False(t, json.Valid(buf.Bytes()), "%s output is not JSON", format)
	}
}

func TestNop(t *testing.T) {
	// Must not panic and must not write anywhere
	Nop().WithField("k", "v").WithError(errors.New("x")).Warn("discarded")
}
