package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityForLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level log.Level
		want  string
	}{
		{name: "panic", level: log.PanicLevel, want: "EMERGENCY"},
		{name: "fatal", level: log.FatalLevel, want: "CRITICAL"},
		{name: "error", level: log.ErrorLevel, want: "ERROR"},
		{name: "warn", level: log.WarnLevel, want: "WARNING"},
		{name: "info", level: log.InfoLevel, want: "INFO"},
		{name: "debug", level: log.DebugLevel, want: "DEBUG"},
		{name: "trace", level: log.TraceLevel, want: "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := severityForLevel(tt.level)
			if got != tt.want {
				t.Errorf("severityForLevel(%v) = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestConfigureLogrusJSONAddsSeverity(t *testing.T) {
	t.Parallel()

	logger := log.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	ConfigureLogrusJSON(logger)
	logger.WithField("component", "test").Info("hello")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal log payload: %v", err)
	}

	got, ok := payload["severity"]
	if !ok {
		t.Fatalf("expected severity field in log payload, got: %#v", payload)
	}
	if got != "INFO" {
		t.Fatalf("expected severity %q, got %v", "INFO", got)
	}
	assert.Equal(t, "hello", payload["message"])
}

func TestConfigureLogrusJSONRespectsExistingSeverity(t *testing.T) {
	t.Parallel()

	logger := log.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	ConfigureLogrusJSON(logger)
	logger.WithField("severity", "NOTICE").Info("hello")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal log payload: %v", err)
	}

	got, ok := payload["severity"]
	if !ok {
		t.Fatalf("expected severity field in log payload, got: %#v", payload)
	}
	if got != "NOTICE" {
		t.Fatalf("expected severity %q, got %v", "NOTICE", got)
	}
}

func TestConfigure(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		logger := log.New()
		var buf bytes.Buffer
		logger.SetOutput(&buf)

		require.NoError(t, Configure(logger, "debug", FormatJSON))
		assert.Equal(t, log.DebugLevel, logger.GetLevel())

		logger.Debug("scanning")

		var payload map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
		assert.Equal(t, "DEBUG", payload["severity"])
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		logger := log.New()
		require.NoError(t, Configure(logger, "warn", FormatText))
		assert.Equal(t, log.WarnLevel, logger.GetLevel())
		assert.IsType(t, &log.TextFormatter{}, logger.Formatter)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, Configure(log.New(), "loud", FormatText))
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, Configure(log.New(), "info", "xml"))
	})
}
