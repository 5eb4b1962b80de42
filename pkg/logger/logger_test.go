package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"invalid", zerolog.WarnLevel},
		{"", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf})

	log.WithField("rows", 12).Infof("loaded %s", "prices.csv")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "loaded prices.csv", entry["message"])
	assert.Equal(t, float64(12), entry["rows"])
	assert.Equal(t, "produce-dashboard", entry["app"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})

	log.Info("hidden")
	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Equal(t, "shown", decodeLine(t, &buf)["message"])
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "console", Output: &buf})

	log.Info("human readable")
	assert.Contains(t, buf.String(), "human readable")
	assert.False(t, strings.HasPrefix(buf.String(), "{"))
}

func TestWithErrorAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Output: &buf})

	log.WithError(errors.New("boom")).
		WithFields(map[string]interface{}{"line": 7, "item": "Kiwi"}).
		Error("row rejected")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, float64(7), entry["line"])
	assert.Equal(t, "Kiwi", entry["item"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Errorf("nothing %d", 1) })
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Output: &buf})

	ctx := log.WithField("source", "prices.csv").WithContext(context.Background())
	FromContext(ctx).Info("from context")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "from context", entry["message"])
	assert.Equal(t, "prices.csv", entry["source"])

	assert.NotPanics(t, func() { FromContext(context.Background()).Info("dropped") })
}
