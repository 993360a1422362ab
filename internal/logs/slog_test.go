package logs_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := logs.NewSlogLoggerWithWriter(&buf, "warn")

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestSlogLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logs.NewSlogLoggerWithWriter(&buf, "DEBUG")
	logger.Debug("hello", "id", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.InDelta(t, 7, entry["id"], 0)
}

func TestSlogLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logs.NewSlogLoggerWithWriter(&buf, "verbose")
	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
