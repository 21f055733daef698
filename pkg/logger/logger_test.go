package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
}

func TestLogger_Formatting(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info")

	logger.Info("User %s logged in with ID %d", "john", 123)

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "User john logged in with ID 123", event["message"])
	assert.NotEmpty(t, event["time"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn")

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn %d", 1)
	logger.Error("error %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"warn 1"`)
	assert.Contains(t, lines[1], `"error 2"`)
}

func TestLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "chatty")

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "info").With("component", "seeder")

	logger.Info("ready")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "seeder", event["component"])
}
