package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Output: &buf})

	log.WithComponent("StoryRegistry").Info("Session opened", "story_id", 7)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Session opened", line["message"])
	assert.Equal(t, "StoryRegistry", line["component"])
	assert.EqualValues(t, 7, line["story_id"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Level: "warn", Output: &buf})

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Console: true, Output: &buf})

	log.Info("Server started", "port", 8080)

	assert.Contains(t, buf.String(), "Server started")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
