package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestNew_TextLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: "warn"})

	log.Info("hidden")
	log.Warn("shown", "households", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "households=3")

	buf.Reset()
	log.With("component", "reader").Error("failed", "stage", "read")
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "component=reader")
	assert.Contains(t, buf.String(), "stage=read")

	buf.Reset()
	New(Options{Output: &buf, Level: "debug"}).Debug("now visible")
	assert.Contains(t, buf.String(), "msg=\"now visible\"")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: "info", Format: "json"})

	log.Stage("transform", time.Now(), "rows", 12)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "stage complete", entry["msg"])
	assert.Equal(t, "transform", entry["stage"])
	assert.EqualValues(t, 12, entry["rows"])
	assert.Contains(t, entry, "duration")
}
