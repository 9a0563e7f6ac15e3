package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/labyrinth/config"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()

	logger := New(&buf, cfg)
	logger.Debug("hidden")
	logger.Info("player moved", "to", "hall")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"player moved\"")
	assert.Contains(t, out, "to=hall")
}

func TestNew_JSONDebug(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "debug", LogFormat: "json"}

	WithError(New(&buf, cfg), errors.New("boom")).Debug("trap")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "trap", rec["msg"])
	assert.Equal(t, "boom", rec["error"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestSetup_Discard(t *testing.T) {
	restoreDefault(t)

	logger, closer, err := Setup(config.Default())
	require.NoError(t, err)
	defer closer.Close()

	assert.Same(t, logger, slog.Default())
}

func TestSetup_FileWithSession(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "game.log")
	cfg := &config.Config{LogFile: path, LogLevel: "info", LogFormat: "json"}

	logger, closer, err := Setup(cfg)
	require.NoError(t, err)
	logger.Info("session started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(data, &rec))
	id, ok := rec["session_id"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestSetup_BadPath(t *testing.T) {
	restoreDefault(t)
	cfg := &config.Config{LogFile: filepath.Join(t.TempDir(), "missing", "game.log")}

	_, _, err := Setup(cfg)
	assert.ErrorContains(t, err, "open log file")
}
