package logging

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, sc.Err())
	return entries
}

func TestNewLogger(t *testing.T) {
	t.Run("creates the file and parent dirs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "debug.log")
		logger, err := NewLogger(path, LevelDebug)
		require.NoError(t, err)
		defer logger.Close()

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("empty path discards", func(t *testing.T) {
		logger, err := NewLogger("", LevelDebug)
		require.NoError(t, err)
		assert.Nil(t, logger.out.file)
		logger.Info("dropped")
		assert.NoError(t, logger.Close())
	})
}

func TestLevelsAndAttrs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := NewLogger(path, LevelInfo)
	require.NoError(t, err)

	child := logger.With("widget", "main", "dangling")
	child.Debug("hidden")
	child.Info("shown", "event", "toggle_open")
	child.Error("failed")
	require.NoError(t, logger.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "main", entries[0]["widget"])
	assert.Equal(t, "toggle_open", entries[0]["event"])
	assert.NotContains(t, entries[0], "dangling")
	assert.Equal(t, "ERROR", entries[1]["level"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))

	assert.True(t, ValidLevel("error"))
	assert.False(t, ValidLevel("trace"))
}

func TestCloseTwice(t *testing.T) {
	logger, err := NewLogger(filepath.Join(t.TempDir(), "x.log"), LevelInfo)
	require.NoError(t, err)
	child := logger.With("k", "v")
	require.NoError(t, child.Close())
	assert.NoError(t, logger.Close())
	assert.Nil(t, logger.out.file)
}
