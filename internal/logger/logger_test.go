package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ponto.log")
	l, err := New(Config{Level: "info", File: path})
	require.NoError(t, err)

	l.Info("report written", "path", "out.xlsx")
	l.Debug("hidden")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "report written")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewDebugWritesStderr(t *testing.T) {
	var stderr bytes.Buffer
	l, err := New(Config{Debug: true, Level: "error", Stderr: &stderr})
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, l.GetLevel())

	l.Debug("grouping events", "count", 3)
	assert.Contains(t, stderr.String(), "grouping events")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty"})
	assert.Error(t, err)
}
