package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/kraftreview/internal/adapters/outbound/logging"
	"github.com/openkraft/kraftreview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_JSONToFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(domain.DefaultConfig().Log, &buf)
	require.NoError(t, err)

	logger.Info("review served", zap.Int("score", 7))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "review served", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 7, entry["score"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	cfg := domain.DefaultConfig().Log
	cfg.Level = "warn"
	logger, err := logging.New(cfg, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	cfg := domain.DefaultConfig().Log
	cfg.Format = "console"
	logger, err := logging.New(cfg, &buf)
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_File(t *testing.T) {
	cfg := domain.DefaultConfig().Log
	cfg.File = filepath.Join(t.TempDir(), "kraftreview.log")
	logger, err := logging.New(cfg, nil)
	require.NoError(t, err)

	logger.Info("to file")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNew_BadLevel(t *testing.T) {
	cfg := domain.DefaultConfig().Log
	cfg.Level = "chatty"
	_, err := logging.New(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
