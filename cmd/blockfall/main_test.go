package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.log")

	logger, closer, err := newLogger("debug", path)
	require.NoError(t, err)
	logger.Debug("hello", "k", "v")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "blockfall")
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, _, err := newLogger("chatty", "")
	assert.Error(t, err)
}

func TestLoadConfigFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("", "fixed", config.ShapesStandard)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Speed.Increment)
	assert.Equal(t, config.ShapesStandard, cfg.Pieces.Preset)

	_, err = loadConfig("", "impossible", "")
	assert.Error(t, err)
}

func TestWriteCatalog(t *testing.T) {
	var buf bytes.Buffer
	writeCatalog(&buf, tetris.ReferenceShapes())
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "7 shapes:"))
	assert.Contains(t, out, "#2 = #5")
	assert.Contains(t, out, "#4 = #6")
	assert.Contains(t, out, "████████", "the bar is drawn four cells wide")

	buf.Reset()
	writeCatalog(&buf, tetris.StandardShapes())
	assert.Contains(t, buf.String(), "No duplicate shapes.")
}

func TestWriteCatalogList(t *testing.T) {
	var buf bytes.Buffer
	writeCatalogList(&buf, registry.List())
	out := buf.String()

	assert.Contains(t, out, config.ShapesReference)
	assert.Contains(t, out, config.ShapesStandard)
	assert.Contains(t, out, "Description")
}
