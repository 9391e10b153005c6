package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Deck)
	assert.Equal(t, defaultOutput, cfg.Output)
	assert.Empty(t, cfg.Preview.Dir)
	assert.Equal(t, defaultPreview, cfg.Preview.Width)
	assert.Empty(t, cfg.Preview.FontDirs)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "deckgen.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "from-config.pptx", cfg.Output)
	assert.Equal(t, 320, cfg.Preview.Width)
	assert.Equal(t, []string{"/opt/fonts"}, cfg.Preview.FontDirs)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("DECKGEN_OUTPUT", "env.pptx")
	t.Setenv("DECKGEN_PREVIEW_WIDTH", "640")
	t.Setenv("DECKGEN_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(filepath.Join("testdata", "deckgen.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env.pptx", cfg.Output)
	assert.Equal(t, 640, cfg.Preview.Width)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")

	_, err = LoadConfig(filepath.Join("testdata", "broken.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")

	t.Setenv("DECKGEN_PREVIEW_WIDTH", "-1")
	_, err = LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preview width")
}
