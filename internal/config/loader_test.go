package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/rcg/internal/errors"
	"github.com/opmodel/rcg/internal/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		path := writeConfig(t, `
defaults:
  kind: functional
  platform: native
  language: ts
  props: true
  upperCase: true
log:
  timestamps: false
`)

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)

		assert.Equal(t, "functional", cfg.Defaults.Kind)
		assert.Equal(t, "native", cfg.Defaults.Platform)
		assert.Equal(t, "ts", cfg.Defaults.Language)
		require.NotNil(t, cfg.Defaults.Props)
		assert.True(t, *cfg.Defaults.Props)
		require.NotNil(t, cfg.Defaults.UpperCase)
		assert.True(t, *cfg.Defaults.UpperCase)
		assert.Nil(t, cfg.Defaults.Smoke, "unset keys stay nil")
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Empty(t, cfg.Defaults.Kind)
		assert.Nil(t, cfg.Defaults.Props)
	})

	t.Run("env vars are not merged by the loader", func(t *testing.T) {
		t.Setenv("RCG_KIND", "functional")
		path := writeConfig(t, "defaults:\n  kind: class\n")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "class", cfg.Defaults.Kind)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "defaults: [unclosed\n")

		_, err := NewLoader().Load(path)
		assert.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("flag path", func(t *testing.T) {
		path := writeConfig(t, "defaults:\n  platform: native\n")

		res, err := LoadConfig(LoadOptions{ConfigFlag: path, Validate: true})
		require.NoError(t, err)
		assert.True(t, res.Exists)
		assert.Equal(t, SourceFlag, res.Path.Source)
		assert.Equal(t, "native", res.Config.Defaults.Platform)
	})

	t.Run("env path", func(t *testing.T) {
		path := writeConfig(t, "defaults:\n  language: ts\n")
		testutil.ClearEnv(t)
		t.Setenv("RCG_CONFIG", path)

		res, err := LoadConfig(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, SourceEnv, res.Path.Source)
		assert.Equal(t, path, res.Path.Value)
		assert.Equal(t, "ts", res.Config.Defaults.Language)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.yaml")

		res, err := LoadConfig(LoadOptions{ConfigFlag: path, Validate: true})
		require.NoError(t, err)
		assert.False(t, res.Exists)
		assert.NotNil(t, res.Config)
	})

	t.Run("schema violation", func(t *testing.T) {
		path := writeConfig(t, "defaults:\n  platform: desktop\n")

		_, err := LoadConfig(LoadOptions{ConfigFlag: path, Validate: true})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})
}
