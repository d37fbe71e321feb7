package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "class", cfg.Defaults.Kind)
	assert.Equal(t, "web", cfg.Defaults.Platform)
	assert.Equal(t, "js", cfg.Defaults.Language)
	require.NotNil(t, cfg.Defaults.Props)
	assert.False(t, *cfg.Defaults.Props)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestDefaultConfig_YAMLKeys(t *testing.T) {
	data, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "defaults:")
	assert.Contains(t, out, "upperCase: false")
	assert.Contains(t, out, "timestamps: true")
}

func TestDefaultConfig_PassesSchema(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	assert.NoError(t, v.Validate(DefaultConfig()))
}
