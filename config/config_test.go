package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesOptions(t *testing.T) {
	cfg := New(WithReverseSign(true), WithVerbose(true))
	assert.True(t, cfg.ReverseSign)
	assert.True(t, cfg.Verbose)
}

func TestNewDefaultsMatchOriginalShippedBehavior(t *testing.T) {
	cfg := New()
	assert.False(t, cfg.ReverseSign)
	assert.False(t, cfg.Verbose)
}

func TestLoadDecodesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "symcirc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reverse_sign: true\nverbose: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.ReverseSign)
	assert.False(t, cfg.Verbose)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
