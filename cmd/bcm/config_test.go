package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bcmaps/engine"
)

func TestReadConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bcm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: ret\ntime: true\nmax-expected: 10\n"), 0o600))

	cfg := DefaultConfig()
	require.NoError(t, ReadConfig(path, &cfg))

	assert.Equal(t, engine.RET, cfg.Format)
	assert.True(t, cfg.Time)
	assert.Equal(t, 10, cfg.MaxExpected)
	assert.Equal(t, "a-star", cfg.Algorithm)
	assert.True(t, cfg.Diagonal)
	assert.Equal(t, "3:100", cfg.TimeOpts)
}

func TestReadConfig_Errors(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, ReadConfig(filepath.Join(t.TempDir(), "absent.yaml"), &cfg))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: gpx\n"), 0o600))
	assert.ErrorIs(t, ReadConfig(path, &cfg), engine.ErrUnknownFormat)
}

func TestConfig_RunnerOptions(t *testing.T) {
	cfg := DefaultConfig()
	log, err := cfg.NewLogger()
	require.NoError(t, err)

	opts, err := cfg.runnerOptions(log)
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	cfg.Time = true
	opts, err = cfg.runnerOptions(log)
	require.NoError(t, err)
	assert.Len(t, opts, 4)

	cfg.CacheSize = 0
	_, err = cfg.runnerOptions(log)
	assert.Error(t, err)
}
