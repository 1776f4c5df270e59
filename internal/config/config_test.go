package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_ENV", "nonexistent")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, int64(32768), cfg.ReadLimit)
	assert.Equal(t, 32, cfg.SendBuffer)
	assert.Equal(t, 54*time.Second, cfg.PingPeriod)
	assert.Equal(t, 64, cfg.MsgRate)
	assert.Equal(t, time.Second, cfg.MsgRateInterval)
	assert.Equal(t, int64(3600), cfg.Turn.TTL)
	assert.Equal(t, "chitchat", cfg.Turn.UsernamePrefix)
	assert.Empty(t, cfg.Turn.Secret)
}
