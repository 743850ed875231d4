package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Host)
	require.Equal(t, 53002, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.Equal(t, "127.0.0.1:53002", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CW_HOST", "10.0.0.5")
	t.Setenv("CW_PORT", "53010")
	t.Setenv("CW_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "10.0.0.5:53010", cfg.Addr())
	require.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("CW_PORT", "70000")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("CW_TIMEOUT", "0s")
	_, err := Load()
	require.Error(t, err)
}
