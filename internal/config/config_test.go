package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.False(t, cfg.Prod())
}

func TestLoadRequiresKeyWithBackendURL(t *testing.T) {
	t.Setenv("AXISELECT_WEB_BACKEND_URL", "https://backend.example.com")

	_, err := Load()
	assert.ErrorIs(t, err, ErrBackendKeyMissing)

	t.Setenv("AXISELECT_WEB_BACKEND_KEY", "key")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://backend.example.com", cfg.BackendURL)
}

func TestLoadTrimsTrailingSlash(t *testing.T) {
	t.Setenv("AXISELECT_WEB_BACKEND_URL", "https://backend.example.com/")
	t.Setenv("AXISELECT_WEB_BACKEND_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://backend.example.com", cfg.BackendURL)
}

func TestProd(t *testing.T) {
	t.Setenv("AXISELECT_WEB_ENV", "prod")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Prod())
}
