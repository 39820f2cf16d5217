package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresStoreToken(t *testing.T) {
	t.Setenv("LUMEXA_STORE_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store token")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LUMEXA_STORE_TOKEN", "store-token-123")
	t.Setenv("LUMEXA_BASE_URL", "")
	t.Setenv("LUMEXA_HTTP_TIMEOUT", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "store-token-123", cfg.Lumexa.StoreToken)
	assert.Equal(t, "http://localhost:8080", cfg.Lumexa.BaseURL)
	assert.Equal(t, 30, cfg.Lumexa.TimeoutSeconds)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("LUMEXA_STORE_TOKEN", "store-token-123")
	t.Setenv("LUMEXA_HTTP_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}
