package remote

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWhenNothingSet(t *testing.T) {
	t.Setenv("BANCADA_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("BANCADA_ENDPOINT", "")
	t.Setenv("BANCADA_TOKEN", "")
	t.Setenv("BANCADA_TIMEOUT_MS", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8373", cfg.Endpoint)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, 10000, cfg.TimeoutMs)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: https://pedidos.example.com\ntoken: file-token\ntimeout_ms: 3000\n"), 0o600))
	t.Setenv("BANCADA_CONFIG", path)
	t.Setenv("BANCADA_ENDPOINT", "")
	t.Setenv("BANCADA_TOKEN", "")
	t.Setenv("BANCADA_TIMEOUT_MS", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://pedidos.example.com", cfg.Endpoint)
	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, 3000, cfg.TimeoutMs)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: file-token\n"), 0o600))
	t.Setenv("BANCADA_CONFIG", path)
	t.Setenv("BANCADA_ENDPOINT", "http://10.0.0.5:8373")
	t.Setenv("BANCADA_TOKEN", "env-token")
	t.Setenv("BANCADA_TIMEOUT_MS", "250")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8373", cfg.Endpoint)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, 250, cfg.TimeoutMs)
}

func TestLoadConfig_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: [broken\n"), 0o600))
	t.Setenv("BANCADA_CONFIG", path)

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestLoadConfig_NonPositiveTimeoutFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout_ms: -5\n"), 0o600))
	t.Setenv("BANCADA_CONFIG", path)
	t.Setenv("BANCADA_TIMEOUT_MS", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.TimeoutMs)
}
