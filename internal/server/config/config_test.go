package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Contains(t, cfg.DatabaseDSN, "postgres://")
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.NotEmpty(t, cfg.GeminiModel)
}

func TestParseEnv_OverridesOnlySetVariables(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	defaultDSN := cfg.DatabaseDSN

	t.Setenv("ADDRESS", ":9090")
	t.Setenv("GEMINI_API_KEY", "key-from-env")

	parseEnv(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, "key-from-env", cfg.GeminiAPIKey)
	assert.Equal(t, defaultDSN, cfg.DatabaseDSN)
}

func TestParseJson_PartialOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	err := os.WriteFile(path, []byte(`{"endpoint_addr": ":7070", "gemini_model": "gemini-pro"}`), 0o600)
	require.NoError(t, err)

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	defaultDSN := cfg.DatabaseDSN

	parseJson(cfg)

	assert.Equal(t, ":7070", cfg.EndpointAddr)
	assert.Equal(t, "gemini-pro", cfg.GeminiModel)
	assert.Equal(t, defaultDSN, cfg.DatabaseDSN)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-a", ":6060", "-m", "gemini-flash", "-ignored", "x"}

	cfg := &Config{}
	cfg.LoadDefaults()

	parseFlags(cfg)

	assert.Equal(t, ":6060", cfg.EndpointAddr)
	assert.Equal(t, "gemini-flash", cfg.GeminiModel)
}
