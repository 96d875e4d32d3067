package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Defaults tests that every section gets its tag defaults.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.Equal(t, 400, cfg.Compare.SummaryMaxLen)

	assert.Equal(t, "test1", cfg.Submit.Env)
	assert.Equal(t, "EFX", cfg.Submit.Bureau)
	assert.Equal(t, "", cfg.Submit.Token)
	assert.Equal(t, 2, cfg.Submit.Retries)
	assert.Equal(t, 0.5, cfg.Submit.BackoffSeconds)
	assert.Equal(t, 30, cfg.Submit.TimeoutSeconds)
	assert.False(t, cfg.Submit.Insecure)
}

// TestLoadConfig_EnvOverrides tests the SECTION_KEY environment mapping.
func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LPCR_TOKEN", "secret-token")
	t.Setenv("LPCR_RETRIES", "5")
	t.Setenv("COMPARE_SUMMARY_MAX_LEN", "100")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "secret-token", cfg.Submit.Token)
	assert.Equal(t, 5, cfg.Submit.Retries)
	assert.Equal(t, 100, cfg.Compare.SummaryMaxLen)
}

// TestLoadConfig_DotEnv tests that a .env file in the config path is loaded.
func TestLoadConfig_DotEnv(t *testing.T) {
	// Register the variable with the test so its value is restored.
	t.Setenv("LPCR_PASSWORD", "")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LPCR_PASSWORD=from-dotenv\n"), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Submit.Password)
}
