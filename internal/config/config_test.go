package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"api_key": "test-key",
		"analysis_timeout_s": 60,
		"lite_model": "gemini-2.5-flash",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 60, cfg.AnalysisTimeoutS)
	assert.Equal(t, "gemini-2.5-flash", cfg.LiteModel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `{not json`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{AnalysisTimeoutS: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Resume: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit"}
	merged := cfg.MergeWithDefaults(Config{
		APIKey:           "default",
		DatabaseURL:      "postgres://localhost/tailoring",
		AnalysisTimeoutS: 85,
	})

	assert.Equal(t, "explicit", merged.APIKey)
	assert.Equal(t, "postgres://localhost/tailoring", merged.DatabaseURL)
	assert.Equal(t, 85, merged.AnalysisTimeoutS)
}
