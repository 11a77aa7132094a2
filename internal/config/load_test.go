package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithAPIKey(t *testing.T) {
	t.Setenv("EMBER_LLM_GEMINI_API_KEY", "test-api-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 400, cfg.LLM.MaxOutputTokens)
	assert.Equal(t, 30, cfg.LLM.RequestTimeoutSeconds)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("EMBER_LLM_GEMINI_API_KEY", "test-api-key")
	t.Setenv("EMBER_SERVER_PORT", "9090")
	t.Setenv("EMBER_SERVER_LOG_LEVEL", "debug")
	t.Setenv("EMBER_LLM_MODEL_NAME", "gemini-2.5-pro")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
}

func TestLoad_MissingAPIKeyFails(t *testing.T) {
	t.Setenv("EMBER_LLM_GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_InvalidLogLevelFails(t *testing.T) {
	t.Setenv("EMBER_LLM_GEMINI_API_KEY", "test-api-key")
	t.Setenv("EMBER_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
