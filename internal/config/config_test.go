package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GROQ_API_KEY", "GROQ_MODEL", "GROQ_BASE_URL",
		"GROQ_TEMPERATURE", "GROQ_MAX_TOKENS", "AI_TIMEOUT_SECONDS",
		"MEMORY_FILE", "GOOGLE_CLOUD_PROJECT", "USE_MEMORY_STORE",
		"STORE_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, DefaultModel, cfg.AI.Model)
	assert.Equal(t, 0.7, cfg.AI.Temperature)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.False(t, cfg.AI.Enabled())
	assert.False(t, cfg.AI.Deprecated)
	assert.Equal(t, "memory.json", cfg.Memory.Path)
	// Without a project ID there is no Firestore to reach.
	assert.True(t, cfg.Store.UseMemory)
	assert.Equal(t, 5*time.Second, cfg.Store.Timeout)
}

func TestLoadRejectsUnknownModel(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_MODEL", "gpt-oss-120b")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported GROQ_MODEL")
}

func TestLoadFlagsDeprecatedModel(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_MODEL", "mixtral-8x7b-32768")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AI.Deprecated)
}

func TestLoadTemperatureBounds(t *testing.T) {
	clearEnv(t)

	t.Setenv("GROQ_TEMPERATURE", "1.5")
	_, err := Load()
	assert.ErrorContains(t, err, "GROQ_TEMPERATURE")

	t.Setenv("GROQ_TEMPERATURE", "-0.1")
	_, err = Load()
	assert.ErrorContains(t, err, "GROQ_TEMPERATURE")

	t.Setenv("GROQ_TEMPERATURE", "0.3")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.AI.Temperature)
}

func TestLoadPortVariants(t *testing.T) {
	clearEnv(t)

	t.Setenv("PORT", "9000")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)

	t.Setenv("PORT", "127.0.0.1:9000")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)

	t.Setenv("PORT", "not a port")
	_, err = Load()
	assert.ErrorContains(t, err, "invalid PORT")
}

func TestLoadCredential(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "finassist-dev")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AI.Enabled())
	assert.False(t, cfg.Store.UseMemory)
	assert.Equal(t, "finassist-dev", cfg.Store.ProjectID)
}

func TestLoadInvalidNumbers(t *testing.T) {
	clearEnv(t)

	t.Setenv("GROQ_MAX_TOKENS", "lots")
	_, err := Load()
	assert.ErrorContains(t, err, "GROQ_MAX_TOKENS")

	t.Setenv("GROQ_MAX_TOKENS", "")
	t.Setenv("STORE_TIMEOUT_SECONDS", "0")
	_, err = Load()
	assert.ErrorContains(t, err, "STORE_TIMEOUT_SECONDS")
}
