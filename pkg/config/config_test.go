package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "us", cfg.Hevo.Region)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 500, cfg.RAG.ChunkSize)
	assert.Equal(t, 50, cfg.RAG.ChunkOverlap)
	assert.Equal(t, 5, cfg.RAG.TopK)
	assert.Equal(t, "gpt-4", cfg.Agent.CoordinatorModel)
	assert.InDelta(t, 0.2, cfg.Agent.ExecutorTemperature, 1e-9)
}

func TestLoadParsesAndExpands(t *testing.T) {
	t.Setenv("TEST_HEVO_KEY", "key-from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
hevo:
  api_key: ${TEST_HEVO_KEY}
  api_secret: shh
  region: eu
llm:
  provider: anthropic
  api_key: sk-ant
  model: claude-3-5-sonnet
  timeout: ${TEST_LLM_TIMEOUT:-45}
rag:
  backend: qdrant
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "key-from-env", cfg.Hevo.APIKey)
	assert.Equal(t, "eu", cfg.Hevo.Region)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 45, cfg.LLM.Timeout)
	assert.Equal(t, "qdrant", cfg.RAG.Backend)
	assert.Equal(t, "localhost", cfg.RAG.QdrantHost)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad region", "hevo:\n  region: mars\n"},
		{"bad provider", "llm:\n  provider: abacus\n"},
		{"bad backend", "rag:\n  backend: filing_cabinet\n"},
		{"overlap too large", "rag:\n  chunk_size: 10\n  chunk_overlap: 20\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestIsReady(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	ready, missing := cfg.IsReady()
	assert.False(t, ready)
	assert.Len(t, missing, 3)

	cfg.Hevo.APIKey = "k"
	cfg.Hevo.APISecret = "s"
	cfg.LLM.APIKey = "sk"
	ready, missing = cfg.IsReady()
	assert.True(t, ready)
	assert.Empty(t, missing)

	// Ollama needs no API key.
	cfg.LLM.Provider = "ollama"
	cfg.LLM.APIKey = ""
	ready, _ = cfg.IsReady()
	assert.True(t, ready)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{}
	cfg.SetDefaults()
	cfg.Hevo.APIKey = "key"
	cfg.Hevo.APISecret = "secret"

	require.NoError(t, Save(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Hevo.APIKey, loaded.Hevo.APIKey)
	assert.Equal(t, cfg.RAG.ChunkSize, loaded.RAG.ChunkSize)
}

func TestExpandEnvInData(t *testing.T) {
	t.Setenv("TEST_PORT", "6334")
	data := map[string]any{
		"host":  "$TEST_HOST_UNSET",
		"port":  "${TEST_PORT}",
		"flag":  "${TEST_FLAG:-true}",
		"plain": "unchanged",
	}
	out := ExpandEnvInData(data).(map[string]any)
	assert.Equal(t, "", out["host"])
	assert.Equal(t, 6334, out["port"])
	assert.Equal(t, true, out["flag"])
	assert.Equal(t, "unchanged", out["plain"])
}
