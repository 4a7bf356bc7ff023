package embedders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hevoctl/hevoctl/pkg/config"
)

func TestOpenAIEmbedBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "text-embedding-3-small", req["model"])

		// Out-of-order response must still land by index.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"index": 1, "embedding": []float32{0, 1}},
				{"index": 0, "embedding": []float32{1, 0}},
			},
		})
	}))
	defer server.Close()

	embedder, err := NewOpenAIEmbedder(config.RAGConfig{
		EmbedderAPIKey: "test-key",
		EmbedderHost:   server.URL,
	})
	require.NoError(t, err)

	vectors, err := embedder.EmbedBatch(context.Background(), []string{"first", "second"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, []float32{1, 0}, vectors[0])
	assert.Equal(t, []float32{0, 1}, vectors[1])
}

func TestOpenAIEmbedderRequiresKey(t *testing.T) {
	_, err := NewOpenAIEmbedder(config.RAGConfig{})
	assert.Error(t, err)
}

func TestOpenAIEmbedderSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Incorrect API key provided"},
		})
	}))
	defer server.Close()

	embedder, err := NewOpenAIEmbedder(config.RAGConfig{
		EmbedderAPIKey: "bad-key",
		EmbedderHost:   server.URL,
	})
	require.NoError(t, err)

	_, err = embedder.Embed(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestOllamaEmbed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embeddings", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req["model"])
		assert.Equal(t, "hello", req["prompt"])

		_ = json.NewEncoder(w).Encode(map[string]any{"embedding": []float32{0.5, 0.5}})
	}))
	defer server.Close()

	embedder, err := NewOllamaEmbedder(config.RAGConfig{EmbedderHost: server.URL})
	require.NoError(t, err)

	vector, err := embedder.Embed(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, vector)
}

func TestNewSelectsProvider(t *testing.T) {
	embedder, err := New(config.RAGConfig{EmbedderProvider: "ollama"})
	require.NoError(t, err)
	assert.Equal(t, "nomic-embed-text", embedder.Model())

	_, err = New(config.RAGConfig{EmbedderProvider: "abacus"})
	assert.Error(t, err)
}
