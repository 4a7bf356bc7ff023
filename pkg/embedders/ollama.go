package embedders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/hevoctl/hevoctl/pkg/config"
	"github.com/hevoctl/hevoctl/pkg/httpclient"
)

// OllamaEmbedder calls a local Ollama server's embeddings endpoint.
type OllamaEmbedder struct {
	http      *httpclient.Client
	host      string
	model     string
	dimension int

	// Ollama handles one embedding request at a time well; parallel
	// requests thrash the model, so calls are serialized.
	mu sync.Mutex
}

// NewOllamaEmbedder builds an embedder against a local Ollama server.
func NewOllamaEmbedder(cfg config.RAGConfig) (*OllamaEmbedder, error) {
	host := cfg.EmbedderHost
	if host == "" {
		host = "http://localhost:11434"
	}
	model := cfg.EmbedderModel
	if model == "" {
		model = "nomic-embed-text"
	}
	dimension := cfg.EmbedderDimension
	if dimension == 0 {
		dimension = 768
	}

	return &OllamaEmbedder{
		http:      httpclient.New(httpclient.WithRetryStrategy(httpclient.ConservativeRetry)),
		host:      host,
		model:     model,
		dimension: dimension,
	}, nil
}

type ollamaEmbedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaEmbedResponse struct {
	Embedding []float32 `json:"embedding"`
	Error     string    `json:"error,omitempty"`
}

// Embed converts one text into a vector.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	body, err := json.Marshal(ollamaEmbedRequest{Model: e.model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.host+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama embeddings request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded ollamaEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode ollama response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if decoded.Error != "" {
			return nil, fmt.Errorf("ollama embeddings: %s", decoded.Error)
		}
		return nil, fmt.Errorf("ollama embeddings: unexpected status %d", resp.StatusCode)
	}
	if len(decoded.Embedding) == 0 {
		return nil, fmt.Errorf("ollama embeddings: empty embedding for model %s", e.model)
	}
	return decoded.Embedding, nil
}

// EmbedBatch embeds texts one by one; Ollama has no batch endpoint.
func (e *OllamaEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := e.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embed text %d: %w", i, err)
		}
		vectors[i] = vector
	}
	return vectors, nil
}

// Dimension returns the configured vector length.
func (e *OllamaEmbedder) Dimension() int { return e.dimension }

// Model returns the embedding model name.
func (e *OllamaEmbedder) Model() string { return e.model }

var _ Embedder = (*OllamaEmbedder)(nil)
