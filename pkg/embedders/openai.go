package embedders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hevoctl/hevoctl/pkg/config"
	"github.com/hevoctl/hevoctl/pkg/httpclient"
)

// Dimensions of the common OpenAI embedding models.
var openAIDimensions = map[string]int{
	"text-embedding-3-small": 1536,
	"text-embedding-3-large": 3072,
	"text-embedding-ada-002": 1536,
}

// OpenAIEmbedder calls the OpenAI embeddings API.
type OpenAIEmbedder struct {
	http      *httpclient.Client
	baseURL   string
	apiKey    string
	model     string
	dimension int
}

// NewOpenAIEmbedder builds an embedder against the OpenAI API or a
// compatible host.
func NewOpenAIEmbedder(cfg config.RAGConfig) (*OpenAIEmbedder, error) {
	if cfg.EmbedderAPIKey == "" {
		return nil, fmt.Errorf("openai embedder requires an api key")
	}

	model := cfg.EmbedderModel
	if model == "" {
		model = "text-embedding-3-small"
	}
	dimension := cfg.EmbedderDimension
	if dimension == 0 {
		dimension = openAIDimensions[model]
		if dimension == 0 {
			dimension = 1536
		}
	}
	baseURL := cfg.EmbedderHost
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &OpenAIEmbedder{
		http:      httpclient.New(httpclient.WithRetryStrategy(httpclient.ConservativeRetry)),
		baseURL:   baseURL,
		apiKey:    cfg.EmbedderAPIKey,
		model:     model,
		dimension: dimension,
	}, nil
}

type openAIEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type openAIEmbedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Embed converts one text into a vector.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch converts several texts in one request.
func (e *OpenAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(openAIEmbedRequest{Model: e.model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embeddings request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded openAIEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode embeddings response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil {
			return nil, fmt.Errorf("openai embeddings: %s", decoded.Error.Message)
		}
		return nil, fmt.Errorf("openai embeddings: unexpected status %d", resp.StatusCode)
	}
	if len(decoded.Data) != len(texts) {
		return nil, fmt.Errorf("openai embeddings: got %d vectors for %d inputs", len(decoded.Data), len(texts))
	}

	// The API documents order-preserving output but also carries an
	// index field, so place by index.
	vectors := make([][]float32, len(texts))
	for _, item := range decoded.Data {
		if item.Index < 0 || item.Index >= len(vectors) {
			return nil, fmt.Errorf("openai embeddings: index %d out of range", item.Index)
		}
		vectors[item.Index] = item.Embedding
	}
	return vectors, nil
}

// Dimension returns the vector length of the configured model.
func (e *OpenAIEmbedder) Dimension() int { return e.dimension }

// Model returns the embedding model name.
func (e *OpenAIEmbedder) Model() string { return e.model }

var _ Embedder = (*OpenAIEmbedder)(nil)
