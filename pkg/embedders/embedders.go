// Package embedders turns text into vector embeddings for the
// documentation index. OpenAI and Ollama backends are supported.
package embedders

import (
	"context"
	"fmt"

	"github.com/hevoctl/hevoctl/pkg/config"
)

// Embedder converts text into vectors of a fixed dimension.
type Embedder interface {
	// Embed converts one text into a vector.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch converts several texts in one round trip where the
	// backend supports it.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the embedding vector length.
	Dimension() int

	// Model returns the embedding model name.
	Model() string
}

// New builds the embedder selected by the configuration.
func New(cfg config.RAGConfig) (Embedder, error) {
	switch cfg.EmbedderProvider {
	case "openai", "":
		return NewOpenAIEmbedder(cfg)
	case "ollama":
		return NewOllamaEmbedder(cfg)
	default:
		return nil, fmt.Errorf("unknown embedder provider %q", cfg.EmbedderProvider)
	}
}
