// Package vector abstracts the vector stores the documentation index can
// live in: an embedded chromem database, a Qdrant server, or a Pinecone
// index. Embeddings are computed externally; providers only store and
// search pre-computed vectors.
package vector

import (
	"context"
	"fmt"

	"github.com/hevoctl/hevoctl/pkg/config"
)

// DefaultCollection is the collection/index documentation chunks go into.
const DefaultCollection = "hevo-docs"

// Result is one search hit.
type Result struct {
	ID       string
	Score    float32
	Content  string
	Metadata map[string]any
}

// Provider stores and searches pre-computed embeddings.
type Provider interface {
	// Upsert adds or replaces a document. The vector dimension fixes the
	// collection dimension on first write.
	Upsert(ctx context.Context, collection, id string, vector []float32, metadata map[string]any) error

	// Search returns the topK most similar documents.
	Search(ctx context.Context, collection string, vector []float32, topK int) ([]Result, error)

	// DeleteCollection drops a collection and everything in it.
	DeleteCollection(ctx context.Context, collection string) error

	// Count reports how many documents a collection holds, where the
	// backend supports it.
	Count(ctx context.Context, collection string) (int, error)

	// Name identifies the provider for logging.
	Name() string

	// Close flushes and releases resources.
	Close() error
}

// New builds the provider selected by the configuration.
func New(cfg config.RAGConfig) (Provider, error) {
	switch cfg.Backend {
	case "chromem", "":
		return NewChromemProvider(ChromemConfig{PersistPath: cfg.DBPath})
	case "qdrant":
		return NewQdrantProvider(QdrantConfig{
			Host: cfg.QdrantHost,
			Port: cfg.QdrantPort,
		})
	case "pinecone":
		return NewPineconeProvider(PineconeConfig{
			APIKey:    cfg.PineconeAPIKey,
			IndexName: cfg.PineconeIndex,
		})
	default:
		return nil, fmt.Errorf("unknown vector backend %q", cfg.Backend)
	}
}
