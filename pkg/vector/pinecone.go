package vector

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

// PineconeConfig configures the Pinecone provider.
type PineconeConfig struct {
	// APIKey authenticates against the Pinecone API. Required.
	APIKey string

	// IndexName is the index used when a search names no collection.
	// Pinecone indexes are created out of band, not by this client.
	IndexName string
}

// PineconeProvider stores vectors in a managed Pinecone index.
type PineconeProvider struct {
	client    *pinecone.Client
	indexName string
}

// NewPineconeProvider builds a Pinecone-backed provider.
func NewPineconeProvider(cfg PineconeConfig) (*PineconeProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("pinecone api key is required")
	}

	client, err := pinecone.NewClient(pinecone.NewClientParams{ApiKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create pinecone client: %w", err)
	}

	indexName := cfg.IndexName
	if indexName == "" {
		indexName = DefaultCollection
	}
	return &PineconeProvider{client: client, indexName: indexName}, nil
}

func (p *PineconeProvider) index(collection string) string {
	if collection == "" {
		return p.indexName
	}
	return collection
}

func (p *PineconeProvider) connect(ctx context.Context, collection string) (*pinecone.IndexConnection, error) {
	name := p.index(collection)
	idx, err := p.client.DescribeIndex(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("describe index %s: %w", name, err)
	}
	conn, err := p.client.Index(pinecone.NewIndexConnParams{Host: idx.Host})
	if err != nil {
		return nil, fmt.Errorf("connect to index %s: %w", name, err)
	}
	return conn, nil
}

// Upsert adds or replaces a vector in the index.
func (p *PineconeProvider) Upsert(ctx context.Context, collection, id string, vector []float32, metadata map[string]any) error {
	conn, err := p.connect(ctx, collection)
	if err != nil {
		return err
	}
	defer conn.Close()

	var meta *pinecone.Metadata
	if len(metadata) > 0 {
		meta, err = structpb.NewStruct(metadata)
		if err != nil {
			return fmt.Errorf("convert metadata: %w", err)
		}
	}

	_, err = conn.UpsertVectors(ctx, []*pinecone.Vector{{
		Id:       id,
		Values:   vector,
		Metadata: meta,
	}})
	if err != nil {
		return fmt.Errorf("upsert vector: %w", err)
	}
	return nil
}

// Search returns the topK nearest vectors.
func (p *PineconeProvider) Search(ctx context.Context, collection string, vector []float32, topK int) ([]Result, error) {
	conn, err := p.connect(ctx, collection)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	resp, err := conn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(topK),
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	results := make([]Result, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		if match.Vector == nil {
			continue
		}
		metadata := map[string]any{}
		if match.Vector.Metadata != nil {
			metadata = match.Vector.Metadata.AsMap()
		}
		content := ""
		if s, ok := metadata["content"].(string); ok {
			content = s
		}
		results = append(results, Result{
			ID:       match.Vector.Id,
			Score:    match.Score,
			Content:  content,
			Metadata: metadata,
		})
	}
	return results, nil
}

// DeleteCollection wipes all vectors in the index. The index itself is
// managed through the Pinecone console.
func (p *PineconeProvider) DeleteCollection(ctx context.Context, collection string) error {
	conn, err := p.connect(ctx, collection)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.DeleteAllVectorsInNamespace(ctx); err != nil {
		return fmt.Errorf("delete vectors: %w", err)
	}
	return nil
}

// Count reports the vector count in the index.
func (p *PineconeProvider) Count(ctx context.Context, collection string) (int, error) {
	conn, err := p.connect(ctx, collection)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	stats, err := conn.DescribeIndexStats(ctx)
	if err != nil {
		return 0, fmt.Errorf("index stats: %w", err)
	}
	return int(stats.TotalVectorCount), nil
}

// Name returns "pinecone".
func (p *PineconeProvider) Name() string { return "pinecone" }

// Close is a no-op; connections are scoped per call.
func (p *PineconeProvider) Close() error { return nil }

var _ Provider = (*PineconeProvider)(nil)
