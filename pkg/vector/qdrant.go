package vector

import (
	"context"
	"fmt"
	"strings"

	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
)

// QdrantConfig configures the Qdrant provider.
type QdrantConfig struct {
	// Host is the Qdrant server hostname.
	Host string

	// Port is the gRPC port, 6334 by default.
	Port int

	// APIKey for authenticated deployments.
	APIKey string

	// UseTLS enables TLS on the gRPC connection.
	UseTLS bool
}

// QdrantProvider stores vectors in a Qdrant server over gRPC.
type QdrantProvider struct {
	client *qdrant.Client
}

// NewQdrantProvider connects to a Qdrant server.
func NewQdrantProvider(cfg QdrantConfig) (*QdrantProvider, error) {
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 6334
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:        cfg.Host,
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		UseTLS:      cfg.UseTLS,
		GrpcOptions: []grpc.DialOption{grpc.WithUserAgent("hevoctl")},
	})
	if err != nil {
		return nil, fmt.Errorf("connect to qdrant at %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return &QdrantProvider{client: client}, nil
}

func (p *QdrantProvider) ensureCollection(ctx context.Context, collection string, dimension int) error {
	exists, err := p.client.CollectionExists(ctx, collection)
	if err != nil {
		return fmt.Errorf("check collection: %w", err)
	}
	if exists {
		return nil
	}

	err = p.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dimension),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

// Upsert adds or replaces a point, creating the collection on first write.
func (p *QdrantProvider) Upsert(ctx context.Context, collection, id string, vector []float32, metadata map[string]any) error {
	if err := p.ensureCollection(ctx, collection, len(vector)); err != nil {
		return err
	}

	payload := make(map[string]*qdrant.Value, len(metadata))
	for key, value := range metadata {
		val, err := qdrant.NewValue(value)
		if err != nil {
			return fmt.Errorf("convert metadata %q: %w", key, err)
		}
		payload[key] = val
	}

	_, err := p.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points: []*qdrant.PointStruct{{
			Id:      qdrant.NewID(id),
			Vectors: qdrant.NewVectors(vector...),
			Payload: payload,
		}},
	})
	if err != nil {
		return fmt.Errorf("upsert point: %w", err)
	}
	return nil
}

// Search returns the topK nearest points.
func (p *QdrantProvider) Search(ctx context.Context, collection string, vector []float32, topK int) ([]Result, error) {
	resp, err := p.client.GetPointsClient().Search(ctx, &qdrant.SearchPoints{
		CollectionName: collection,
		Vector:         vector,
		Limit:          uint64(topK),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results := make([]Result, 0, len(resp.Result))
	for _, point := range resp.Result {
		results = append(results, Result{
			ID:       pointID(point.Id),
			Score:    point.Score,
			Metadata: payloadToMap(point.Payload),
			Content:  payloadContent(point.Payload),
		})
	}
	return results, nil
}

// DeleteCollection drops the collection.
func (p *QdrantProvider) DeleteCollection(ctx context.Context, collection string) error {
	if err := p.client.DeleteCollection(ctx, collection); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	return nil
}

// Count reports how many points the collection holds.
func (p *QdrantProvider) Count(ctx context.Context, collection string) (int, error) {
	n, err := p.client.Count(ctx, &qdrant.CountPoints{CollectionName: collection})
	if err != nil {
		return 0, fmt.Errorf("count points: %w", err)
	}
	return int(n), nil
}

// Name returns "qdrant".
func (p *QdrantProvider) Name() string { return "qdrant" }

// Close closes the gRPC connection.
func (p *QdrantProvider) Close() error { return p.client.Close() }

func pointID(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Uuid:
		return v.Uuid
	case *qdrant.PointId_Num:
		return fmt.Sprintf("%d", v.Num)
	}
	return ""
}

func payloadToMap(payload map[string]*qdrant.Value) map[string]any {
	metadata := make(map[string]any, len(payload))
	for key, value := range payload {
		switch v := value.Kind.(type) {
		case *qdrant.Value_StringValue:
			metadata[key] = v.StringValue
		case *qdrant.Value_IntegerValue:
			metadata[key] = v.IntegerValue
		case *qdrant.Value_DoubleValue:
			metadata[key] = v.DoubleValue
		case *qdrant.Value_BoolValue:
			metadata[key] = v.BoolValue
		default:
			metadata[key] = value.String()
		}
	}
	return metadata
}

func payloadContent(payload map[string]*qdrant.Value) string {
	if v, ok := payload["content"]; ok {
		return v.GetStringValue()
	}
	return ""
}

var _ Provider = (*QdrantProvider)(nil)
