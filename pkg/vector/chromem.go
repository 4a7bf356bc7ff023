package vector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/philippgille/chromem-go"

	"github.com/hevoctl/hevoctl/pkg/logger"
)

// ChromemConfig configures the embedded chromem provider.
type ChromemConfig struct {
	// PersistPath is the directory the database persists into. Empty
	// keeps everything in memory.
	PersistPath string

	// Compress gzips the persisted file.
	Compress bool
}

// ChromemProvider stores vectors in-process with chromem-go. It needs no
// external service, which makes it the default backend.
type ChromemProvider struct {
	db          *chromem.DB
	persistPath string
	compress    bool

	mu          sync.Mutex
	collections map[string]*chromem.Collection
}

// NewChromemProvider opens or creates an embedded vector database.
func NewChromemProvider(cfg ChromemConfig) (*ChromemProvider, error) {
	log := logger.WithComponent("vector")

	db := chromem.NewDB()
	if cfg.PersistPath != "" {
		if err := os.MkdirAll(cfg.PersistPath, 0o700); err != nil {
			return nil, fmt.Errorf("create vector db directory: %w", err)
		}
		dbPath := chromemFilePath(cfg.PersistPath, cfg.Compress)
		if _, err := os.Stat(dbPath); err == nil {
			if err := db.ImportFromFile(dbPath, ""); err != nil {
				log.Warn("could not load vector database, starting fresh", "path", dbPath, "error", err)
				db = chromem.NewDB()
			}
		}
	}

	return &ChromemProvider{
		db:          db,
		persistPath: cfg.PersistPath,
		compress:    cfg.Compress,
		collections: make(map[string]*chromem.Collection),
	}, nil
}

func chromemFilePath(dir string, compress bool) string {
	name := "vectors.gob"
	if compress {
		name += ".gz"
	}
	return filepath.Join(dir, name)
}

func (p *ChromemProvider) collection(name string) (*chromem.Collection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if col, ok := p.collections[name]; ok {
		return col, nil
	}

	// Vectors arrive pre-computed, so the embedding func must never run.
	noEmbed := func(ctx context.Context, text string) ([]float32, error) {
		return nil, fmt.Errorf("vectors must be pre-computed")
	}

	col, err := p.db.GetOrCreateCollection(name, nil, noEmbed)
	if err != nil {
		return nil, fmt.Errorf("open collection %q: %w", name, err)
	}
	p.collections[name] = col
	return col, nil
}

// Upsert adds or replaces a document.
func (p *ChromemProvider) Upsert(ctx context.Context, collection, id string, vector []float32, metadata map[string]any) error {
	col, err := p.collection(collection)
	if err != nil {
		return err
	}

	// chromem metadata is string-valued; the chunk text rides along as
	// document content.
	meta := make(map[string]string, len(metadata))
	content := ""
	for k, v := range metadata {
		if k == "content" {
			if s, ok := v.(string); ok {
				content = s
				continue
			}
		}
		meta[k] = fmt.Sprint(v)
	}

	doc := chromem.Document{
		ID:        id,
		Content:   content,
		Metadata:  meta,
		Embedding: vector,
	}
	if err := col.AddDocuments(ctx, []chromem.Document{doc}, runtime.NumCPU()); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return p.persist()
}

// Search returns the topK nearest documents by cosine similarity.
func (p *ChromemProvider) Search(ctx context.Context, collection string, vector []float32, topK int) ([]Result, error) {
	col, err := p.collection(collection)
	if err != nil {
		return nil, err
	}

	// chromem errors when asked for more results than it holds.
	if count := col.Count(); topK > count {
		topK = count
	}
	if topK == 0 {
		return nil, nil
	}

	hits, err := col.QueryEmbedding(ctx, vector, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results := make([]Result, 0, len(hits))
	for _, h := range hits {
		meta := make(map[string]any, len(h.Metadata))
		for k, v := range h.Metadata {
			meta[k] = v
		}
		results = append(results, Result{
			ID:       h.ID,
			Score:    h.Similarity,
			Content:  h.Content,
			Metadata: meta,
		})
	}
	return results, nil
}

// DeleteCollection drops a collection and its documents.
func (p *ChromemProvider) DeleteCollection(ctx context.Context, collection string) error {
	p.mu.Lock()
	if err := p.db.DeleteCollection(collection); err != nil {
		p.mu.Unlock()
		return fmt.Errorf("delete collection: %w", err)
	}
	delete(p.collections, collection)
	p.mu.Unlock()
	return p.persist()
}

// Count reports how many documents the collection holds.
func (p *ChromemProvider) Count(ctx context.Context, collection string) (int, error) {
	col, err := p.collection(collection)
	if err != nil {
		return 0, err
	}
	return col.Count(), nil
}

// Name returns "chromem".
func (p *ChromemProvider) Name() string { return "chromem" }

// Close persists the database if a path is configured.
func (p *ChromemProvider) Close() error { return p.persist() }

func (p *ChromemProvider) persist() error {
	if p.persistPath == "" {
		return nil
	}
	path := chromemFilePath(p.persistPath, p.compress)
	if err := p.db.Export(path, p.compress, ""); err != nil {
		return fmt.Errorf("persist vector database: %w", err)
	}
	return nil
}

var _ Provider = (*ChromemProvider)(nil)
