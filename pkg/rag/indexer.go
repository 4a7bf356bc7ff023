package rag

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hevoctl/hevoctl/pkg/embedders"
	"github.com/hevoctl/hevoctl/pkg/logger"
	"github.com/hevoctl/hevoctl/pkg/vector"
)

// IndexStats summarizes one indexing run.
type IndexStats struct {
	Documents int
	Chunks    int
	Skipped   int
}

// Indexer walks a documentation directory and loads it into the vector
// store: extract, chunk, embed, upsert.
type Indexer struct {
	store      vector.Provider
	embedder   embedders.Embedder
	chunker    *Chunker
	collection string
	log        *slog.Logger
}

// NewIndexer wires an indexer. An empty collection defaults to the
// documentation collection.
func NewIndexer(store vector.Provider, embedder embedders.Embedder, chunker *Chunker, collection string) *Indexer {
	if collection == "" {
		collection = vector.DefaultCollection
	}
	return &Indexer{
		store:      store,
		embedder:   embedder,
		chunker:    chunker,
		collection: collection,
		log:        logger.WithComponent("indexer"),
	}
}

// IndexDirectory indexes every supported document under dir.
func (ix *Indexer) IndexDirectory(ctx context.Context, dir string) (IndexStats, error) {
	var stats IndexStats

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories hold caches and VCS state, not docs.
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !CanExtract(path) {
			stats.Skipped++
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		chunks, err := ix.indexFile(ctx, dir, path)
		if err != nil {
			ix.log.Warn("skipping document", "path", path, "error", err)
			stats.Skipped++
			return nil
		}
		stats.Documents++
		stats.Chunks += chunks
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("index %s: %w", dir, err)
	}
	return stats, nil
}

func (ix *Indexer) indexFile(ctx context.Context, root, path string) (int, error) {
	text, err := Extract(path)
	if err != nil {
		return 0, err
	}

	chunks := ix.chunker.Chunk(text)
	if len(chunks) == 0 {
		return 0, nil
	}

	vectors, err := ix.embedder.EmbedBatch(ctx, chunks)
	if err != nil {
		return 0, fmt.Errorf("embed %s: %w", path, err)
	}

	source, err := filepath.Rel(root, path)
	if err != nil {
		source = path
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	for i, chunk := range chunks {
		metadata := map[string]any{
			"content": chunk,
			"source":  source,
			"title":   title,
			"chunk":   i,
		}
		if err := ix.store.Upsert(ctx, ix.collection, uuid.NewString(), vectors[i], metadata); err != nil {
			return 0, fmt.Errorf("store chunk %d of %s: %w", i, path, err)
		}
	}

	ix.log.Debug("indexed document", "path", source, "chunks", len(chunks))
	return len(chunks), nil
}

// Count reports how many chunks the documentation collection holds.
func (ix *Indexer) Count(ctx context.Context) (int, error) {
	return ix.store.Count(ctx, ix.collection)
}
