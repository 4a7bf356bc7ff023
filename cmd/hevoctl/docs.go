package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hevoctl/hevoctl/pkg/config"
	"github.com/hevoctl/hevoctl/pkg/embedders"
	"github.com/hevoctl/hevoctl/pkg/rag"
	"github.com/hevoctl/hevoctl/pkg/vector"
)

// DocsCmd groups documentation index commands.
type DocsCmd struct {
	Index  DocsIndexCmd  `cmd:"" help:"Index a directory of documentation files."`
	Status DocsStatusCmd `cmd:"" help:"Show documentation index status."`
}

// DocsIndexCmd walks a directory and loads .txt/.md/.pdf/.docx files into
// the vector store.
type DocsIndexCmd struct {
	Dir string `arg:"" help:"Directory containing documentation files." type:"existingdir"`
}

func (c *DocsIndexCmd) Run(cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}

	store, err := vector.New(cfg.RAG)
	if err != nil {
		return fmt.Errorf("vector store: %w", err)
	}
	defer store.Close()

	embedder, err := embedders.New(cfg.RAG)
	if err != nil {
		return fmt.Errorf("embedder: %w", err)
	}

	chunker := rag.NewChunker(cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap)
	indexer := rag.NewIndexer(store, embedder, chunker, "")

	fmt.Printf("Indexing %s into %s (%s embeddings)...\n", c.Dir, store.Name(), embedder.Model())
	stats, err := indexer.IndexDirectory(context.Background(), c.Dir)
	if err != nil {
		return err
	}
	fmt.Printf("Indexed %d documents (%d chunks, %d files skipped).\n",
		stats.Documents, stats.Chunks, stats.Skipped)

	cfg.RAG.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	if err := config.Save(cfg, cli.configPath()); err != nil {
		return fmt.Errorf("record index timestamp: %w", err)
	}
	return nil
}

// DocsStatusCmd reports index size and freshness.
type DocsStatusCmd struct{}

func (c *DocsStatusCmd) Run(cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}

	store, err := vector.New(cfg.RAG)
	if err != nil {
		return fmt.Errorf("vector store: %w", err)
	}
	defer store.Close()

	count, err := store.Count(context.Background(), vector.DefaultCollection)
	if err != nil {
		return fmt.Errorf("read index: %w", err)
	}

	fmt.Printf("Backend:      %s\n", store.Name())
	fmt.Printf("Chunks:       %d\n", count)
	if cfg.RAG.LastUpdated != "" {
		fmt.Printf("Last updated: %s\n", cfg.RAG.LastUpdated)
	} else {
		fmt.Println("Last updated: never (run 'hevoctl docs index <dir>')")
	}
	return nil
}
