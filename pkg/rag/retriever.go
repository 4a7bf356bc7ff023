package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hevoctl/hevoctl/pkg/embedders"
	"github.com/hevoctl/hevoctl/pkg/logger"
	"github.com/hevoctl/hevoctl/pkg/vector"
)

// SearchResult is one retrieved documentation passage.
type SearchResult struct {
	Content string
	Title   string
	URL     string
	Section string
	Score   float32
}

// Retriever answers queries against the indexed documentation.
type Retriever struct {
	store      vector.Provider
	embedder   embedders.Embedder
	collection string
	topK       int
	log        *slog.Logger
}

// NewRetriever wires a retriever. topK <= 0 defaults to 5.
func NewRetriever(store vector.Provider, embedder embedders.Embedder, collection string, topK int) *Retriever {
	if collection == "" {
		collection = vector.DefaultCollection
	}
	if topK <= 0 {
		topK = 5
	}
	return &Retriever{
		store:      store,
		embedder:   embedder,
		collection: collection,
		topK:       topK,
		log:        logger.WithComponent("retriever"),
	}
}

// Retrieve returns up to n passages relevant to the query. n <= 0 uses
// the configured topK.
func (r *Retriever) Retrieve(ctx context.Context, query string, n int) ([]SearchResult, error) {
	if n <= 0 {
		n = r.topK
	}

	queryVector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := r.store.Search(ctx, r.collection, queryVector, n)
	if err != nil {
		return nil, fmt.Errorf("search documentation: %w", err)
	}

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, SearchResult{
			Content: hit.Content,
			Title:   metaString(hit.Metadata, "title"),
			URL:     metaString(hit.Metadata, "url"),
			Section: metaString(hit.Metadata, "section"),
			Score:   hit.Score,
		})
	}
	return results, nil
}

// Context retrieves passages for the query and renders them for prompt
// embedding. Failures degrade to an empty context so a broken index
// never blocks a chat turn.
func (r *Retriever) Context(ctx context.Context, query string) string {
	results, err := r.Retrieve(ctx, query, 0)
	if err != nil {
		r.log.Debug("retrieval unavailable", "error", err)
		return ""
	}
	return FormatContext(results)
}

// FormatContext renders retrieved passages as a labelled block for the
// coordinator prompt.
func FormatContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	for i, result := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		label := result.Title
		if result.Section != "" {
			label = fmt.Sprintf("%s - %s", label, result.Section)
		}
		if label != "" {
			fmt.Fprintf(&b, "[%s]\n", label)
		}
		b.WriteString(strings.TrimSpace(result.Content))
		if result.URL != "" {
			fmt.Fprintf(&b, "\nSource: %s", result.URL)
		}
	}
	return b.String()
}

func metaString(metadata map[string]any, key string) string {
	if v, ok := metadata[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
