package rag

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hevoctl/hevoctl/pkg/vector"
)

// keywordEmbedder maps texts onto fixed axes by keyword so similarity is
// predictable without a real model.
type keywordEmbedder struct{}

func (keywordEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	v := []float32{0.01, 0.01, 0.01}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "pipeline") {
		v[0] = 1
	}
	if strings.Contains(lower, "model") {
		v[1] = 1
	}
	if strings.Contains(lower, "destination") {
		v[2] = 1
	}
	return v, nil
}

func (e keywordEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i], _ = e.Embed(ctx, text)
	}
	return vectors, nil
}

func (keywordEmbedder) Dimension() int { return 3 }
func (keywordEmbedder) Model() string  { return "keyword-test" }

func writeDocs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	docs := map[string]string{
		"pipelines.md":     "A pipeline moves data from a source to a destination on a schedule.",
		"models.txt":       "A model runs SQL transformations on loaded data.",
		"notes/extra.md":   "Destinations are warehouses where pipeline data lands.",
		"ignore/photo.png": "binary",
	}
	for name, content := range docs {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestIndexDirectoryAndRetrieve(t *testing.T) {
	store, err := vector.NewChromemProvider(vector.ChromemConfig{})
	require.NoError(t, err)
	defer store.Close()

	embedder := keywordEmbedder{}
	chunker := newChunkerWithCodec(500, 50, nil)
	indexer := NewIndexer(store, embedder, chunker, "")
	ctx := context.Background()

	stats, err := indexer.IndexDirectory(ctx, writeDocs(t))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Documents)
	assert.Equal(t, 3, stats.Chunks)
	assert.Equal(t, 1, stats.Skipped)

	count, err := indexer.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	retriever := NewRetriever(store, embedder, "", 1)
	results, err := retriever.Retrieve(ctx, "how do models work", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Content, "SQL transformations")
	assert.Equal(t, "models", results[0].Title)
}

func TestRetrieverContextDegradesOnError(t *testing.T) {
	store, err := vector.NewChromemProvider(vector.ChromemConfig{})
	require.NoError(t, err)
	defer store.Close()

	retriever := NewRetriever(store, failingEmbedder{}, "", 5)
	assert.Empty(t, retriever.Context(context.Background(), "anything"))
}

type failingEmbedder struct{ keywordEmbedder }

func (failingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, assert.AnError
}

func TestFormatContext(t *testing.T) {
	out := FormatContext([]SearchResult{
		{Content: "Pipelines move data.", Title: "pipelines", Section: "Overview"},
		{Content: "Models transform data.", Title: "models", URL: "https://docs.hevodata.com/models"},
	})

	assert.Contains(t, out, "[pipelines - Overview]\nPipelines move data.")
	assert.Contains(t, out, "[models]\nModels transform data.\nSource: https://docs.hevodata.com/models")

	assert.Empty(t, FormatContext(nil))
}

func TestCanExtract(t *testing.T) {
	assert.True(t, CanExtract("guide.md"))
	assert.True(t, CanExtract("notes.TXT"))
	assert.True(t, CanExtract("manual.pdf"))
	assert.True(t, CanExtract("spec.docx"))
	assert.False(t, CanExtract("image.png"))
}

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Heading\n\nBody."), 0o644))

	text, err := Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "# Heading\n\nBody.", text)

	_, err = Extract(filepath.Join(dir, "doc.xyz"))
	assert.Error(t, err)
}

func TestStripDocxTags(t *testing.T) {
	content := `<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p><w:p><w:r><w:t>Second.</w:t></w:r></w:p>`
	assert.Equal(t, "First paragraph.\nSecond.", stripDocxTags(content))
}
