// Package rag indexes Hevo documentation into a vector store and
// retrieves relevant passages to ground the coordinator's answers.
package rag

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// tokenCodec is the slice of the tiktoken API the chunker needs.
// *tiktoken.Tiktoken satisfies it.
type tokenCodec interface {
	Encode(text string, allowedSpecial, disallowedSpecial []string) []int
	Decode(tokens []int) string
}

// Chunker splits document text into overlapping token windows sized for
// embedding.
type Chunker struct {
	size    int
	overlap int

	// codec is nil when the tiktoken vocabulary could not be loaded; the
	// chunker then windows over words instead of tokens.
	codec tokenCodec
}

// NewChunker builds a token-window chunker. size and overlap are in
// tokens; overlap must be smaller than size.
func NewChunker(size, overlap int) *Chunker {
	if size <= 0 {
		size = 500
	}
	if overlap < 0 || overlap >= size {
		overlap = size / 10
	}

	var codec tokenCodec
	if enc, err := tiktoken.GetEncoding("cl100k_base"); err == nil {
		codec = enc
	}
	return &Chunker{size: size, overlap: overlap, codec: codec}
}

func newChunkerWithCodec(size, overlap int, codec tokenCodec) *Chunker {
	return &Chunker{size: size, overlap: overlap, codec: codec}
}

// Chunk splits text into windows of at most size tokens, each sharing
// overlap tokens with its predecessor.
func (c *Chunker) Chunk(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if c.codec == nil {
		return c.chunkWords(text)
	}

	tokens := c.codec.Encode(text, nil, nil)
	if len(tokens) <= c.size {
		return []string{text}
	}

	step := c.size - c.overlap
	var chunks []string
	for start := 0; start < len(tokens); start += step {
		end := start + c.size
		if end > len(tokens) {
			end = len(tokens)
		}
		chunk := strings.TrimSpace(c.codec.Decode(tokens[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(tokens) {
			break
		}
	}
	return chunks
}

// chunkWords windows over whitespace-separated words, approximating one
// token per word.
func (c *Chunker) chunkWords(text string) []string {
	words := strings.Fields(text)
	if len(words) <= c.size {
		return []string{text}
	}

	step := c.size - c.overlap
	var chunks []string
	for start := 0; start < len(words); start += step {
		end := start + c.size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks
}
