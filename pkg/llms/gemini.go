package llms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hevoctl/hevoctl/pkg/config"
	"github.com/hevoctl/hevoctl/pkg/httpclient"
)

const defaultGeminiHost = "https://generativelanguage.googleapis.com"

// GeminiProvider implements Provider for the Gemini generateContent API.
// Gemini has no system role; the system prompt is prepended as a user turn
// followed by a model acknowledgment, and assistant history maps to the
// "model" role.
type GeminiProvider struct {
	config     config.LLMConfig
	httpClient *httpclient.Client
	baseURL    string
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error *geminiError `json:"error,omitempty"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// NewGeminiProvider builds a Gemini provider.
func NewGeminiProvider(cfg config.LLMConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	baseURL := cfg.Host
	if baseURL == "" {
		baseURL = defaultGeminiHost
	}
	return &GeminiProvider{
		config:     cfg,
		httpClient: newHTTPClient(cfg),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (p *GeminiProvider) Name() string { return "gemini" }

// Chat sends the conversation to /v1beta/models/{model}:generateContent.
func (p *GeminiProvider) Chat(ctx context.Context, message, system string, history []Message) (string, error) {
	contents := make([]geminiContent, 0, len(history)+3)
	if system != "" {
		contents = append(contents,
			geminiContent{Role: "user", Parts: []geminiPart{{Text: system}}},
			geminiContent{Role: "model", Parts: []geminiPart{{Text: "Understood."}}},
		)
	}
	for _, msg := range history {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: msg.Content}}})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: message}}})

	reqBody, err := json.Marshal(geminiRequest{
		Contents: contents,
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     p.config.Temperature,
			MaxOutputTokens: p.config.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		p.baseURL, p.config.Model, p.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Gemini API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse Gemini response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("Gemini API error: %s", parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}

	var b strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}
