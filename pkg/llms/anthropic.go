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

const (
	defaultAnthropicHost    = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
	anthropicDefaultMaxToks = 4096
)

// AnthropicProvider implements Provider for the Anthropic messages API.
// The system prompt travels as a top-level field, not a message.
type AnthropicProvider struct {
	config     config.LLMConfig
	httpClient *httpclient.Client
	baseURL    string
}

type anthropicRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	System      string    `json:"system,omitempty"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature,omitempty"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string          `json:"stop_reason"`
	Error      *anthropicError `json:"error,omitempty"`
}

type anthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewAnthropicProvider builds an Anthropic provider.
func NewAnthropicProvider(cfg config.LLMConfig) (*AnthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
	}
	baseURL := cfg.Host
	if baseURL == "" {
		baseURL = defaultAnthropicHost
	}
	return &AnthropicProvider{
		config:     cfg,
		httpClient: newHTTPClient(cfg),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

// Chat sends the conversation to /v1/messages.
func (p *AnthropicProvider) Chat(ctx context.Context, message, system string, history []Message) (string, error) {
	messages := make([]Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: message})

	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = anthropicDefaultMaxToks
	}

	reqBody, err := json.Marshal(anthropicRequest{
		Model:       p.config.Model,
		Messages:    messages,
		System:      system,
		MaxTokens:   maxTokens,
		Temperature: p.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v1/messages", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.config.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Anthropic API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse Anthropic response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("Anthropic API error: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Anthropic API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var b strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text content in Anthropic response")
	}
	return b.String(), nil
}
