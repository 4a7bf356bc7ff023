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

const defaultOllamaHost = "http://localhost:11434"

// OllamaProvider implements Provider for a local Ollama server.
type OllamaProvider struct {
	config     config.LLMConfig
	httpClient *httpclient.Client
	baseURL    string
}

type ollamaRequest struct {
	Model    string         `json:"model"`
	Messages []Message      `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  *ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Message Message `json:"message"`
	Done    bool    `json:"done"`
	Error   string  `json:"error,omitempty"`
}

// NewOllamaProvider builds an Ollama provider. No API key is needed.
func NewOllamaProvider(cfg config.LLMConfig) (*OllamaProvider, error) {
	baseURL := cfg.Host
	if baseURL == "" {
		baseURL = defaultOllamaHost
	}
	return &OllamaProvider{
		config:     cfg,
		httpClient: newHTTPClient(cfg),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (p *OllamaProvider) Name() string { return "ollama" }

// Chat sends the conversation to /api/chat with streaming disabled.
func (p *OllamaProvider) Chat(ctx context.Context, message, system string, history []Message) (string, error) {
	messages := make([]Message, 0, len(history)+2)
	if system != "" {
		messages = append(messages, Message{Role: "system", Content: system})
	}
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: message})

	reqBody, err := json.Marshal(ollamaRequest{
		Model:    p.config.Model,
		Messages: messages,
		Stream:   false,
		Options: &ollamaOptions{
			Temperature: p.config.Temperature,
			NumPredict:  p.config.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/api/chat", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Ollama returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed ollamaResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse Ollama response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("Ollama error: %s", parsed.Error)
	}
	return parsed.Message.Content, nil
}
