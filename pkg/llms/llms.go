// Package llms provides chat-completion clients for the supported language
// model providers. The agent layer only depends on the Provider interface:
// send a message with system context and history, get text back.
package llms

import (
	"context"
	"fmt"
	"time"

	"github.com/hevoctl/hevoctl/pkg/config"
	"github.com/hevoctl/hevoctl/pkg/httpclient"
)

// Message is a single conversation entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is the contract the agents program against.
type Provider interface {
	// Chat sends a user message with system context and prior history and
	// returns the model's text response.
	Chat(ctx context.Context, message, system string, history []Message) (string, error)

	// Name identifies the provider for logging.
	Name() string
}

// New builds the provider selected by the configuration.
func New(cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg)
	case "anthropic":
		return NewAnthropicProvider(cfg)
	case "ollama":
		return NewOllamaProvider(cfg)
	case "gemini":
		return NewGeminiProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

func newHTTPClient(cfg config.LLMConfig) *httpclient.Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout == 0 {
		timeout = 60 * time.Second
	}
	return httpclient.New(
		httpclient.WithTimeout(timeout),
		httpclient.WithRetryStrategy(httpclient.ConservativeRetry),
	)
}
