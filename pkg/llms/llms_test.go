package llms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hevoctl/hevoctl/pkg/config"
)

func TestNewSelectsProvider(t *testing.T) {
	tests := []struct {
		provider string
		apiKey   string
		wantErr  bool
	}{
		{"openai", "sk-test", false},
		{"anthropic", "sk-ant", false},
		{"ollama", "", false},
		{"gemini", "g-key", false},
		{"openai", "", true},
		{"abacus", "key", true},
	}
	for _, tt := range tests {
		p, err := New(config.LLMConfig{Provider: tt.provider, APIKey: tt.apiKey, Model: "m"})
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%s, key=%q) expected error", tt.provider, tt.apiKey)
			}
			continue
		}
		if err != nil {
			t.Errorf("New(%s) error = %v", tt.provider, err)
			continue
		}
		if p.Name() != tt.provider {
			t.Errorf("Name() = %s, want %s", p.Name(), tt.provider)
		}
	}
}

func TestOpenAIChat(t *testing.T) {
	var captured openAIRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hello there"}},
			},
		})
	}))
	defer server.Close()

	p, err := NewOpenAIProvider(config.LLMConfig{
		Provider: "openai", APIKey: "sk-test", Model: "gpt-4", Host: server.URL,
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}

	history := []Message{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hey"}}
	got, err := p.Chat(context.Background(), "pause my pipeline", "system prompt", history)
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if got != "hello there" {
		t.Errorf("Chat() = %q", got)
	}
	if len(captured.Messages) != 4 {
		t.Fatalf("sent %d messages, want 4", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" {
		t.Errorf("first message role = %s, want system", captured.Messages[0].Role)
	}
	if captured.Messages[3].Content != "pause my pipeline" {
		t.Errorf("last message = %q", captured.Messages[3].Content)
	}
}

func TestAnthropicChatSystemIsTopLevel(t *testing.T) {
	var captured anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "sk-ant" {
			t.Errorf("x-api-key = %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got == "" {
			t.Error("anthropic-version header missing")
		}
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "certainly"}},
		})
	}))
	defer server.Close()

	p, err := NewAnthropicProvider(config.LLMConfig{
		Provider: "anthropic", APIKey: "sk-ant", Model: "claude-3-5-sonnet", Host: server.URL,
	})
	if err != nil {
		t.Fatalf("NewAnthropicProvider() error = %v", err)
	}

	got, err := p.Chat(context.Background(), "list pipelines", "you are an assistant", nil)
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if got != "certainly" {
		t.Errorf("Chat() = %q", got)
	}
	if captured.System != "you are an assistant" {
		t.Errorf("system = %q, should travel as top-level field", captured.System)
	}
	for _, m := range captured.Messages {
		if m.Role == "system" {
			t.Error("system role must not appear in messages")
		}
	}
}

func TestOllamaChatError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "model not loaded"})
	}))
	defer server.Close()

	p, _ := NewOllamaProvider(config.LLMConfig{Provider: "ollama", Model: "llama3", Host: server.URL})
	if _, err := p.Chat(context.Background(), "hi", "", nil); err == nil {
		t.Error("Chat() should surface Ollama errors")
	}
}

func TestGeminiChatMapsRoles(t *testing.T) {
	var captured geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"role": "model", "parts": []map[string]string{{"text": "ok"}}}},
			},
		})
	}))
	defer server.Close()

	p, _ := NewGeminiProvider(config.LLMConfig{
		Provider: "gemini", APIKey: "g-key", Model: "gemini-1.5-pro", Host: server.URL,
	})
	history := []Message{{Role: "assistant", Content: "earlier answer"}}
	if _, err := p.Chat(context.Background(), "hello", "system", history); err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	// system preamble (2) + history (1) + user message (1)
	if len(captured.Contents) != 4 {
		t.Fatalf("sent %d contents, want 4", len(captured.Contents))
	}
	if captured.Contents[2].Role != "model" {
		t.Errorf("assistant history mapped to role %q, want model", captured.Contents[2].Role)
	}
}
