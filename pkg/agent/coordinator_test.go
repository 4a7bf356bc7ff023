package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hevoctl/hevoctl/pkg/llms"
	"github.com/hevoctl/hevoctl/pkg/schema"
)

// fakeProvider returns a canned response and captures the prompt.
type fakeProvider struct {
	response string
	err      error

	gotMessage string
	gotSystem  string
	gotHistory []llms.Message
}

func (f *fakeProvider) Chat(ctx context.Context, message, system string, history []llms.Message) (string, error) {
	f.gotMessage = message
	f.gotSystem = system
	f.gotHistory = history
	return f.response, f.err
}

func (f *fakeProvider) Name() string { return "fake" }

func TestCoordinatorParsesExecuteDirective(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"directive_type\": \"execute\", \"action\": \"list_pipelines\", \"params\": {}}\n```",
	}
	coordinator := NewCoordinator(provider, nil)

	d := coordinator.Process(context.Background(), CoordinatorInput{Message: "show my pipelines"})

	if d.Type != schema.DirectiveExecute || d.Action != "list_pipelines" {
		t.Fatalf("directive = %+v", d)
	}
	if provider.gotMessage != "show my pipelines" {
		t.Errorf("message = %q", provider.gotMessage)
	}
}

func TestCoordinatorLLMFailureBecomesUnsupported(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	coordinator := NewCoordinator(provider, nil)

	d := coordinator.Process(context.Background(), CoordinatorInput{Message: "pause orders"})

	if d.Type != schema.DirectiveUnsupported {
		t.Fatalf("type = %s", d.Type)
	}
	want := "I'm having trouble understanding right now. Error: connection refused"
	if d.InfoResponse != want {
		t.Errorf("info = %q, want %q", d.InfoResponse, want)
	}
}

func TestCoordinatorPromptCarriesContext(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	coordinator := NewCoordinator(provider, nil)

	coordinator.Process(context.Background(), CoordinatorInput{
		Message:      "pause the orders pipeline",
		RAGContext:   "Pipelines can be paused from the UI or API.",
		Pipelines:    []string{"Orders Sync", "Billing Export"},
		Destinations: []string{"warehouse"},
	})

	system := provider.gotSystem
	for _, want := range []string{
		"list_pipelines",
		"## Documentation Context",
		"Pipelines can be paused from the UI or API.",
		"## User's Resources",
		"Orders Sync",
		"warehouse",
	} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestCoordinatorForwardsHistory(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	coordinator := NewCoordinator(provider, nil)

	history := []llms.Message{
		{Role: "user", Content: "list pipelines"},
		{Role: "assistant", Content: "Found 1 pipelines:"},
	}
	coordinator.Process(context.Background(), CoordinatorInput{Message: "pause the first one", History: history})

	if len(provider.gotHistory) != 2 || provider.gotHistory[0].Content != "list pipelines" {
		t.Errorf("history = %v", provider.gotHistory)
	}
}
