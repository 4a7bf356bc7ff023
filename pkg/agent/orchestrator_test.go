package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hevoctl/hevoctl/pkg/hevo"
)

// fakeLister counts fetches so cache behavior can be asserted.
type fakeLister struct {
	pipelines       []string
	destinations    []string
	pipelineFetches int
	destFetches     int
	err             error
}

func (f *fakeLister) PipelineNames(ctx context.Context) ([]string, error) {
	f.pipelineFetches++
	return f.pipelines, f.err
}

func (f *fakeLister) DestinationNames(ctx context.Context) ([]string, error) {
	f.destFetches++
	return f.destinations, f.err
}

func newOrchestrator(provider *fakeProvider, invoker ActionInvoker, resources ResourceLister) *Orchestrator {
	return NewOrchestrator(NewCoordinator(provider, nil), NewExecutor(invoker), resources)
}

func TestProcessPauseSuccess(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"directive_type\": \"execute\", \"action\": \"pause_pipeline\", \"params\": {\"name\": \"Salesforce_to_Snowflake\"}}\n```",
	}
	invoker := newFakeInvoker(hevo.Outcome{
		Success: true,
		Message: "✓ Pipeline 'Salesforce_to_Snowflake' paused.",
	}, "pause_pipeline")
	o := newOrchestrator(provider, invoker, nil)

	response := o.Process(context.Background(), "pause Salesforce_to_Snowflake", nil, "")

	if !strings.Contains(response, "✓ Pipeline 'Salesforce_to_Snowflake' paused.") {
		t.Errorf("response = %q", response)
	}
	if !strings.Contains(response, "You might want to:") ||
		!strings.Contains(response, "  - Resume the pipeline when ready") {
		t.Errorf("missing suggestions in %q", response)
	}
	if invoker.lastAction != "pause_pipeline" {
		t.Errorf("invoked %q", invoker.lastAction)
	}
}

func TestProcessValidationFailure(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"directive_type\": \"execute\", \"action\": \"pause_pipeline\", \"params\": {}}\n```",
	}
	invoker := newFakeInvoker(hevo.Outcome{}, "pause_pipeline")
	o := newOrchestrator(provider, invoker, nil)

	response := o.Process(context.Background(), "pause the pipeline", nil, "")

	want := "I couldn't execute that action: Pipeline/resource name or ID is required for pause_pipeline"
	if response != want {
		t.Errorf("response = %q, want %q", response, want)
	}
	if invoker.calls != 0 {
		t.Error("invalid directives must not reach the invoker")
	}
}

func TestProcessNotFoundAddsListingTip(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"directive_type\": \"execute\", \"action\": \"get_pipeline\", \"params\": {\"name\": \"ghost\"}}\n```",
	}
	invoker := newFakeInvoker(hevo.Outcome{Success: false, Message: "Pipeline not found: ghost"}, "get_pipeline")
	o := newOrchestrator(provider, invoker, nil)

	response := o.Process(context.Background(), "show pipeline ghost", nil, "")

	if !strings.Contains(response, "Error (NOT_FOUND): Pipeline not found: ghost") {
		t.Errorf("response = %q", response)
	}
	if !strings.Contains(response, "Tip: You can list available resources first:") ||
		!strings.Contains(response, `  - "List my pipelines"`) {
		t.Errorf("missing tip in %q", response)
	}
}

func TestProcessLLMFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("timeout")}
	o := newOrchestrator(provider, newFakeInvoker(hevo.Outcome{}), nil)

	response := o.Process(context.Background(), "pause orders", nil, "")

	want := "I'm sorry, I'm having trouble understanding right now. Error: timeout"
	if response != want {
		t.Errorf("response = %q, want %q", response, want)
	}
}

func TestProcessClarifyPassthrough(t *testing.T) {
	provider := &fakeProvider{response: "Could you specify which pipeline you mean?"}
	o := newOrchestrator(provider, newFakeInvoker(hevo.Outcome{}), nil)

	response := o.Process(context.Background(), "pause it", nil, "")

	if response != "Could you specify which pipeline you mean?" {
		t.Errorf("response = %q", response)
	}
}

func TestProcessClarifyDefaultQuestion(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"directive_type\": \"clarify\", \"missing_params\": [\"name\"]}\n```",
	}
	o := newOrchestrator(provider, newFakeInvoker(hevo.Outcome{}), nil)

	response := o.Process(context.Background(), "pause it", nil, "")

	if response != "Could you please provide more details?" {
		t.Errorf("response = %q", response)
	}
}

func TestProcessUnsupportedDefaultText(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"directive_type\": \"unsupported\"}\n```",
	}
	o := newOrchestrator(provider, newFakeInvoker(hevo.Outcome{}), nil)

	response := o.Process(context.Background(), "delete my account", nil, "")

	if response != "I'm sorry, that action is not supported." {
		t.Errorf("response = %q", response)
	}
}

func TestProcessInfoOnly(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"directive_type\": \"info_only\", \"info_response\": \"Pipelines sync data on a schedule.\"}\n```",
	}
	o := newOrchestrator(provider, newFakeInvoker(hevo.Outcome{}), nil)

	response := o.Process(context.Background(), "what is a pipeline?", nil, "")

	if response != "Pipelines sync data on a schedule." {
		t.Errorf("response = %q", response)
	}
}

func TestProcessStatusLineSkippedForListings(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"directive_type\": \"execute\", \"action\": \"list_pipelines\", \"params\": {}}\n```",
	}
	invoker := newFakeInvoker(hevo.Outcome{
		Success: true,
		Message: "Found 1 pipelines:",
		Data:    map[string]any{"status": "ACTIVE"},
	}, "list_pipelines")
	o := newOrchestrator(provider, invoker, nil)

	response := o.Process(context.Background(), "list pipelines", nil, "")

	if strings.Contains(response, "Status:") {
		t.Errorf("listing response should not carry a status line: %q", response)
	}
}

func TestProcessStatusLineForSingleResource(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"directive_type\": \"execute\", \"action\": \"run_pipeline\", \"params\": {\"name\": \"orders\"}}\n```",
	}
	invoker := newFakeInvoker(hevo.Outcome{
		Success: true,
		Message: "✓ Pipeline 'orders' triggered.",
		Data:    map[string]any{"status": "STREAMING"},
	}, "run_pipeline")
	o := newOrchestrator(provider, invoker, nil)

	response := o.Process(context.Background(), "run orders", nil, "")

	if !strings.Contains(response, "Status: STREAMING") {
		t.Errorf("response = %q", response)
	}
}

func TestResourceCacheAndClear(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	lister := &fakeLister{pipelines: []string{"orders"}, destinations: []string{"warehouse"}}
	o := newOrchestrator(provider, newFakeInvoker(hevo.Outcome{}), lister)
	ctx := context.Background()

	o.Process(ctx, "hello", nil, "")
	o.Process(ctx, "hello again", nil, "")

	if lister.pipelineFetches != 1 || lister.destFetches != 1 {
		t.Fatalf("fetches = %d/%d, want 1/1", lister.pipelineFetches, lister.destFetches)
	}
	if !strings.Contains(provider.gotSystem, "orders") {
		t.Error("prompt missing cached pipeline name")
	}

	o.ClearCache()
	o.Process(ctx, "hello once more", nil, "")

	if lister.pipelineFetches != 2 || lister.destFetches != 2 {
		t.Errorf("fetches after clear = %d/%d, want 2/2", lister.pipelineFetches, lister.destFetches)
	}
}

func TestResourceErrorsDegradeToNoHints(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	lister := &fakeLister{err: errors.New("api down")}
	o := newOrchestrator(provider, newFakeInvoker(hevo.Outcome{}), lister)

	o.Process(context.Background(), "hello", nil, "")

	if strings.Contains(provider.gotSystem, "## User's Resources") {
		t.Error("prompt should omit resource hints when listing fails")
	}
	// Failed fetches are still cached so one bad turn does not hammer the API.
	o.Process(context.Background(), "again", nil, "")
	if lister.pipelineFetches != 1 {
		t.Errorf("pipelineFetches = %d", lister.pipelineFetches)
	}
}

func TestProcessDenylistShortCircuits(t *testing.T) {
	provider := &fakeProvider{response: "should never be used"}
	invoker := newFakeInvoker(hevo.Outcome{})
	o := newOrchestrator(provider, invoker, nil)

	response := o.Process(context.Background(), "please delete my destination", nil, "")

	if !strings.HasPrefix(response, "I'm sorry, Deleting destinations is not available") {
		t.Errorf("response = %q", response)
	}
	if provider.gotMessage != "" {
		t.Error("denied request should not reach the coordinator")
	}
	if invoker.calls != 0 {
		t.Errorf("invoker.calls = %d", invoker.calls)
	}
}

func TestProcessMissingParamsPrompt(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"directive_type\": \"execute\", \"action\": \"create_pipeline\", \"params\": {\"source_type\": \"MYSQL\"}}\n```",
	}
	invoker := newFakeInvoker(hevo.Outcome{}, "create_pipeline")
	o := newOrchestrator(provider, invoker, nil)

	response := o.Process(context.Background(), "create a mysql pipeline", nil, "")

	if !strings.Contains(response, "I need a few details") {
		t.Errorf("response = %q", response)
	}
	if !strings.Contains(response, "source_config") || !strings.Contains(response, "destination_id") {
		t.Errorf("prompt should name the missing parameters: %q", response)
	}
	if invoker.calls != 0 {
		t.Errorf("invoker.calls = %d", invoker.calls)
	}
}

func TestProcessRejectsDestinationOnlySource(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n{\"directive_type\": \"execute\", \"action\": \"create_pipeline\", " +
			"\"params\": {\"source_type\": \"SNOWFLAKE\", \"source_config\": {}, " +
			"\"destination_id\": \"42\", \"destination_type\": \"BIGQUERY\"}}\n```",
	}
	invoker := newFakeInvoker(hevo.Outcome{}, "create_pipeline")
	o := newOrchestrator(provider, invoker, nil)

	response := o.Process(context.Background(), "pipeline into bigquery", nil, "")

	if !strings.Contains(response, "I couldn't execute that action:") ||
		!strings.Contains(response, "SNOWFLAKE can only be used as a destination") {
		t.Errorf("response = %q", response)
	}
	if invoker.calls != 0 {
		t.Errorf("invoker.calls = %d", invoker.calls)
	}
}
