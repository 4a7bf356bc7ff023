package agent

import (
	"testing"

	"github.com/hevoctl/hevoctl/pkg/schema"
)

func TestParseDirectiveFencedJSON(t *testing.T) {
	response := "Here you go:\n```json\n{\"directive_type\": \"execute\", \"action\": \"pause_pipeline\", \"params\": {\"name\": \"orders\"}}\n```"

	d := ParseDirective(response)
	if d.Type != schema.DirectiveExecute {
		t.Fatalf("type = %s", d.Type)
	}
	if d.Action != "pause_pipeline" || d.Params["name"] != "orders" {
		t.Errorf("unexpected directive: %+v", d)
	}
}

func TestParseDirectiveBareFence(t *testing.T) {
	response := "```\n{\"directive_type\": \"clarify\", \"question\": \"Which pipeline?\", \"missing_params\": [\"name\"]}\n```"

	d := ParseDirective(response)
	if d.Type != schema.DirectiveClarify {
		t.Fatalf("type = %s", d.Type)
	}
	if d.Question != "Which pipeline?" {
		t.Errorf("question = %q", d.Question)
	}
}

func TestParseDirectiveInlineJSON(t *testing.T) {
	response := `Sure. {"directive_type": "info_only", "info_response": "Pipelines sync data."} Hope that helps.`

	d := ParseDirective(response)
	if d.Type != schema.DirectiveInfoOnly {
		t.Fatalf("type = %s", d.Type)
	}
	if d.InfoResponse != "Pipelines sync data." {
		t.Errorf("info = %q", d.InfoResponse)
	}
}

func TestParseDirectiveMalformedJSONFallsThrough(t *testing.T) {
	response := "```json\n{\"directive_type\": \"execute\", \"action\": }\n```\nWhich pipeline did you mean?"

	d := ParseDirective(response)
	if d.Type != schema.DirectiveClarify {
		t.Fatalf("expected clarify fallback, got %s", d.Type)
	}
	if d.Question != response {
		t.Errorf("question should carry the raw response")
	}
	if len(d.MissingParams) != 1 || d.MissingParams[0] != "unknown" {
		t.Errorf("missing_params = %v", d.MissingParams)
	}
}

func TestParseDirectiveClarifyCue(t *testing.T) {
	response := "Could you clarify the pipeline name?"

	d := ParseDirective(response)
	if d.Type != schema.DirectiveClarify {
		t.Fatalf("type = %s", d.Type)
	}
	if d.Question != response {
		t.Errorf("question = %q", d.Question)
	}
}

func TestParseDirectiveRefusalCue(t *testing.T) {
	d := ParseDirective("I cannot help with billing changes.")
	if d.Type != schema.DirectiveUnsupported {
		t.Fatalf("type = %s", d.Type)
	}
}

func TestParseDirectiveDefaultsToInfo(t *testing.T) {
	response := "Hevo pipelines move data from a source to a destination."

	d := ParseDirective(response)
	if d.Type != schema.DirectiveInfoOnly {
		t.Fatalf("type = %s", d.Type)
	}
	if d.InfoResponse != response {
		t.Errorf("info = %q", d.InfoResponse)
	}
}

func TestParseDirectiveMissingTypeDefaultsToExecute(t *testing.T) {
	response := "```json\n{\"action\": \"list_pipelines\"}\n```"

	d := ParseDirective(response)
	if d.Type != schema.DirectiveExecute {
		t.Fatalf("type = %s", d.Type)
	}
	if d.Params == nil {
		t.Error("params should be normalized to an empty map")
	}
}
