package validator

import (
	"strings"
	"testing"

	"github.com/hevoctl/hevoctl/pkg/capabilities"
)

func newValidator() *Validator {
	return New(capabilities.Default())
}

func TestCheckUnsupported(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantMatch  bool
		wantSubstr string
	}{
		{
			name:       "destination deletion",
			query:      "please delete my destination",
			wantMatch:  true,
			wantSubstr: "Deleting destinations",
		},
		{
			name:      "listing pipelines is fine",
			query:     "list my pipelines",
			wantMatch: false,
		},
		{
			name:       "password reset",
			query:      "Reset my password please",
			wantMatch:  true,
			wantSubstr: "Password changes",
		},
		{
			name:       "billing",
			query:      "show me my invoice for March",
			wantMatch:  true,
			wantSubstr: "Billing",
		},
		{
			name:       "data export",
			query:      "export my data to CSV",
			wantMatch:  true,
			wantSubstr: "Direct data export",
		},
		{
			name:       "snowflake as source",
			query:      "create a pipeline with Snowflake as source",
			wantMatch:  true,
			wantSubstr: "Snowflake cannot be used as a data source",
		},
		{
			name:       "from snowflake",
			query:      "sync from snowflake to bigquery",
			wantMatch:  true,
			wantSubstr: "Snowflake cannot be used as a source connector",
		},
		{
			name:       "databricks as source",
			query:      "use databricks as a source",
			wantMatch:  true,
			wantSubstr: "Databricks cannot be used",
		},
		{
			name:      "snowflake as destination is fine",
			query:     "create a MySQL to Snowflake pipeline",
			wantMatch: false,
		},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, matched := v.CheckUnsupported(tt.query)
			if matched != tt.wantMatch {
				t.Fatalf("CheckUnsupported(%q) matched = %v, want %v (msg: %s)",
					tt.query, matched, tt.wantMatch, msg)
			}
			if tt.wantSubstr != "" && !strings.Contains(msg, tt.wantSubstr) {
				t.Errorf("message %q does not contain %q", msg, tt.wantSubstr)
			}
		})
	}
}

func TestValidateActionUnknown(t *testing.T) {
	ok, errMsg, missing := newValidator().ValidateAction("nonexistent_action", map[string]any{})
	if ok {
		t.Error("unknown action should be invalid")
	}
	if errMsg == "" {
		t.Error("unknown action should carry an error message")
	}
	if len(missing) != 0 {
		t.Errorf("unknown action should have no missing list, got %v", missing)
	}
}

func TestValidateActionNotImplemented(t *testing.T) {
	registry := capabilities.NewRegistry([]capabilities.ActionDefinition{
		{Name: "future_action", Description: "Something upcoming", Category: capabilities.CategoryPipelines},
	})
	ok, errMsg, _ := New(registry).ValidateAction("future_action", map[string]any{})
	if ok {
		t.Error("unimplemented action should be invalid")
	}
	if !strings.Contains(errMsg, "coming soon") {
		t.Errorf("errMsg = %q, want coming-soon message", errMsg)
	}
}

func TestValidateActionMissingParams(t *testing.T) {
	ok, errMsg, missing := newValidator().ValidateAction("skip_object", map[string]any{})
	if ok {
		t.Error("skip_object with no params should be invalid")
	}
	if errMsg != "" {
		t.Errorf("missing-params path should not carry an error message, got %q", errMsg)
	}
	if len(missing) != 2 {
		t.Errorf("missing = %v, want pipeline_id and object_name", missing)
	}
}

func TestValidateActionDirectionGate(t *testing.T) {
	v := newValidator()
	params := map[string]any{
		"source_type":      "SNOWFLAKE",
		"source_config":    map[string]any{},
		"destination_id":   "123",
		"destination_type": "BIGQUERY",
	}
	ok, errMsg, _ := v.ValidateAction("create_pipeline", params)
	if ok {
		t.Error("Snowflake source should fail direction validation")
	}
	if !strings.Contains(errMsg, "only be used as a destination") {
		t.Errorf("errMsg = %q", errMsg)
	}

	params["source_type"] = "MYSQL"
	params["destination_type"] = "SNOWFLAKE"
	if ok, errMsg, _ := v.ValidateAction("create_pipeline", params); !ok {
		t.Errorf("MYSQL to SNOWFLAKE should be valid, got %q", errMsg)
	}
}

func TestValidateActionValid(t *testing.T) {
	ok, errMsg, missing := newValidator().ValidateAction("pause_pipeline", map[string]any{"name": "Orders"})
	if !ok || errMsg != "" || len(missing) != 0 {
		t.Errorf("pause_pipeline with name should be valid, got ok=%v err=%q missing=%v", ok, errMsg, missing)
	}
}

func TestMissingParamsPrompt(t *testing.T) {
	v := newValidator()
	missing := []capabilities.Parameter{
		{Name: "pipeline_id", Description: "Pipeline ID", Required: true, Example: "12345"},
		{Name: "object_name", Description: "Object/table name", Required: true, Example: "users"},
	}
	prompt := v.MissingParamsPrompt("skip_object", missing)
	if !strings.Contains(prompt, "1. **pipeline_id**") {
		t.Errorf("prompt missing numbered parameter: %s", prompt)
	}
	if !strings.Contains(prompt, "(e.g., users)") {
		t.Errorf("prompt missing example: %s", prompt)
	}
}

func TestActionRequirements(t *testing.T) {
	v := newValidator()
	reqs := v.ActionRequirements("create_pipeline")
	if !strings.Contains(reqs, "**Required:**") || !strings.Contains(reqs, "**Optional:**") {
		t.Errorf("requirements missing sections: %s", reqs)
	}
	if v.ActionRequirements("make_coffee") != "" {
		t.Error("unknown action should yield empty requirements")
	}
	if !strings.Contains(v.ActionRequirements("list_destinations"), "No additional information") {
		t.Error("zero-parameter action should say nothing is needed")
	}
}
