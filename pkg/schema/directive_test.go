package schema

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDirectiveRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		directive ActionDirective
	}{
		{
			name:      "execute with params",
			directive: Execute("pause_pipeline", map[string]any{"name": "Orders Sync"}, "user asked to pause"),
		},
		{
			name:      "execute with empty params",
			directive: Execute("list_pipelines", nil, ""),
		},
		{
			name:      "clarify",
			directive: Clarify("Which pipeline do you mean?", []string{"name"}),
		},
		{
			name:      "unsupported",
			directive: Unsupported("Destination deletion is not supported."),
		},
		{
			name:      "info_only",
			directive: InfoOnly("A pipeline moves data from a source to a destination."),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.directive.Encode()
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			decoded, err := DecodeDirective(data)
			if err != nil {
				t.Fatalf("DecodeDirective() error = %v", err)
			}
			if !reflect.DeepEqual(decoded, tt.directive) {
				t.Errorf("round trip mismatch:\n got  %+v\n want %+v", decoded, tt.directive)
			}
		})
	}
}

func TestDirectiveOmitsForeignFields(t *testing.T) {
	data, err := Clarify("Which one?", []string{"name"}).Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"action", "params", "context", "info_response"} {
		if _, ok := raw[key]; ok {
			t.Errorf("clarify directive serialized foreign field %q", key)
		}
	}
}

func TestDecodeDirectiveDefaultsToExecute(t *testing.T) {
	d, err := DecodeDirective([]byte(`{"action":"list_pipelines","params":{}}`))
	if err != nil {
		t.Fatalf("DecodeDirective() error = %v", err)
	}
	if d.Type != DirectiveExecute {
		t.Errorf("Type = %q, want %q", d.Type, DirectiveExecute)
	}
	if d.Params == nil {
		t.Error("Params should be initialized for execute directives")
	}
}

func TestDecodeDirectiveInvalidJSON(t *testing.T) {
	if _, err := DecodeDirective([]byte(`{not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSuccessResultCapsSuggestions(t *testing.T) {
	r := SuccessResult("pause_pipeline", nil, "Paused.", []string{"a", "b", "c", "d"})
	if len(r.Suggestions) != MaxSuggestions {
		t.Errorf("len(Suggestions) = %d, want %d", len(r.Suggestions), MaxSuggestions)
	}
}

func TestErrorResultShape(t *testing.T) {
	r := ErrorResult("run_model", ErrNotFound, "Model 'X' not found")
	if r.Success {
		t.Error("Success should be false")
	}
	if r.Error == nil || r.Error.Code != ErrNotFound {
		t.Errorf("Error = %+v, want code %s", r.Error, ErrNotFound)
	}

	data, err := r.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := raw["result"]; ok {
		t.Error("failed result serialized empty result field")
	}
	if _, ok := raw["suggestions"]; ok {
		t.Error("failed result serialized empty suggestions field")
	}
}
