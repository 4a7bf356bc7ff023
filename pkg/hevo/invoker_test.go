package hevo

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/hevoctl/hevoctl/pkg/capabilities"
)

func TestInvokerCoversCatalogue(t *testing.T) {
	inv := NewInvoker(testClient(t, func(w http.ResponseWriter, r *http.Request) {}))
	for _, name := range capabilities.Default().Names() {
		if !inv.Has(name) {
			t.Errorf("catalogue action %q has no handler", name)
		}
	}
	if got, want := len(inv.Actions()), capabilities.Default().Len(); got != want {
		t.Errorf("handler count = %d, catalogue has %d", got, want)
	}
}

func TestInvokeUnknownAction(t *testing.T) {
	inv := NewInvoker(testClient(t, func(w http.ResponseWriter, r *http.Request) {}))

	outcome := inv.Invoke(context.Background(), "fly_to_moon", nil)
	if outcome.Success {
		t.Fatal("expected failure")
	}
	if outcome.Message != "Unknown action: fly_to_moon" {
		t.Errorf("message = %q", outcome.Message)
	}

	outcome = inv.Invoke(context.Background(), "", nil)
	if outcome.Message != "No action specified" {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestListPipelinesRendersTable(t *testing.T) {
	inv := NewInvoker(testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [
			{"id": 1, "status": "ACTIVE",
			 "source": {"name": "Orders Sync", "type": {"display_name": "MySQL"}},
			 "destination": {"name": "warehouse"}},
			{"id": 2, "status": "PAUSED",
			 "source": {"name": "Events", "type": {"display_name": "Kafka"}},
			 "destination": {"name": "lake"}}
		]}`))
	}))

	outcome := inv.Invoke(context.Background(), "list_pipelines", nil)
	if !outcome.Success {
		t.Fatalf("unexpected failure: %s", outcome.Message)
	}
	if !strings.Contains(outcome.Message, "Found 2 pipelines:") {
		t.Errorf("missing header: %q", outcome.Message)
	}
	if !strings.Contains(outcome.Message, "| Orders Sync | MySQL | warehouse | ACTIVE |") {
		t.Errorf("missing row: %q", outcome.Message)
	}

	outcome = inv.Invoke(context.Background(), "list_pipelines", map[string]any{"status": "draft"})
	if !outcome.Success || outcome.Message != "No draft pipelines found." {
		t.Errorf("status filter: %+v", outcome)
	}
}

func TestPausePipelineByName(t *testing.T) {
	var gotBody map[string]any
	inv := NewInvoker(testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/pipelines" && r.Method == http.MethodGet:
			w.Write([]byte(`{"data": [{"id": 42, "name": "Orders Sync", "status": "ACTIVE"}]}`))
		case r.URL.Path == "/pipelines/42" && r.Method == http.MethodGet:
			w.Write([]byte(`{"id": 42, "name": "Orders Sync", "status": "ACTIVE"}`))
		case r.URL.Path == "/pipelines/42/status" && r.Method == http.MethodPut:
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{"id": 42, "status": "PAUSED"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	outcome := inv.Invoke(context.Background(), "pause_pipeline", map[string]any{"name": "Orders Sync"})
	if !outcome.Success {
		t.Fatalf("unexpected failure: %s", outcome.Message)
	}
	if outcome.Message != "✓ Pipeline 'Orders Sync' paused." {
		t.Errorf("message = %q", outcome.Message)
	}
	if gotBody["status"] != "PAUSED" {
		t.Errorf("status body = %v", gotBody)
	}
}

func TestPausePipelineNotFound(t *testing.T) {
	inv := NewInvoker(testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": []}`))
	}))

	outcome := inv.Invoke(context.Background(), "pause_pipeline", map[string]any{"name": "ghost"})
	if outcome.Success {
		t.Fatal("expected failure")
	}
	if outcome.Message != "Pipeline not found: ghost" {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestDeletePipelineConfirmationGate(t *testing.T) {
	inv := NewInvoker(testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no API call expected before confirmation")
	}))

	outcome := inv.Invoke(context.Background(), "delete_pipeline", map[string]any{"name": "Orders Sync"})
	if outcome.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(outcome.Message, "permanent and cannot be undone") {
		t.Errorf("missing warning: %q", outcome.Message)
	}
	if !strings.Contains(outcome.Message, `"confirmed": true`) {
		t.Errorf("missing confirmation hint: %q", outcome.Message)
	}
}

func TestDeletePipelineConfirmed(t *testing.T) {
	deleted := false
	inv := NewInvoker(testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/pipelines" && r.Method == http.MethodGet:
			w.Write([]byte(`{"data": [{"id": 5, "name": "old", "status": "PAUSED"}]}`))
		case r.URL.Path == "/pipelines/5" && r.Method == http.MethodGet:
			w.Write([]byte(`{"id": 5, "name": "old"}`))
		case r.URL.Path == "/pipelines/5" && r.Method == http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	outcome := inv.Invoke(context.Background(), "delete_pipeline", map[string]any{"name": "old", "confirmed": true})
	if !outcome.Success {
		t.Fatalf("unexpected failure: %s", outcome.Message)
	}
	if !deleted {
		t.Error("DELETE was not issued")
	}
	if outcome.Message != "✓ Pipeline 'old' deleted successfully." {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestCreatePipelineValidation(t *testing.T) {
	inv := NewInvoker(testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no API call expected for invalid params")
	}))

	tests := []struct {
		params  map[string]any
		message string
	}{
		{map[string]any{}, "Source type is required (e.g., MYSQL, POSTGRES, SALESFORCE_V2)."},
		{map[string]any{"source_type": "MYSQL"}, "Source configuration is required."},
		{map[string]any{"source_type": "MYSQL", "source_config": map[string]any{}}, "Destination ID is required."},
		{
			map[string]any{"source_type": "MYSQL", "source_config": map[string]any{}, "destination_id": 1, "json_parsing_strategy": "BOGUS"},
			"Invalid json_parsing_strategy. Must be one of: FLAT, SPLIT, COLLAPSE, NATIVE, NATURAL, COLLAPSE_EXCEPT_ARRAYS",
		},
	}
	for _, tt := range tests {
		outcome := inv.Invoke(context.Background(), "create_pipeline", tt.params)
		if outcome.Success {
			t.Errorf("params %v: expected failure", tt.params)
		}
		if outcome.Message != tt.message {
			t.Errorf("params %v: message = %q, want %q", tt.params, outcome.Message, tt.message)
		}
	}
}

func TestAPIErrorSurfacesInOutcome(t *testing.T) {
	inv := NewInvoker(testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	outcome := inv.Invoke(context.Background(), "get_transformation", map[string]any{"pipeline_id": "99"})
	if outcome.Success {
		t.Fatal("expected failure")
	}
	if outcome.Message != "API error: Resource not found." {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestInviteUserRoleValidation(t *testing.T) {
	inv := NewInvoker(testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 1}`))
	}))

	outcome := inv.Invoke(context.Background(), "invite_user", map[string]any{"email": "dev@example.com", "role": "ROOT"})
	if outcome.Success || outcome.Message != "Role must be OWNER, ADMIN, MEMBER, or VIEWER." {
		t.Errorf("unexpected outcome: %+v", outcome)
	}

	outcome = inv.Invoke(context.Background(), "invite_user", map[string]any{"email": "dev@example.com"})
	if !outcome.Success {
		t.Fatalf("unexpected failure: %s", outcome.Message)
	}
	if outcome.Message != "✓ Invitation sent to dev@example.com as MEMBER." {
		t.Errorf("message = %q", outcome.Message)
	}
}
