package capabilities

import (
	"strings"
	"testing"
)

func TestDefaultCatalogue(t *testing.T) {
	r := Default()
	if r.Len() < 40 {
		t.Errorf("catalogue has %d actions, expected at least 40", r.Len())
	}

	// Every follow-up must reference a registered action.
	for _, name := range r.Names() {
		def, _ := r.Lookup(name)
		for _, followUp := range def.FollowUps {
			if _, ok := r.Lookup(followUp); !ok {
				t.Errorf("action %s has unknown follow-up %s", name, followUp)
			}
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Default().Lookup("make_coffee"); ok {
		t.Error("Lookup should miss for unregistered actions")
	}
}

func TestMissingRequired(t *testing.T) {
	r := Default()

	tests := []struct {
		name     string
		action   string
		provided map[string]any
		want     []string
	}{
		{
			name:     "create_pipeline with nothing",
			action:   "create_pipeline",
			provided: map[string]any{},
			want:     []string{"source_type", "source_config", "destination_id"},
		},
		{
			name:     "create_pipeline fully specified",
			action:   "create_pipeline",
			provided: map[string]any{"source_type": "MYSQL", "source_config": map[string]any{}, "destination_id": "123"},
			want:     nil,
		},
		{
			name:     "delete_pipeline id satisfied by name",
			action:   "delete_pipeline",
			provided: map[string]any{"name": "Orders", "confirmed": true},
			want:     nil,
		},
		{
			name:     "delete_pipeline missing confirmation",
			action:   "delete_pipeline",
			provided: map[string]any{"id": "12345"},
			want:     []string{"confirmed"},
		},
		{
			name:     "skip_object has no name/id substitution",
			action:   "skip_object",
			provided: map[string]any{"pipeline_id": "12345"},
			want:     []string{"object_name"},
		},
		{
			name:     "unknown action yields empty list",
			action:   "make_coffee",
			provided: map[string]any{},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing := r.MissingRequired(tt.action, tt.provided)
			got := make([]string, 0, len(missing))
			for _, p := range missing {
				got = append(got, p.Name)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("missing = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("missing[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMissingRequiredNameIDSubstitution(t *testing.T) {
	// For every implemented action, required params minus satisfied name/id
	// pairs must be reported, nothing else.
	r := Default()
	for _, name := range r.Names() {
		def, _ := r.Lookup(name)
		if !def.Implemented {
			continue
		}
		missing := r.MissingRequired(name, map[string]any{})
		seen := make(map[string]bool)
		for _, p := range missing {
			if !p.Required {
				t.Errorf("%s: optional parameter %s reported missing", name, p.Name)
			}
			seen[p.Name] = true
		}
		for _, p := range def.Parameters {
			if p.Required && !seen[p.Name] {
				t.Errorf("%s: required parameter %s not reported missing", name, p.Name)
			}
		}
	}
}

func TestPromptText(t *testing.T) {
	text := Default().PromptText()
	if !strings.Contains(text, "## Available Actions") {
		t.Error("prompt text missing header")
	}
	if !strings.Contains(text, "- pause_pipeline: Pause a pipeline (stops data ingestion) (params: name, id)") {
		t.Errorf("prompt text missing pause_pipeline line:\n%s", text)
	}
	if !strings.Contains(text, "### Workflows") {
		t.Error("prompt text missing Workflows category")
	}
}

func TestFormatHelp(t *testing.T) {
	help := Default().FormatHelp("pause_pipeline")
	if !strings.Contains(help, "Pause a pipeline") {
		t.Errorf("unexpected help text: %s", help)
	}
	if !strings.Contains(help, "name (optional)") {
		t.Errorf("help text missing parameter description: %s", help)
	}
	if Default().FormatHelp("make_coffee") != "" {
		t.Error("FormatHelp should return empty string for unknown actions")
	}
}

func TestFormatList(t *testing.T) {
	list := Default().FormatList()
	for _, category := range Categories {
		if !strings.Contains(list, string(category)) {
			t.Errorf("capability list missing category %s", category)
		}
	}
}
