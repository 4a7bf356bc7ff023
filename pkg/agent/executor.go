package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hevoctl/hevoctl/pkg/hevo"
	"github.com/hevoctl/hevoctl/pkg/logger"
	"github.com/hevoctl/hevoctl/pkg/schema"
)

// ActionInvoker executes registered actions by name. *hevo.Invoker is
// the production implementation.
type ActionInvoker interface {
	Has(action string) bool
	Invoke(ctx context.Context, action string, params map[string]any) hevo.Outcome
}

// Actions that operate on a single resource and need a name or an ID.
var identityActions = map[string]bool{
	"get_pipeline":    true,
	"pause_pipeline":  true,
	"resume_pipeline": true,
	"run_pipeline":    true,
	"run_model":       true,
	"run_workflow":    true,
}

// Actions scoped to one object inside a pipeline.
var objectActions = map[string]bool{
	"skip_object":    true,
	"restart_object": true,
	"pause_object":   true,
	"resume_object":  true,
}

// Follow-up suggestions offered after a successful action.
var actionSuggestions = map[string][]string{
	"list_pipelines": {
		"View details of a specific pipeline",
		"Run a pipeline immediately",
	},
	"get_pipeline": {
		"List objects in this pipeline",
		"Run the pipeline now",
		"Pause the pipeline",
	},
	"pause_pipeline": {
		"Resume the pipeline when ready",
		"Check pipeline status",
	},
	"resume_pipeline": {
		"Run the pipeline immediately",
		"Check pipeline status",
	},
	"run_pipeline": {
		"Check pipeline status",
		"List objects being synced",
	},
	"list_objects": {
		"Skip an object from syncing",
		"Restart an object",
	},
	"skip_object": {
		"Include the object again later",
		"List all objects",
	},
	"restart_object": {
		"Check object status",
		"List all objects",
	},
	"list_destinations": {
		"View destination details",
	},
	"list_models": {
		"Run a model",
	},
	"run_model": {
		"List models to see status",
	},
	"list_workflows": {
		"Run a workflow",
	},
	"run_workflow": {
		"List workflows to see status",
	},
}

// Executor runs execute directives against the API and converts the
// raw outcome into a classified AgentActionResult.
type Executor struct {
	invoker ActionInvoker
	log     *slog.Logger
}

// NewExecutor builds an Executor over the given invoker.
func NewExecutor(invoker ActionInvoker) *Executor {
	return &Executor{
		invoker: invoker,
		log:     logger.WithComponent("executor"),
	}
}

// ValidateDirective checks that a directive can be executed. It
// returns false with a user-facing reason when it cannot.
func (e *Executor) ValidateDirective(directive schema.ActionDirective) (bool, string) {
	if directive.Type != schema.DirectiveExecute {
		return false, fmt.Sprintf("Cannot execute directive of type: %s", directive.Type)
	}
	if directive.Action == "" {
		return false, "No action specified"
	}
	if !e.invoker.Has(directive.Action) {
		return false, fmt.Sprintf("Unknown action: %s", directive.Action)
	}

	params := hevo.Params(directive.Params)

	if identityActions[directive.Action] {
		if params.Str("name") == "" && params.Str("id") == "" {
			return false, fmt.Sprintf("Pipeline/resource name or ID is required for %s", directive.Action)
		}
	}

	if objectActions[directive.Action] {
		if params.Str("pipeline_id") == "" && params.Str("pipeline_name") == "" {
			return false, "Pipeline ID or name is required"
		}
		if params.Str("object_name") == "" {
			return false, "Object name is required"
		}
	}

	return true, ""
}

// Execute runs an execute directive and classifies the outcome.
func (e *Executor) Execute(ctx context.Context, directive schema.ActionDirective) (result schema.AgentActionResult) {
	if directive.Type != schema.DirectiveExecute {
		return schema.ErrorResult("unknown", schema.ErrInvalidDirective,
			fmt.Sprintf("Cannot execute directive of type: %s", directive.Type))
	}
	if directive.Action == "" {
		return schema.ErrorResult("unknown", schema.ErrMissingAction, "No action specified in directive")
	}
	if !e.invoker.Has(directive.Action) {
		return schema.ErrorResult(directive.Action, schema.ErrUnknownAction,
			fmt.Sprintf("Unknown action: %s", directive.Action))
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("action panicked", "action", directive.Action, "panic", r)
			result = schema.ErrorResult(directive.Action, schema.ErrExecutionError, fmt.Sprintf("%v", r))
		}
	}()

	outcome := e.invoker.Invoke(ctx, directive.Action, directive.Params)
	return e.convert(directive.Action, outcome)
}

// ExecuteWithEnrichment executes a directive and leaves room for
// LLM-based result enrichment. Currently results pass through as-is.
func (e *Executor) ExecuteWithEnrichment(ctx context.Context, directive schema.ActionDirective) schema.AgentActionResult {
	return e.Execute(ctx, directive)
}

func (e *Executor) convert(action string, outcome hevo.Outcome) schema.AgentActionResult {
	if outcome.Success {
		return schema.SuccessResult(action, normalizeData(outcome.Data), outcome.Message, actionSuggestions[action])
	}
	return schema.ErrorResult(action, classifyError(outcome.Message), outcome.Message)
}

// classifyError maps an error message to a coarse error code by
// substring, the same way a human would skim the message.
func classifyError(message string) schema.ErrorCode {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "not found"):
		return schema.ErrNotFound
	case strings.Contains(lower, "permission"):
		return schema.ErrPermissionDenied
	case strings.Contains(lower, "already"):
		return schema.ErrAlreadyExists
	default:
		return schema.ErrAPIError
	}
}

// normalizeData folds arbitrary handler data into the map shape the
// result schema carries. Lists become {items, count}; structs are
// flattened through their JSON form.
func normalizeData(data any) map[string]any {
	switch v := data.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		return v
	case []map[string]any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = item
		}
		return map[string]any{"items": items, "count": len(v)}
	case []any:
		return map[string]any{"items": v, "count": len(v)}
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return map[string]any{}
	}

	var asMap map[string]any
	if err := json.Unmarshal(encoded, &asMap); err == nil {
		return asMap
	}

	var asList []any
	if err := json.Unmarshal(encoded, &asList); err == nil {
		return map[string]any{"items": asList, "count": len(asList)}
	}

	return map[string]any{}
}
