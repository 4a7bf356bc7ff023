package hevo

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/hevoctl/hevoctl/pkg/logger"
)

// Params is the loosely typed parameter bag attached to an action.
// Values come from LLM output, so numbers and booleans may arrive as
// strings or JSON numbers.
type Params map[string]any

// Str returns the parameter as a string, stringifying numbers and
// booleans. Missing keys return "".
func (p Params) Str(key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Int returns the parameter as an int where it parses as one.
func (p Params) Int(key string) (int, bool) {
	switch v := p[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// IntDefault returns the parameter as an int, or fallback when absent
// or unparseable.
func (p Params) IntDefault(key string, fallback int) int {
	if n, ok := p.Int(key); ok {
		return n
	}
	return fallback
}

// Bool returns the truthiness of the parameter.
func (p Params) Bool(key string) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	case float64:
		return v != 0
	default:
		return false
	}
}

// Has reports whether the key is present with a non-nil value.
func (p Params) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// Outcome is the terminal result of invoking one action.
type Outcome struct {
	Success bool
	Message string
	Data    any
}

func ok(message string, data any) (Outcome, error) {
	return Outcome{Success: true, Message: message, Data: data}, nil
}

func fail(message string) (Outcome, error) {
	return Outcome{Success: false, Message: message}, nil
}

func failf(format string, args ...any) (Outcome, error) {
	return fail(fmt.Sprintf(format, args...))
}

// HandlerFunc executes one action against the API.
type HandlerFunc func(ctx context.Context, params Params) (Outcome, error)

// Invoker dispatches action names to their API handlers.
type Invoker struct {
	client   *Client
	handlers map[string]HandlerFunc
	log      *slog.Logger
}

// NewInvoker builds an Invoker over the given API client.
func NewInvoker(client *Client) *Invoker {
	inv := &Invoker{
		client: client,
		log:    logger.WithComponent("invoker"),
	}
	inv.handlers = map[string]HandlerFunc{
		"list_pipelines":           inv.listPipelines,
		"get_pipeline":             inv.getPipeline,
		"create_pipeline":          inv.createPipeline,
		"delete_pipeline":          inv.deletePipeline,
		"pause_pipeline":           inv.pausePipeline,
		"resume_pipeline":          inv.resumePipeline,
		"run_pipeline":             inv.runPipeline,
		"update_pipeline_schedule": inv.updatePipelineSchedule,
		"update_pipeline_priority": inv.updatePipelinePriority,
		"get_pipeline_schedule":    inv.getPipelineSchedule,

		"list_objects":   inv.listObjects,
		"get_object":     inv.getObject,
		"pause_object":   inv.pauseObject,
		"resume_object":  inv.resumeObject,
		"skip_object":    inv.skipObject,
		"include_object": inv.includeObject,
		"restart_object": inv.restartObject,

		"get_transformation":    inv.getTransformation,
		"update_transformation": inv.updateTransformation,
		"test_transformation":   inv.testTransformation,

		"get_schema_mapping":    inv.getSchemaMapping,
		"update_schema_mapping": inv.updateSchemaMapping,
		"update_auto_mapping":   inv.updateAutoMapping,

		"list_event_types":   inv.listEventTypes,
		"skip_event_type":    inv.skipEventType,
		"include_event_type": inv.includeEventType,

		"list_destinations":     inv.listDestinations,
		"get_destination":       inv.getDestination,
		"create_destination":    inv.createDestination,
		"get_destination_stats": inv.getDestinationStats,
		"load_destination":      inv.loadDestination,

		"list_models":  inv.listModels,
		"get_model":    inv.getModel,
		"create_model": inv.createModel,
		"update_model": inv.updateModel,
		"delete_model": inv.deleteModel,
		"pause_model":  inv.pauseModel,
		"resume_model": inv.resumeModel,
		"run_model":    inv.runModel,
		"reset_model":  inv.resetModel,

		"list_workflows": inv.listWorkflows,
		"get_workflow":   inv.getWorkflow,
		"run_workflow":   inv.runWorkflow,

		"list_users":       inv.listUsers,
		"invite_user":      inv.inviteUser,
		"update_user_role": inv.updateUserRole,
		"delete_user":      inv.deleteUser,

		"list_oauth_accounts":  inv.listOAuthAccounts,
		"get_oauth_account":    inv.getOAuthAccount,
		"remove_oauth_account": inv.removeOAuthAccount,
	}
	return inv
}

// Has reports whether an action is registered.
func (inv *Invoker) Has(action string) bool {
	_, ok := inv.handlers[action]
	return ok
}

// Actions returns the sorted names of all registered actions.
func (inv *Invoker) Actions() []string {
	names := make([]string, 0, len(inv.handlers))
	for name := range inv.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs an action by name. Failures are folded into the Outcome
// so callers always get a user-facing message.
func (inv *Invoker) Invoke(ctx context.Context, action string, params map[string]any) Outcome {
	if action == "" {
		return Outcome{Success: false, Message: "No action specified"}
	}

	handler, found := inv.handlers[action]
	if !found {
		return Outcome{Success: false, Message: fmt.Sprintf("Unknown action: %s", action)}
	}

	outcome, err := handler(ctx, Params(params))
	if err != nil {
		inv.log.Warn("action failed", "action", action, "error", err)
		if apiErr, isAPI := AsAPIError(err); isAPI {
			return Outcome{Success: false, Message: fmt.Sprintf("API error: %s", apiErr.Message)}
		}
		return Outcome{Success: false, Message: fmt.Sprintf("Error executing action: %v", err)}
	}
	return outcome
}
