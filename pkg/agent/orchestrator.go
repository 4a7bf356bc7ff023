// Package agent implements the two-agent turn pipeline: the
// coordinator interprets the user's message into a directive and the
// executor carries it out against the API.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hevoctl/hevoctl/pkg/capabilities"
	"github.com/hevoctl/hevoctl/pkg/llms"
	"github.com/hevoctl/hevoctl/pkg/logger"
	"github.com/hevoctl/hevoctl/pkg/schema"
	"github.com/hevoctl/hevoctl/pkg/validator"
)

// ResourceLister supplies resource names for grounding the coordinator
// prompt. *hevo.Client is the production implementation.
type ResourceLister interface {
	PipelineNames(ctx context.Context) ([]string, error)
	DestinationNames(ctx context.Context) ([]string, error)
}

// Orchestrator drives one turn end to end: coordinator, validation,
// executor, response formatting.
type Orchestrator struct {
	coordinator *Coordinator
	executor    *Executor
	validator   *validator.Validator
	resources   ResourceLister
	log         *slog.Logger

	pipelinesCache    []string
	destinationsCache []string
	pipelinesLoaded   bool
	destLoaded        bool
}

// NewOrchestrator wires the turn pipeline. resources may be nil, in
// which case the prompt carries no resource hints.
func NewOrchestrator(coordinator *Coordinator, executor *Executor, resources ResourceLister) *Orchestrator {
	return &Orchestrator{
		coordinator: coordinator,
		executor:    executor,
		validator:   validator.New(capabilities.Default()),
		resources:   resources,
		log:         logger.WithComponent("orchestrator"),
	}
}

// Process runs one user message through the full pipeline and returns
// the text to show the user.
func (o *Orchestrator) Process(ctx context.Context, userMessage string, history []llms.Message, ragContext string) string {
	// The denylist screens the raw text before any LLM call so
	// categorically unsupported requests never reach the coordinator.
	if msg, blocked := o.validator.CheckUnsupported(userMessage); blocked {
		return fmt.Sprintf("I'm sorry, %s", msg)
	}

	directive := o.coordinator.Process(ctx, CoordinatorInput{
		Message:      userMessage,
		History:      history,
		RAGContext:   ragContext,
		Pipelines:    o.availablePipelines(ctx),
		Destinations: o.availableDestinations(ctx),
	})

	switch directive.Type {
	case schema.DirectiveClarify:
		if directive.Question != "" {
			return directive.Question
		}
		return "Could you please provide more details?"

	case schema.DirectiveUnsupported:
		info := directive.InfoResponse
		if info == "" {
			info = "that action is not supported."
		}
		return fmt.Sprintf("I'm sorry, %s", info)

	case schema.DirectiveInfoOnly:
		return directive.InfoResponse
	}

	if valid, reason := o.executor.ValidateDirective(directive); !valid {
		return fmt.Sprintf("I couldn't execute that action: %s", reason)
	}

	ok, errMsg, missing := o.validator.ValidateAction(directive.Action, directive.Params)
	if !ok {
		if len(missing) > 0 {
			return o.validator.MissingParamsPrompt(directive.Action, missing)
		}
		return fmt.Sprintf("I couldn't execute that action: %s", errMsg)
	}

	result := o.executor.Execute(ctx, directive)
	return formatResult(directive, result)
}

// formatResult renders the executor's result as user-facing text.
func formatResult(directive schema.ActionDirective, result schema.AgentActionResult) string {
	var lines []string

	if result.Success {
		if result.Message != "" {
			lines = append(lines, result.Message)
		} else {
			lines = append(lines, fmt.Sprintf("Action '%s' completed successfully!", directive.Action))
		}

		// Listings carry their table in the message already.
		if status, present := result.Result["status"]; present && !isListing(directive.Action) {
			lines = append(lines, fmt.Sprintf("\nStatus: %v", status))
		}

		if len(result.Suggestions) > 0 {
			lines = append(lines, "\nYou might want to:")
			for _, suggestion := range result.Suggestions {
				lines = append(lines, fmt.Sprintf("  - %s", suggestion))
			}
		}
		return strings.Join(lines, "\n")
	}

	errorCode := schema.ErrorCode("ERROR")
	errorMsg := "Something went wrong."
	if result.Error != nil {
		errorCode = result.Error.Code
		if result.Error.Message != "" {
			errorMsg = result.Error.Message
		}
	}
	lines = append(lines, fmt.Sprintf("Error (%s): %s", errorCode, errorMsg))

	if errorCode == schema.ErrNotFound {
		lines = append(lines, "\nTip: You can list available resources first:")
		action := strings.ToLower(directive.Action)
		switch {
		case strings.Contains(action, "pipeline"):
			lines = append(lines, `  - "List my pipelines"`)
		case strings.Contains(action, "model"):
			lines = append(lines, `  - "List my models"`)
		case strings.Contains(action, "workflow"):
			lines = append(lines, `  - "List my workflows"`)
		}
	}
	return strings.Join(lines, "\n")
}

func isListing(action string) bool {
	switch action {
	case "list_pipelines", "list_destinations", "list_models", "list_workflows":
		return true
	}
	return false
}

func (o *Orchestrator) availablePipelines(ctx context.Context) []string {
	if o.resources == nil {
		return nil
	}
	if !o.pipelinesLoaded {
		names, err := o.resources.PipelineNames(ctx)
		if err != nil {
			o.log.Debug("pipeline names unavailable", "error", err)
			names = nil
		}
		o.pipelinesCache = names
		o.pipelinesLoaded = true
	}
	return o.pipelinesCache
}

func (o *Orchestrator) availableDestinations(ctx context.Context) []string {
	if o.resources == nil {
		return nil
	}
	if !o.destLoaded {
		names, err := o.resources.DestinationNames(ctx)
		if err != nil {
			o.log.Debug("destination names unavailable", "error", err)
			names = nil
		}
		o.destinationsCache = names
		o.destLoaded = true
	}
	return o.destinationsCache
}

// ClearCache drops cached resource names so the next turn refetches
// them, e.g. after a create or delete.
func (o *Orchestrator) ClearCache() {
	o.pipelinesCache = nil
	o.destinationsCache = nil
	o.pipelinesLoaded = false
	o.destLoaded = false
}
