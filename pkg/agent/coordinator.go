package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hevoctl/hevoctl/pkg/capabilities"
	"github.com/hevoctl/hevoctl/pkg/llms"
	"github.com/hevoctl/hevoctl/pkg/logger"
	"github.com/hevoctl/hevoctl/pkg/schema"
)

// Coordinator turns natural language into ActionDirectives. It never
// returns an error: LLM failures degrade into an unsupported directive
// so a turn always completes.
type Coordinator struct {
	provider llms.Provider
	registry *capabilities.Registry
	log      *slog.Logger
}

// NewCoordinator builds a Coordinator over the given LLM provider and
// action catalogue.
func NewCoordinator(provider llms.Provider, registry *capabilities.Registry) *Coordinator {
	if registry == nil {
		registry = capabilities.Default()
	}
	return &Coordinator{
		provider: provider,
		registry: registry,
		log:      logger.WithComponent("coordinator"),
	}
}

// CoordinatorInput carries one user turn plus the context the model
// needs to ground its directive.
type CoordinatorInput struct {
	Message      string
	History      []llms.Message
	RAGContext   string
	Pipelines    []string
	Destinations []string
}

// Process produces a directive for one user message.
func (c *Coordinator) Process(ctx context.Context, in CoordinatorInput) schema.ActionDirective {
	system := coordinatorPrompt(c.registry.PromptText(), in.RAGContext, in.Pipelines, in.Destinations)

	response, err := c.provider.Chat(ctx, in.Message, system, in.History)
	if err != nil {
		c.log.Warn("llm call failed", "error", err)
		return schema.Unsupported(fmt.Sprintf("I'm having trouble understanding right now. Error: %v", err))
	}

	directive := ParseDirective(response)
	c.log.Debug("directive parsed", "type", directive.Type, "action", directive.Action)
	return directive
}
