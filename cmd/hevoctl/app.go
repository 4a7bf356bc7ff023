package main

import (
	"context"
	"fmt"

	"github.com/hevoctl/hevoctl/pkg/agent"
	"github.com/hevoctl/hevoctl/pkg/config"
	"github.com/hevoctl/hevoctl/pkg/embedders"
	"github.com/hevoctl/hevoctl/pkg/hevo"
	"github.com/hevoctl/hevoctl/pkg/llms"
	"github.com/hevoctl/hevoctl/pkg/logger"
	"github.com/hevoctl/hevoctl/pkg/rag"
	"github.com/hevoctl/hevoctl/pkg/session"
	"github.com/hevoctl/hevoctl/pkg/vector"
)

// app is the composition root: everything a chat or ask session needs,
// wired once from the configuration.
type app struct {
	cfg          *config.Config
	client       *hevo.Client
	orchestrator *agent.Orchestrator
	retriever    *rag.Retriever
	session      *session.Session
}

// newApp wires the full turn pipeline. The retriever is optional: when
// the documentation index is unavailable, turns run without RAG context.
func newApp(cfg *config.Config) (*app, error) {
	client := hevo.NewClient(cfg.Hevo)

	provider, err := llms.New(coordinatorLLM(cfg))
	if err != nil {
		return nil, fmt.Errorf("llm provider: %w", err)
	}

	coordinator := agent.NewCoordinator(provider, nil)
	executor := agent.NewExecutor(hevo.NewInvoker(client))
	orchestrator := agent.NewOrchestrator(coordinator, executor, client)

	return &app{
		cfg:          cfg,
		client:       client,
		orchestrator: orchestrator,
		retriever:    newRetriever(cfg),
		session:      session.New(),
	}, nil
}

// coordinatorLLM derives the coordinator's LLM settings from the base
// provider config plus the agent overrides.
func coordinatorLLM(cfg *config.Config) config.LLMConfig {
	llm := cfg.LLM
	if cfg.Agent.CoordinatorModel != "" {
		llm.Model = cfg.Agent.CoordinatorModel
	}
	if cfg.Agent.CoordinatorTemperature != 0 {
		llm.Temperature = cfg.Agent.CoordinatorTemperature
	}
	return llm
}

// newRetriever builds the documentation retriever, or nil when the RAG
// stack cannot be constructed.
func newRetriever(cfg *config.Config) *rag.Retriever {
	log := logger.WithComponent("app")

	store, err := vector.New(cfg.RAG)
	if err != nil {
		log.Debug("vector store unavailable", "error", err)
		return nil
	}
	embedder, err := embedders.New(cfg.RAG)
	if err != nil {
		log.Debug("embedder unavailable", "error", err)
		return nil
	}
	return rag.NewRetriever(store, embedder, "", cfg.RAG.TopK)
}

// turn runs one user message end to end and records it in the session.
func (a *app) turn(ctx context.Context, message string) string {
	ragContext := ""
	if a.retriever != nil {
		ragContext = a.retriever.Context(ctx, message)
	}

	response := a.orchestrator.Process(ctx, message, a.session.History(), ragContext)
	a.session.RecordTurn(message, response)
	return response
}
