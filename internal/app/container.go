package app

import (
	"context"
	"fmt"

	"github.com/doeshing/jarvis-go/internal/application/pipeline"
	"github.com/doeshing/jarvis-go/internal/decision"
	"github.com/doeshing/jarvis-go/internal/infrastructure/executor"
	"github.com/doeshing/jarvis-go/internal/infrastructure/knowledge"
	"github.com/doeshing/jarvis-go/internal/infrastructure/memory"
	"github.com/doeshing/jarvis-go/internal/infrastructure/security"
	"github.com/doeshing/jarvis-go/internal/pkg/logger"
	"github.com/doeshing/jarvis-go/internal/ports"
	"github.com/doeshing/jarvis-go/internal/reasoning"
)

// Container wires up the pipeline with infrastructure adapters.
type Container struct {
	Pipeline    *pipeline.Service
	MemoryStore ports.MemoryStore
	Logger      ports.Logger
}

// Options controls container construction.
type Options struct {
	Verbose       bool
	Preview       bool
	KnowledgePath string
	GuardrailPath string
	MemoryPath    string
}

// BuildContainer constructs the dependency graph. Knowledge loads once; the
// compiled tables are shared read-only by both engines.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	log := logger.New(opts.Verbose)

	loader := knowledge.NewLoader(opts.KnowledgePath)
	kb, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load knowledge: %w", err)
	}

	guard, err := security.NewGuardrail(opts.GuardrailPath)
	if err != nil {
		return nil, fmt.Errorf("load guardrail: %w", err)
	}

	svc := &pipeline.Service{
		Reasoner: reasoning.NewEngine(kb),
		Decider:  decision.NewEngine(kb),
		Executor: executor.NewLocalExecutor("", guard),
		Logger:   log,
		Preview:  opts.Preview,
	}

	container := &Container{Pipeline: svc, Logger: log}
	if store, err := memory.NewSQLiteStore(opts.MemoryPath); err != nil {
		log.Warn("memory store unavailable", map[string]interface{}{"error": err.Error()})
	} else {
		svc.Memory = store
		container.MemoryStore = store
	}
	return container, nil
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.MemoryStore != nil {
		return c.MemoryStore.Close()
	}
	return nil
}
