// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The pipeline depends on these
// abstractions, not on concrete executors, stores, or loaders.
package ports

import (
	"context"

	"github.com/doeshing/jarvis-go/internal/domain"
)

// KnowledgeProvider loads the immutable rule tables and phrase templates.
// Implementations typically read ~/.jarvis/knowledge.yaml with embedded
// defaults as fallback. Load is called once at construction.
type KnowledgeProvider interface {
	Load(context.Context) (domain.Knowledge, error)
}

// ActionExecutor runs a chosen action against the outside world. The params
// map carries extracted entities and commands relevant to the action type.
// Executors must honor ctx cancellation; the pipeline wraps the call in a
// timeout and treats expiry as an error condition, not a silent hang.
type ActionExecutor interface {
	Execute(ctx context.Context, action domain.Action) (domain.ExecutionOutcome, error)
}

// MemoryStore is the append-only conversation memory collaborator.
type MemoryStore interface {
	Save(record domain.MemoryRecord) error
	Search(query string, limit int) ([]domain.MemoryRecord, error)
	Recent(limit int) ([]domain.MemoryRecord, error)
	Close() error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
