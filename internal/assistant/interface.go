package assistant

import (
	"context"

	"executive-assistant/internal/agent/orchestrator"
	"executive-assistant/internal/model"
)

// Conversation is one dialogue with its own gate, pending note and memory.
// *orchestrator.Orchestrator satisfies it.
type Conversation interface {
	Handle(ctx context.Context, utterance string) string
	ClearHistory()
	Snapshot() orchestrator.Snapshot
	History() []model.Turn
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Conversation
	Chat(ctx context.Context, msg model.InboundMessage) (ChatOutput, error)
	Session(ctx context.Context, sessionID string) (SessionOutput, error)
	ClearHistory(ctx context.Context, sessionID string) error

	// Dashboard
	ListProjects(ctx context.Context, input ListProjectsInput) (ListProjectsOutput, error)
	ProjectDetail(ctx context.Context, id string) (ProjectDetailOutput, error)
	AddNote(ctx context.Context, input AddNoteInput) (model.Note, error)
	ListNotes(ctx context.Context, input ListNotesInput) ([]model.Note, error)
	Metrics(ctx context.Context) (MetricsOutput, error)
}
