package orchestrator

import (
	"context"
	"time"

	"executive-assistant/internal/agent"
	"executive-assistant/internal/agent/planner"
	"executive-assistant/internal/conversation"
	"executive-assistant/internal/note/repository"
	"executive-assistant/internal/project"
	"executive-assistant/internal/router"
	"executive-assistant/pkg/llmprovider"
)

// Capabilities toggles optional behaviour of one Orchestrator type.
type Capabilities struct {
	// ConversationMemory feeds recent turns into routing and prompts.
	ConversationMemory bool
	// StructuredLogging emits one info entry per handled turn.
	StructuredLogging bool
}

// ActionPlanner plans tool calls. *planner.Planner satisfies it.
type ActionPlanner interface {
	Plan(ctx context.Context, utterance, convContext string) planner.Result
}

// ActionDispatcher executes confirmed actions. *dispatcher.Dispatcher satisfies it.
type ActionDispatcher interface {
	Execute(ctx context.Context, desc agent.Descriptor) string
}

// FolderEnsurer creates a per-project folder. project.FolderKeeper satisfies it.
type FolderEnsurer interface {
	Ensure(name string) (string, error)
}

// Dependencies are the collaborators composed by the Orchestrator.
type Dependencies struct {
	Router     router.Router
	Resolver   *project.Resolver
	Planner    ActionPlanner
	Dispatcher ActionDispatcher
	Notes      repository.Repository
	LLM        llmprovider.Generator
	// Folders is optional.
	Folders FolderEnsurer
}

// Options configures an Orchestrator.
type Options struct {
	Capabilities
	UserName        string
	AssistantName   string
	DataQueryLimit  int
	HelicopterLimit int
	Memory          conversation.Options
	Location        *time.Location
	Now             func() time.Time
}

// Snapshot is a read-only view of the dialogue state.
type Snapshot struct {
	GateState     string            `json:"gate_state"`
	PendingAction *agent.Descriptor `json:"pending_action,omitempty"`
	PendingNote   string            `json:"pending_note,omitempty"`
	Turns         int               `json:"turns"`
}

// projectBrief is the prompt view of a project: no full task list.
type projectBrief struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	PercentComplete float64           `json:"percent_complete"`
	Status          string            `json:"status,omitempty"`
	Phase           string            `json:"fase_atual"`
	CustomFields    map[string]string `json:"custom_fields,omitempty"`
	OpenTasks       []taskBrief       `json:"proximas_tarefas,omitempty"`
	Notes           []string          `json:"MEMORIA_GESTOR"`
}

type taskBrief struct {
	Name    string `json:"name"`
	EndDate string `json:"end_date,omitempty"`
}

// helicopterEntry is one row of the portfolio overview.
type helicopterEntry struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Percent float64  `json:"percent"`
	Phase   string   `json:"fase_real"`
	Notes   []string `json:"NOTAS"`
}
