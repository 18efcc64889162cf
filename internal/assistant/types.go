package assistant

import (
	"executive-assistant/internal/agent/orchestrator"
	"executive-assistant/internal/model"
)

// CriticalPercent is the completion below which a project is flagged.
const CriticalPercent = 30

// --- UseCase Inputs ---

type ListProjectsInput struct {
	Query  string
	Limit  int
	Offset int
}

type AddNoteInput struct {
	ProjectID string
	Text      string
}

type ListNotesInput struct {
	ProjectID string
	Limit     int
}

// --- UseCase Outputs ---

type ChatOutput struct {
	SessionID string
	Reply     string
	State     orchestrator.Snapshot
}

type SessionOutput struct {
	SessionID string
	State     orchestrator.Snapshot
	Turns     []model.Turn
}

type ListProjectsOutput struct {
	Projects []model.Project
	Total    int
	Limit    int
	Offset   int
}

type ProjectDetailOutput struct {
	Project model.Project
	Notes   []model.Note
}

// MetricsOutput summarises the portfolio for the dashboard.
type MetricsOutput struct {
	Total             int
	Completed         int
	InProgress        int
	NotStarted        int
	AverageCompletion float64
	// Critical is sorted by completion, lowest first.
	Critical []model.Project
}
