package http

import (
	"time"

	"executive-assistant/internal/agent/orchestrator"
	"executive-assistant/internal/assistant"
	"executive-assistant/internal/model"
	"executive-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

func (r chatReq) toInput(sc model.Scope) model.InboundMessage {
	sc.SessionID = r.SessionID
	sc.Source = model.SourceDashboard
	return model.InboundMessage{Scope: sc, Text: r.Message, ReceivedAt: time.Now()}
}

type listProjectsReq struct {
	Query  string `form:"q"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listProjectsReq) toInput() assistant.ListProjectsInput {
	return assistant.ListProjectsInput{Query: r.Query, Limit: r.Limit, Offset: r.Offset}
}

type addNoteReq struct {
	ProjectID string `json:"-"`
	Text      string `json:"text" binding:"required"`
}

func (r addNoteReq) toInput() assistant.AddNoteInput {
	return assistant.AddNoteInput{ProjectID: r.ProjectID, Text: r.Text}
}

type listNotesReq struct {
	ProjectID string `form:"project_id"`
	Limit     int    `form:"limit"`
}

func (r listNotesReq) toInput() assistant.ListNotesInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return assistant.ListNotesInput{ProjectID: r.ProjectID, Limit: limit}
}

// --- Response DTOs ---

type chatResp struct {
	SessionID string                `json:"session_id"`
	Reply     string                `json:"reply"`
	State     orchestrator.Snapshot `json:"state"`
}

func (h *handler) newChatResp(out assistant.ChatOutput) chatResp {
	return chatResp{SessionID: out.SessionID, Reply: out.Reply, State: out.State}
}

type turnResp struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	Timestamp response.DateTime `json:"timestamp"`
}

type sessionResp struct {
	SessionID string                `json:"session_id"`
	State     orchestrator.Snapshot `json:"state"`
	Turns     []turnResp            `json:"turns"`
}

func (h *handler) newSessionResp(out assistant.SessionOutput) sessionResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnResp{Role: string(t.Role), Content: t.Content, Timestamp: response.DateTime(t.Timestamp)}
	}
	return sessionResp{SessionID: out.SessionID, State: out.State, Turns: turns}
}

type projectItemResp struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PercentComplete float64 `json:"percent_complete"`
	Status          string  `json:"status,omitempty"`
	Phase           string  `json:"phase"`
}

func newProjectItemResp(p model.Project) projectItemResp {
	return projectItemResp{
		ID:              p.ID,
		Name:            p.Name,
		PercentComplete: p.PercentComplete,
		Status:          p.Status,
		Phase:           p.CurrentPhase(),
	}
}

type listProjectsResp struct {
	Projects []projectItemResp `json:"projects"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

func (h *handler) newListProjectsResp(out assistant.ListProjectsOutput) listProjectsResp {
	items := make([]projectItemResp, len(out.Projects))
	for i, p := range out.Projects {
		items[i] = newProjectItemResp(p)
	}
	return listProjectsResp{Projects: items, Total: out.Total, Limit: out.Limit, Offset: out.Offset}
}

type noteResp struct {
	ID          int64             `json:"id"`
	ProjectID   string            `json:"project_id"`
	ProjectName string            `json:"project_name"`
	Text        string            `json:"text"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func newNoteResp(n model.Note) noteResp {
	return noteResp{
		ID:          n.ID,
		ProjectID:   n.ProjectID,
		ProjectName: n.ProjectName,
		Text:        n.Text,
		CreatedAt:   response.DateTime(n.CreatedAt),
	}
}

func newNotesResp(notes []model.Note) []noteResp {
	out := make([]noteResp, len(notes))
	for i, n := range notes {
		out[i] = newNoteResp(n)
	}
	return out
}

type projectDetailResp struct {
	Project model.Project `json:"project"`
	Phase   string        `json:"phase"`
	Notes   []noteResp    `json:"notes"`
}

func (h *handler) newProjectDetailResp(out assistant.ProjectDetailOutput) projectDetailResp {
	return projectDetailResp{
		Project: out.Project,
		Phase:   out.Project.CurrentPhase(),
		Notes:   newNotesResp(out.Notes),
	}
}

type metricsResp struct {
	Total             int               `json:"total"`
	Completed         int               `json:"completed"`
	InProgress        int               `json:"in_progress"`
	NotStarted        int               `json:"not_started"`
	AverageCompletion float64           `json:"average_completion"`
	Critical          []projectItemResp `json:"critical"`
}

func (h *handler) newMetricsResp(out assistant.MetricsOutput) metricsResp {
	critical := make([]projectItemResp, len(out.Critical))
	for i, p := range out.Critical {
		critical[i] = newProjectItemResp(p)
	}
	return metricsResp{
		Total:             out.Total,
		Completed:         out.Completed,
		InProgress:        out.InProgress,
		NotStarted:        out.NotStarted,
		AverageCompletion: out.AverageCompletion,
		Critical:          critical,
	}
}
