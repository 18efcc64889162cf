package usecase

import (
	"context"
	"strings"

	"executive-assistant/internal/assistant"
	"executive-assistant/internal/model"
	"executive-assistant/internal/note/repository"
	"executive-assistant/internal/project"
)

// ListProjects returns a page of the snapshot, optionally filtered by a
// case and accent insensitive name fragment.
func (uc *implUseCase) ListProjects(ctx context.Context, input assistant.ListProjectsInput) (assistant.ListProjectsOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = DefaultPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	all := uc.projects.Snapshot().All()
	if q := project.Normalize(strings.TrimSpace(input.Query)); q != "" {
		filtered := make([]model.Project, 0, len(all))
		for _, p := range all {
			if strings.Contains(project.Normalize(p.Name), q) {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}

	total := len(all)
	page := []model.Project{}
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		page = all[offset:end]
	}

	return assistant.ListProjectsOutput{
		Projects: page,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// ProjectDetail returns one project with its notes, most recent first.
func (uc *implUseCase) ProjectDetail(ctx context.Context, id string) (assistant.ProjectDetailOutput, error) {
	p, ok := uc.projects.Snapshot().Get(id)
	if !ok {
		return assistant.ProjectDetailOutput{}, assistant.ErrProjectNotFound
	}

	notes, err := uc.notes.List(ctx, repository.ListOptions{ProjectID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProjectDetail notes.List: %v", err)
		return assistant.ProjectDetailOutput{}, err
	}

	return assistant.ProjectDetailOutput{Project: p, Notes: notes}, nil
}

// AddNote stores a note typed into the dashboard.
func (uc *implUseCase) AddNote(ctx context.Context, input assistant.AddNoteInput) (model.Note, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Note{}, assistant.ErrEmptyNote
	}
	p, ok := uc.projects.Snapshot().Get(input.ProjectID)
	if !ok {
		return model.Note{}, assistant.ErrProjectNotFound
	}

	n, err := uc.notes.Append(ctx, repository.AppendOptions{
		ProjectID:   p.ID,
		ProjectName: p.Name,
		Text:        text,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddNote notes.Append: %v", err)
		return model.Note{}, err
	}
	return n, nil
}

// ListNotes returns notes across projects or of one project.
func (uc *implUseCase) ListNotes(ctx context.Context, input assistant.ListNotesInput) ([]model.Note, error) {
	notes, err := uc.notes.List(ctx, repository.ListOptions{
		ProjectID: input.ProjectID,
		Limit:     input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListNotes notes.List: %v", err)
		return nil, err
	}
	return notes, nil
}
