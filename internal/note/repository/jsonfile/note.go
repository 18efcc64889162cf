package jsonfile

import (
	"context"
	"sort"

	"executive-assistant/internal/model"
	"executive-assistant/internal/note/repository"
)

func (r *implRepository) Append(ctx context.Context, opt repository.AppendOptions) (model.Note, error) {
	if err := opt.Validate(); err != nil {
		return model.Note{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc.LastID++
	e := entry{
		ID:          r.doc.LastID,
		ProjectName: opt.ProjectName,
		Text:        opt.Text,
		CreatedAt:   r.now(),
	}
	r.doc.Notes[opt.ProjectID] = append(r.doc.Notes[opt.ProjectID], e)

	if err := r.flush(); err != nil {
		notes := r.doc.Notes[opt.ProjectID]
		r.doc.Notes[opt.ProjectID] = notes[:len(notes)-1]
		r.doc.LastID--
		return model.Note{}, err
	}
	return toNote(opt.ProjectID, e), nil
}

func (r *implRepository) ReadAll(ctx context.Context, projectID string) ([]string, error) {
	notes, err := r.List(ctx, repository.ListOptions{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	return repository.Render(notes), nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.Note
	for pid, entries := range r.doc.Notes {
		if opt.ProjectID != "" && pid != opt.ProjectID {
			continue
		}
		for _, e := range entries {
			out = append(out, toNote(pid, e))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func toNote(projectID string, e entry) model.Note {
	return model.Note{
		ID:          e.ID,
		ProjectID:   projectID,
		ProjectName: e.ProjectName,
		Text:        e.Text,
		CreatedAt:   e.CreatedAt,
	}
}
