package sqlite

import (
	"context"
	"fmt"
	"time"

	"executive-assistant/internal/model"
	"executive-assistant/internal/note/repository"
)

func (r *implRepository) Append(ctx context.Context, opt repository.AppendOptions) (model.Note, error) {
	if err := opt.Validate(); err != nil {
		return model.Note{}, err
	}

	createdAt := r.now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO project_notes (project_id, project_name, note, created_at) VALUES (?, ?, ?, ?)`,
		opt.ProjectID, opt.ProjectName, opt.Text, createdAt.UnixMilli())
	if err != nil {
		return model.Note{}, fmt.Errorf("note sqlite: insert: %w", err)
	}
	id, _ := res.LastInsertId()

	return model.Note{
		ID:          id,
		ProjectID:   opt.ProjectID,
		ProjectName: opt.ProjectName,
		Text:        opt.Text,
		CreatedAt:   createdAt,
	}, nil
}

func (r *implRepository) ReadAll(ctx context.Context, projectID string) ([]string, error) {
	notes, err := r.List(ctx, repository.ListOptions{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	return repository.Render(notes), nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Note, error) {
	query := `SELECT id, project_id, project_name, note, created_at FROM project_notes`
	var args []any
	if opt.ProjectID != "" {
		query += ` WHERE project_id = ?`
		args = append(args, opt.ProjectID)
	}
	query += ` ORDER BY id DESC`
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("note sqlite: query: %w", err)
	}
	defer rows.Close()

	var out []model.Note
	for rows.Next() {
		var n model.Note
		var ms int64
		if err := rows.Scan(&n.ID, &n.ProjectID, &n.ProjectName, &n.Text, &ms); err != nil {
			return nil, fmt.Errorf("note sqlite: scan: %w", err)
		}
		n.CreatedAt = time.UnixMilli(ms)
		out = append(out, n)
	}
	return out, rows.Err()
}
