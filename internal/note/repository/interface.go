package repository

import (
	"context"

	"executive-assistant/internal/model"
)

// Repository is the append-only NoteStore. Implementations serialise
// concurrent appends.
type Repository interface {
	// Append stores a note stamped with the current time.
	Append(ctx context.Context, opt AppendOptions) (model.Note, error)
	// ReadAll returns the rendered notes of a project, most recent first.
	ReadAll(ctx context.Context, projectID string) ([]string, error)
	// List returns raw notes, most recent first.
	List(ctx context.Context, opt ListOptions) ([]model.Note, error)
	Close() error
}
