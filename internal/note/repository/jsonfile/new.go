package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"executive-assistant/internal/note/repository"
)

type entry struct {
	ID          int64     `json:"id"`
	ProjectName string    `json:"project_name"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

type document struct {
	LastID int64              `json:"last_id"`
	Notes  map[string][]entry `json:"notes"`
}

type implRepository struct {
	mu   sync.Mutex
	path string
	doc  document
	now  func() time.Time
}

// Option customises the repository.
type Option func(*implRepository)

// WithClock overrides the time source used to stamp notes.
func WithClock(now func() time.Time) Option {
	return func(r *implRepository) { r.now = now }
}

// New loads the JSON note file at path, creating an empty one if missing.
func New(path string, opts ...Option) (repository.Repository, error) {
	r := &implRepository{
		path: path,
		doc:  document{Notes: map[string][]entry{}},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return r, r.flush()
	case err != nil:
		return nil, fmt.Errorf("note jsonfile: read: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &r.doc); err != nil {
			return nil, fmt.Errorf("note jsonfile: decode %s: %w", path, err)
		}
	}
	if r.doc.Notes == nil {
		r.doc.Notes = map[string][]entry{}
	}
	return r, nil
}

// flush writes the document atomically. Callers hold r.mu.
func (r *implRepository) flush() error {
	data, err := json.MarshalIndent(r.doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("note jsonfile: write: %w", err)
	}
	return os.Rename(tmp, r.path)
}

func (r *implRepository) Close() error { return nil }
