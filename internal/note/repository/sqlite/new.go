package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"executive-assistant/internal/note/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS project_notes (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	project_id   TEXT NOT NULL,
	project_name TEXT NOT NULL,
	note         TEXT NOT NULL,
	created_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_project_notes_project ON project_notes(project_id, id);
`

type implRepository struct {
	db  *sql.DB
	now func() time.Time
}

// Option customises the repository.
type Option func(*implRepository)

// WithClock overrides the time source used to stamp notes.
func WithClock(now func() time.Time) Option {
	return func(r *implRepository) { r.now = now }
}

// New opens (creating if needed) the SQLite database at path. A single
// connection is kept so appends are serialised.
func New(ctx context.Context, path string, opts ...Option) (repository.Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("note sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("note sqlite: migrate: %w", err)
	}

	r := &implRepository{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *implRepository) Close() error {
	return r.db.Close()
}
