package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync/atomic"

	"executive-assistant/internal/model"
)

// Source yields the snapshot to read from. Both *Snapshot and *Store implement it.
type Source interface {
	Snapshot() *Snapshot
}

// Snapshot is an immutable point-in-time view of the tracker projects.
// It is safe to share between goroutines.
type Snapshot struct {
	projects []model.Project
	byID     map[string]int
}

// NewSnapshot indexes projects by id. Ids must be unique.
func NewSnapshot(projects []model.Project) (*Snapshot, error) {
	s := &Snapshot{
		projects: make([]model.Project, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}
	copy(s.projects, projects)
	for i, p := range s.projects {
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		s.byID[p.ID] = i
	}
	return s, nil
}

// Load reads a JSON array of projects from path.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
		}
		return nil, err
	}

	var projects []model.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return NewSnapshot(projects)
}

// Snapshot returns s itself so a fixed snapshot can serve as a Source.
func (s *Snapshot) Snapshot() *Snapshot { return s }

// All returns the projects in load order. Callers must not modify the slice.
func (s *Snapshot) All() []model.Project {
	if s == nil {
		return nil
	}
	return s.projects
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.projects)
}

// First returns at most n projects in load order.
func (s *Snapshot) First(n int) []model.Project {
	all := s.All()
	if n < 0 || n >= len(all) {
		return all
	}
	return all[:n]
}

// Get looks a project up by id.
func (s *Snapshot) Get(id string) (model.Project, bool) {
	if s == nil {
		return model.Project{}, false
	}
	i, ok := s.byID[id]
	if !ok {
		return model.Project{}, false
	}
	return s.projects[i], true
}

// Store holds the current snapshot and swaps it atomically on reload.
type Store struct {
	path    string
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store for path with an empty snapshot.
func NewStore(path string) *Store {
	st := &Store{path: path}
	empty, _ := NewSnapshot(nil)
	st.current.Store(empty)
	return st
}

// Path returns the snapshot file the store reloads from.
func (st *Store) Path() string { return st.path }

// Snapshot returns the current snapshot.
func (st *Store) Snapshot() *Snapshot {
	return st.current.Load()
}

// Ready fails with ErrEmptySnapshot until a snapshot with projects is loaded.
func (st *Store) Ready() error {
	if st.current.Load().Len() == 0 {
		return ErrEmptySnapshot
	}
	return nil
}

// Reload re-reads the file. On error the previous snapshot is kept.
func (st *Store) Reload() (*Snapshot, error) {
	snap, err := Load(st.path)
	if err != nil {
		return st.current.Load(), err
	}
	st.current.Store(snap)
	return snap, nil
}

// Replace installs a snapshot built elsewhere (e.g. by a sync job).
func (st *Store) Replace(snap *Snapshot) {
	if snap != nil {
		st.current.Store(snap)
	}
}
