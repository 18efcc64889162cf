package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"executive-assistant/internal/model"
)

func (uc *implUseCase) RecordHistory(ctx context.Context) (int, error) {
	if uc.opt.HistoryPath == "" {
		return 0, errors.New("sync.RecordHistory: history path is required")
	}
	projects := uc.current.Snapshot().All()
	h := NewHistory(projects, uc.opt.Now().Format(HistoryDateFormat))
	if err := writeJSONAtomic(uc.opt.HistoryPath, h); err != nil {
		return 0, fmt.Errorf("sync.RecordHistory: %w", err)
	}
	uc.l.Infof(ctx, "sync.RecordHistory: recorded %d projects", len(h))
	return len(h), nil
}

func (uc *implUseCase) Compare(ctx context.Context) (Comparison, error) {
	h, err := LoadHistory(uc.opt.HistoryPath)
	if err != nil {
		return Comparison{}, fmt.Errorf("sync.Compare: %w", err)
	}
	return Compare(uc.current.Snapshot().All(), h), nil
}

// NewHistory records the percentage of every project on date.
func NewHistory(projects []model.Project, date string) History {
	h := make(History, len(projects))
	for _, p := range projects {
		h[p.ID] = HistoryEntry{Name: p.Name, Percent: p.PercentComplete, RecordedAt: date}
	}
	return h
}

// LoadHistory reads a history file. A missing file is an empty history.
func LoadHistory(path string) (History, error) {
	if path == "" {
		return History{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return History{}, nil
	}
	if err != nil {
		return nil, err
	}
	h := History{}
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return h, nil
}

// Compare classifies projects by whole-percent movement since the history.
func Compare(projects []model.Project, h History) Comparison {
	var c Comparison
	for _, p := range projects {
		old, ok := h[p.ID]
		if !ok {
			continue
		}
		now := int(math.Trunc(p.PercentComplete))
		before := int(math.Trunc(old.Percent))
		if now == before {
			c.Stagnant = append(c.Stagnant, Stagnant{Name: p.Name, Percent: now})
			continue
		}
		c.Evolved = append(c.Evolved, Evolution{Name: p.Name, Before: before, After: now, Delta: now - before})
	}
	return c
}
