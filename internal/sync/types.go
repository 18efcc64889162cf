package sync

import (
	"time"

	"executive-assistant/internal/project"
)

// Options configures the sync job.
type Options struct {
	// OwnerID keeps only projects owned by this user. Empty keeps all.
	OwnerID string
	// BlockedStatuses are matched case-insensitively against the custom status.
	BlockedStatuses []string

	OutputPath  string
	HistoryPath string

	RetryAttempts int
	RetryDelay    time.Duration
	Concurrency   int

	// Store, when set, receives the new snapshot right after the write.
	Store *project.Store
	Now   func() time.Time
}

// SyncOutput summarises one run.
type SyncOutput struct {
	Fetched  int
	Kept     int
	Skipped  []string
	Path     string
	Duration time.Duration
}

// HistoryEntry is the recorded percentage of one project.
type HistoryEntry struct {
	Name       string  `json:"name"`
	Percent    float64 `json:"percent"`
	RecordedAt string  `json:"data_registro"`
}

// History maps project ids to their last recorded percentage.
type History map[string]HistoryEntry

// Stagnant is a project whose percentage did not move.
type Stagnant struct {
	Name    string
	Percent int
}

// Evolution is a project whose percentage changed.
type Evolution struct {
	Name   string
	Before int
	After  int
	Delta  int
}

// Comparison is the progress of the current projects against the history.
// Projects without history appear in neither list.
type Comparison struct {
	Stagnant []Stagnant
	Evolved  []Evolution
}
