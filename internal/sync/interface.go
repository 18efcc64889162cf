package sync

import (
	"context"

	"github.com/gin-gonic/gin"

	"executive-assistant/pkg/zoho"
)

// Source is the tracker API the sync job reads. *zoho.Client satisfies it.
type Source interface {
	ListProjects(ctx context.Context) ([]zoho.Project, error)
	ListTasks(ctx context.Context, projectID string) ([]zoho.Task, error)
}

// UseCase refreshes the project snapshot file and tracks progress history.
type UseCase interface {
	// Sync downloads the active projects and atomically rewrites the snapshot file.
	Sync(ctx context.Context) (SyncOutput, error)

	// RecordHistory stores the current percentage of every project.
	RecordHistory(ctx context.Context) (int, error)

	// Compare splits the current projects into stagnant and evolved ones
	// against the recorded history.
	Compare(ctx context.Context) (Comparison, error)
}

// Handler defines the interface for the HTTP sync trigger.
type Handler interface {
	// HandleSync starts a sync in the background.
	HandleSync(c *gin.Context)
}
