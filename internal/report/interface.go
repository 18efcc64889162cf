package report

import (
	"context"

	syncpkg "executive-assistant/internal/sync"
)

// Progress compares current percentages with the recorded history.
// The sync use case satisfies it.
type Progress interface {
	Compare(ctx context.Context) (syncpkg.Comparison, error)
	RecordHistory(ctx context.Context) (int, error)
}

// UseCase builds and delivers the weekly digest.
type UseCase interface {
	// Build gathers overdue tasks and progress movement for the current week.
	Build(ctx context.Context) (Digest, error)

	// Compose turns a digest into an HTML email body.
	Compose(ctx context.Context, d Digest) string

	// Run builds, composes and, when enabled, emails the digest.
	Run(ctx context.Context, opt RunOptions) (Output, error)
}
