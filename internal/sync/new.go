package sync

import (
	"sync/atomic"
	"time"

	"executive-assistant/internal/project"
	pkgLog "executive-assistant/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	source  Source
	current project.Source
	opt     Options
	blocked map[string]bool
	running atomic.Bool
}

// New creates the sync use case. current supplies the projects for history
// and comparison; it is usually the same Store the sync writes to.
func New(l pkgLog.Logger, source Source, current project.Source, opt Options) UseCase {
	if opt.BlockedStatuses == nil {
		opt.BlockedStatuses = DefaultBlockedStatuses
	}
	if opt.RetryAttempts <= 0 {
		opt.RetryAttempts = DefaultRetryAttempts
	}
	if opt.RetryDelay == 0 {
		opt.RetryDelay = DefaultRetryDelay
	}
	if opt.Concurrency <= 0 {
		opt.Concurrency = DefaultConcurrency
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}

	blocked := make(map[string]bool, len(opt.BlockedStatuses))
	for _, s := range opt.BlockedStatuses {
		blocked[project.Normalize(s)] = true
	}

	return &implUseCase{
		l:       l,
		source:  source,
		current: current,
		opt:     opt,
		blocked: blocked,
	}
}

// WebhookHandler exposes the sync job over HTTP.
type WebhookHandler struct {
	uc UseCase
	l  pkgLog.Logger
}

func NewHandler(uc UseCase, l pkgLog.Logger) *WebhookHandler {
	return &WebhookHandler{
		uc: uc,
		l:  l,
	}
}
