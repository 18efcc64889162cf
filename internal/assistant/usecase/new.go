package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"executive-assistant/internal/assistant"
	"executive-assistant/internal/note/repository"
	"executive-assistant/internal/project"
	"executive-assistant/pkg/log"
)

const (
	DefaultMaxSessions = 256
	DefaultSessionTTL  = 2 * time.Hour
	DefaultPageSize    = 20
	maxPageSize        = 100
)

// Factory builds a fresh Conversation for a new session.
type Factory func() assistant.Conversation

// Options configures the session pool.
type Options struct {
	MaxSessions int
	SessionTTL  time.Duration
}

// conversation serialises the turns of one session.
type conversation struct {
	mu   sync.Mutex
	conv assistant.Conversation
}

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l        log.Logger
	factory  Factory
	projects project.Source
	notes    repository.Repository

	poolMu   sync.Mutex
	sessions *expirable.LRU[string, *conversation]
}

// New creates a new assistant UseCase. Idle sessions are evicted after
// SessionTTL, the least recently used first once MaxSessions is reached.
func New(l log.Logger, factory Factory, projects project.Source, notes repository.Repository, opt Options) assistant.UseCase {
	if opt.MaxSessions <= 0 {
		opt.MaxSessions = DefaultMaxSessions
	}
	if opt.SessionTTL <= 0 {
		opt.SessionTTL = DefaultSessionTTL
	}
	return &implUseCase{
		l:        l,
		factory:  factory,
		projects: projects,
		notes:    notes,
		sessions: expirable.NewLRU[string, *conversation](opt.MaxSessions, nil, opt.SessionTTL),
	}
}
