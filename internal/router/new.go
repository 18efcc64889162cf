package router

import (
	"context"
	"sort"
	"time"

	"executive-assistant/internal/project"
	"executive-assistant/pkg/llmprovider"
	"executive-assistant/pkg/log"
)

// Router classifies an utterance given the recent history lines.
// Implementations: SemanticRouter (model based) and KeywordRouter (heuristic).
type Router interface {
	Classify(ctx context.Context, utterance string, history []string) (Output, error)
}

// SemanticRouter classifies user intent using the generative model.
type SemanticRouter struct {
	llm      llmprovider.Generator
	l        log.Logger
	attempts int
	delay    time.Duration
}

var _ Router = (*SemanticRouter)(nil)

// Options tunes the retry budget. Zero values use the defaults; a negative
// RetryDelay retries immediately.
type Options struct {
	Attempts   int
	RetryDelay time.Duration
}

// New creates a new SemanticRouter
func New(llm llmprovider.Generator, l log.Logger, opt Options) *SemanticRouter {
	if opt.Attempts <= 0 {
		opt.Attempts = DefaultAttempts
	}
	switch {
	case opt.RetryDelay == 0:
		opt.RetryDelay = DefaultRetryDelay
	case opt.RetryDelay < 0:
		opt.RetryDelay = 0
	}
	return &SemanticRouter{
		llm:      llm,
		l:        l,
		attempts: opt.Attempts,
		delay:    opt.RetryDelay,
	}
}

// KeywordRouter is the heuristic classifier. It never calls a model and never fails.
type KeywordRouter struct {
	resolver       *project.Resolver
	writeTriggers  []string
	globalTriggers []string
	actionTriggers map[string]string
	// actionOrder lists the action triggers longest first, ties alphabetical.
	actionOrder []string
	l           log.Logger
}

var _ Router = (*KeywordRouter)(nil)

// NewKeyword creates a KeywordRouter over the resolver's projects.
func NewKeyword(resolver *project.Resolver, l log.Logger) *KeywordRouter {
	actions := make(map[string]string, len(DefaultActionTriggers))
	order := make([]string, 0, len(DefaultActionTriggers))
	for k, v := range DefaultActionTriggers {
		n := project.Normalize(k)
		if _, dup := actions[n]; !dup {
			order = append(order, n)
		}
		actions[n] = v
	}
	sort.Slice(order, func(i, j int) bool {
		if len(order[i]) != len(order[j]) {
			return len(order[i]) > len(order[j])
		}
		return order[i] < order[j]
	})
	return &KeywordRouter{
		resolver:       resolver,
		writeTriggers:  normalizeAll(DefaultWriteTriggers),
		globalTriggers: normalizeAll(DefaultGlobalTriggers),
		actionTriggers: actions,
		actionOrder:    order,
		l:              l,
	}
}

func normalizeAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = project.Normalize(s)
	}
	return out
}
