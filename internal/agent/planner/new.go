package planner

import (
	"fmt"
	"time"

	"executive-assistant/internal/agent"
	"executive-assistant/pkg/llmprovider"
	"executive-assistant/pkg/log"
)

// Planner turns an ACTION utterance into a validated tool descriptor.
type Planner struct {
	llm      llmprovider.Generator
	schemas  *agent.SchemaTable
	l        log.Logger
	attempts int
	delay    time.Duration
	system   string
}

// New creates a new Planner over the schema table.
func New(llm llmprovider.Generator, schemas *agent.SchemaTable, l log.Logger, opt Options) *Planner {
	if opt.Attempts <= 0 {
		opt.Attempts = DefaultAttempts
	}
	switch {
	case opt.RetryDelay == 0:
		opt.RetryDelay = DefaultRetryDelay
	case opt.RetryDelay < 0:
		opt.RetryDelay = 0
	}
	return &Planner{
		llm:      llm,
		schemas:  schemas,
		l:        l,
		attempts: opt.Attempts,
		delay:    opt.RetryDelay,
		system:   fmt.Sprintf(promptPlannerSystem, schemas.Describe()),
	}
}
