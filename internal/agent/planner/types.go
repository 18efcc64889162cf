package planner

import (
	"time"

	"executive-assistant/internal/agent"
)

// Result is the outcome of one planning call: a validated descriptor or an error.
type Result struct {
	Descriptor *agent.Descriptor
	Err        error
	// Retryable is true when the budget ran out on transport or parse
	// failures rather than on a schema violation.
	Retryable bool
}

// OK reports whether planning produced a descriptor.
func (r Result) OK() bool {
	return r.Err == nil && r.Descriptor != nil
}

// Options tunes the retry budget. Zero values use the defaults; a negative
// RetryDelay retries immediately.
type Options struct {
	Attempts   int
	RetryDelay time.Duration
}

// modelPlan is the JSON the model emits. "ferramenta" is accepted as an
// alias of "tool".
type modelPlan struct {
	Tool       string         `json:"tool"`
	Ferramenta string         `json:"ferramenta"`
	Params     map[string]any `json:"params"`
}
