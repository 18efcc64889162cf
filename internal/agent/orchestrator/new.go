package orchestrator

import (
	"time"

	"executive-assistant/internal/agent/gate"
	"executive-assistant/internal/conversation"
	"executive-assistant/pkg/log"
)

// Orchestrator is the single entry point of one conversation. It owns the
// confirmation gate, the pending-note slot and the conversation memory, and
// is not safe for concurrent use.
type Orchestrator struct {
	deps   Dependencies
	l      log.Logger
	opt    Options
	gate   *gate.Gate
	memory *conversation.Memory

	pendingNote string
}

// New creates a new Orchestrator.
func New(deps Dependencies, l log.Logger, opt Options) *Orchestrator {
	if opt.UserName == "" {
		opt.UserName = "Gestor"
	}
	if opt.AssistantName == "" {
		opt.AssistantName = "Apex"
	}
	if opt.DataQueryLimit <= 0 {
		opt.DataQueryLimit = DefaultDataQueryLimit
	}
	if opt.HelicopterLimit <= 0 {
		opt.HelicopterLimit = DefaultHelicopterLimit
	}
	if opt.Location == nil {
		opt.Location = time.Local
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Memory.ContextTurns <= 0 {
		opt.Memory.ContextTurns = conversation.DefaultContextTurns
	}
	if opt.Memory.Now == nil {
		opt.Memory.Now = opt.Now
	}

	o := &Orchestrator{
		deps: deps,
		l:    l,
		opt:  opt,
		gate: gate.New(),
	}
	if opt.ConversationMemory {
		o.memory = conversation.New(opt.Memory)
	}
	return o
}
