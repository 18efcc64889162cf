package orchestrator

import (
	"context"
	"time"

	"executive-assistant/internal/agent/gate"
	"executive-assistant/internal/model"
	"executive-assistant/internal/router"
	"executive-assistant/pkg/log"

	"github.com/google/uuid"
)

// Handle runs one utterance through the pipeline and returns the reply.
// It never fails: every error path ends in a conversational reply.
func (o *Orchestrator) Handle(ctx context.Context, utterance string) string {
	if log.TraceID(ctx) == "" {
		ctx = log.WithTraceID(ctx, uuid.NewString())
	}
	start := o.opt.Now()

	o.remember(model.RoleUser, utterance)

	stage := "gate"
	var reply string
	switch {
	case o.gate.State() == gate.StateAwaitingConfirmation:
		reply = o.handleGate(ctx, utterance)
	case o.pendingNote != "":
		stage = "pending_note"
		reply = o.handlePendingNote(ctx, utterance)
	default:
		var category router.Category
		category, reply = o.route(ctx, utterance)
		stage = string(category)
	}

	o.remember(model.RoleAssistant, reply)
	o.trace(ctx, stage, utterance, time.Since(start))
	return reply
}

func (o *Orchestrator) route(ctx context.Context, utterance string) (router.Category, string) {
	out, err := o.deps.Router.Classify(ctx, utterance, o.history())
	if err != nil || out.Category == router.CategorySystemError {
		if router.IsClassificationFailure(err) {
			o.l.Warnf(ctx, "%s: router retry budget exhausted: %v", LogPrefixHandle, err)
		} else {
			o.l.Errorf(ctx, "%s: classification failed: %v", LogPrefixHandle, err)
		}
		return router.CategorySystemError, ReplySystemError
	}

	switch out.Category {
	case router.CategoryAction:
		return out.Category, o.handleAction(ctx, utterance)
	case router.CategoryDataQuery:
		return out.Category, o.handleDataQuery(ctx, utterance, out)
	case router.CategoryMemoryWrite:
		return out.Category, o.handleMemoryWrite(ctx, utterance, out)
	default:
		return router.CategorySmallTalk, o.handleSmallTalk(ctx, utterance)
	}
}

// handleGate resolves a held action. No other routing happens while the
// gate is armed.
func (o *Orchestrator) handleGate(ctx context.Context, utterance string) string {
	decision, action := o.gate.Decide(utterance)
	switch decision {
	case gate.Confirmed:
		o.l.Infof(ctx, "%s: confirmed %s", LogPrefixHandle, action.Tool)
		return o.deps.Dispatcher.Execute(ctx, *action)
	case gate.Cancelled:
		o.l.Infof(ctx, "%s: pending action cancelled", LogPrefixHandle)
		return gate.ReplyCancelled
	default:
		return gate.ReplyReprompt
	}
}

// ClearHistory drops the conversation memory. Pending state is kept.
func (o *Orchestrator) ClearHistory() {
	if o.memory != nil {
		o.memory.Clear()
	}
}

// Snapshot returns the current dialogue state.
func (o *Orchestrator) Snapshot() Snapshot {
	s := Snapshot{
		GateState:     o.gate.State().String(),
		PendingAction: o.gate.Pending(),
		PendingNote:   o.pendingNote,
	}
	if o.memory != nil {
		s.Turns = o.memory.Len()
	}
	return s
}

// History returns a copy of the stored turns, oldest first.
func (o *Orchestrator) History() []model.Turn {
	if o.memory == nil {
		return nil
	}
	return o.memory.Turns()
}

func (o *Orchestrator) remember(role model.Role, text string) {
	if o.memory != nil {
		o.memory.Append(role, text)
	}
}

func (o *Orchestrator) history() []string {
	if o.memory == nil {
		return nil
	}
	return o.memory.History()
}

func (o *Orchestrator) conversationContext() string {
	if o.memory == nil {
		return ""
	}
	return o.memory.Context()
}

func (o *Orchestrator) trace(ctx context.Context, stage, utterance string, took time.Duration) {
	if !o.opt.StructuredLogging {
		return
	}
	snap := o.Snapshot()
	o.l.Infof(ctx, "%s: stage=%s gate=%s pending_note=%t turns=%d took=%s utterance=%q",
		LogPrefixHandle, stage, snap.GateState, snap.PendingNote != "", snap.Turns, took, utterance)
}
