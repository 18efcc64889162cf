package orchestrator

import (
	"context"
	"fmt"

	"executive-assistant/internal/agent/gate"
)

// handleAction plans a tool call and arms the gate. Nothing runs until the
// user confirms.
func (o *Orchestrator) handleAction(ctx context.Context, utterance string) string {
	res := o.deps.Planner.Plan(ctx, utterance, o.conversationContext())
	if !res.OK() {
		o.l.Warnf(ctx, "%s: planning failed: %v", LogPrefixAction, res.Err)
		if res.Retryable {
			return ReplySystemError
		}
		return fmt.Sprintf(ReplyActionUnformable, res.Err)
	}

	o.gate.Arm(*res.Descriptor)
	return gate.Summary(*res.Descriptor)
}
