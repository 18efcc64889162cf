package orchestrator

import (
	"context"

	"executive-assistant/internal/model"
	"executive-assistant/pkg/llmprovider"
)

func (o *Orchestrator) handleSmallTalk(ctx context.Context, utterance string) string {
	var msgs []llmprovider.Message
	if o.memory != nil {
		for _, t := range o.memory.Window(o.opt.Memory.ContextTurns) {
			role := llmprovider.RoleUser
			if t.Role == model.RoleAssistant {
				role = llmprovider.RoleAssistant
			}
			msgs = append(msgs, llmprovider.NewTextMessage(role, t.Content))
		}
	}
	msgs = append(msgs, llmprovider.NewTextMessage(llmprovider.RoleUser, utterance))

	resp, err := o.deps.LLM.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: o.persona(),
		Messages:          msgs,
		Temperature:       SmallTalkTemperature,
	})
	if err != nil {
		o.l.Warnf(ctx, "%s: generate: %v", LogPrefixSmallTalk, err)
		return ReplySmallTalkDefault
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return ReplySmallTalkDefault
}
