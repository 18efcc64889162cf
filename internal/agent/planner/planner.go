package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"executive-assistant/internal/agent"
	"executive-assistant/pkg/llmprovider"
)

// Plan asks the model for a tool call and validates it against the schema
// table. Transport and parse failures are retried; schema violations
// (unknown tool, missing or mistyped param) are returned immediately.
func (p *Planner) Plan(ctx context.Context, utterance, convContext string) Result {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: llmprovider.RoleSystem, Parts: []llmprovider.Part{{Text: p.system}}},
		Messages:          []llmprovider.Message{llmprovider.NewTextMessage(llmprovider.RoleUser, buildPrompt(utterance, convContext))},
		Temperature:       PlannerTemperature,
		MaxTokens:         plannerMaxTokens,
		JSONMode:          true,
	}

	var lastErr error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		desc, err := p.planOnce(ctx, req)
		if err == nil {
			p.l.Infof(ctx, "%s: planned %s params=%v", LogPrefixPlan, desc.Tool, desc.Params)
			return Result{Descriptor: &desc}
		}
		if isSchemaError(err) {
			p.l.Warnf(ctx, "%s: schema violation: %v", LogPrefixPlan, err)
			return Result{Err: err}
		}

		lastErr = err
		p.l.Warnf(ctx, "%s: attempt %d/%d failed: %v", LogPrefixPlan, attempt, p.attempts, err)
		if attempt == p.attempts {
			break
		}
		if err := sleep(ctx, p.delay); err != nil {
			lastErr = err
			break
		}
	}

	p.l.Errorf(ctx, "%s: giving up: %v", LogPrefixPlan, lastErr)
	return Result{Err: fmt.Errorf("%w: %w", ErrPlanningFailed, lastErr), Retryable: true}
}

func (p *Planner) planOnce(ctx context.Context, req *llmprovider.Request) (agent.Descriptor, error) {
	resp, err := p.llm.GenerateContent(ctx, req)
	if err != nil {
		return agent.Descriptor{}, err
	}
	text := resp.Text()
	if text == "" {
		return agent.Descriptor{}, ErrEmptyResponse
	}

	var raw modelPlan
	if err := llmprovider.DecodeJSON(text, &raw); err != nil {
		return agent.Descriptor{}, err
	}

	tool := raw.Tool
	if tool == "" {
		tool = raw.Ferramenta
	}
	return p.schemas.Validate(agent.Descriptor{Tool: strings.TrimSpace(tool), Params: raw.Params})
}

func isSchemaError(err error) bool {
	return errors.Is(err, agent.ErrUnknownTool) ||
		errors.Is(err, agent.ErrMissingParam) ||
		errors.Is(err, agent.ErrInvalidParam)
}

func buildPrompt(utterance, convContext string) string {
	var sb strings.Builder
	if c := strings.TrimSpace(convContext); c != "" {
		sb.WriteString(contextPromptPrefix)
		sb.WriteString(c)
		sb.WriteString("\n\n")
	}
	sb.WriteString(requestPromptPrefix)
	sb.WriteString(utterance)
	return sb.String()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
