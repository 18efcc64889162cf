package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"executive-assistant/pkg/llmprovider"
)

// Classify asks the model for a category. Transport errors, empty replies,
// malformed JSON and unknown categories are retried; once the budget is spent
// the result is SYSTEM_ERROR together with ErrClassificationFailed.
func (r *SemanticRouter) Classify(ctx context.Context, utterance string, history []string) (Output, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: llmprovider.RoleSystem, Parts: []llmprovider.Part{{Text: PromptRouterSystem}}},
		Messages:          []llmprovider.Message{llmprovider.NewTextMessage(llmprovider.RoleUser, buildPrompt(utterance, history))},
		Temperature:       RouterTemperature,
		MaxTokens:         routerMaxTokens,
		JSONMode:          true,
	}

	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		out, err := r.classifyOnce(ctx, req)
		if err == nil {
			r.l.Infof(ctx, "%s: classified as %s entities=%v action=%q global=%t",
				LogPrefixSemantic, out.Category, out.MentionedEntities, out.DetectedAction, out.Global)
			return out, nil
		}

		lastErr = err
		r.l.Warnf(ctx, "%s: attempt %d/%d failed: %v", LogPrefixSemantic, attempt, r.attempts, err)
		if attempt == r.attempts {
			break
		}
		if err := sleep(ctx, r.delay); err != nil {
			lastErr = err
			break
		}
	}

	r.l.Errorf(ctx, "%s: giving up: %v", LogPrefixSemantic, lastErr)
	return Output{Category: CategorySystemError}, fmt.Errorf("%w: %w", ErrClassificationFailed, lastErr)
}

func (r *SemanticRouter) classifyOnce(ctx context.Context, req *llmprovider.Request) (Output, error) {
	resp, err := r.llm.GenerateContent(ctx, req)
	if err != nil {
		return Output{}, err
	}
	text := resp.Text()
	if text == "" {
		return Output{}, ErrEmptyResponse
	}

	var raw modelOutput
	if err := llmprovider.DecodeJSON(text, &raw); err != nil {
		return Output{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	label := strings.ToUpper(strings.TrimSpace(firstNonEmpty(raw.Category, raw.Categoria)))
	category, ok := ParseCategory(label)
	if !ok {
		return Output{}, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}

	entities := raw.MentionedEntities
	if len(entities) == 0 {
		entities = raw.ProjetosMencionados
	}
	out := Output{
		Category:          category,
		MentionedEntities: cleanEntities(entities),
		Global:            raw.Global || raw.ConsultaGlobal,
	}
	if a := firstNonNil(raw.DetectedAction, raw.AcaoDetectada); a != nil {
		out.DetectedAction = strings.TrimSpace(*a)
	}
	return out, nil
}

func buildPrompt(utterance string, history []string) string {
	var sb strings.Builder
	if len(history) > 0 {
		sb.WriteString(historyPromptPrefix)
		for i, h := range history {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, h)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(utterancePrefix)
	sb.WriteString(utterance)
	return sb.String()
}

func cleanEntities(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonNil(vals ...*string) *string {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
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

// IsClassificationFailure reports whether err came from an exhausted retry budget.
func IsClassificationFailure(err error) bool {
	return errors.Is(err, ErrClassificationFailed)
}
