package router

import (
	"context"
	"strings"

	"executive-assistant/internal/project"
)

// Classify applies the trigger sets in priority order: write, action,
// global, project mention, small talk.
func (r *KeywordRouter) Classify(ctx context.Context, utterance string, history []string) (Output, error) {
	tokens := project.Tokens(project.Normalize(utterance))
	joined := " " + strings.Join(tokens, " ") + " "

	out := Output{
		Category:          CategorySmallTalk,
		MentionedEntities: r.entities(utterance),
	}

	tool := r.action(tokens, joined)
	switch {
	case matchAny(tokens, joined, r.writeTriggers):
		out.Category = CategoryMemoryWrite
	case tool != "":
		out.Category = CategoryAction
		out.DetectedAction = tool
	case matchAny(tokens, joined, r.globalTriggers):
		out.Category = CategoryDataQuery
		out.Global = true
	case len(out.MentionedEntities) > 0:
		out.Category = CategoryDataQuery
	}

	r.l.Debugf(ctx, "%s: %s entities=%v", LogPrefixKeyword, out.Category, out.MentionedEntities)
	return out, nil
}

// entities returns digit codes and terms that hit at least one project.
func (r *KeywordRouter) entities(utterance string) []string {
	var out []string
	for _, code := range project.DigitTokens(utterance) {
		if len(r.resolver.Lookup(code)) > 0 {
			out = append(out, code)
		}
	}
	return append(out, r.resolver.MatchingTerms(utterance)...)
}

// action returns the tool of the longest matching trigger.
func (r *KeywordRouter) action(tokens []string, joined string) string {
	for _, trigger := range r.actionOrder {
		if matchOne(tokens, joined, trigger) {
			return r.actionTriggers[trigger]
		}
	}
	return ""
}

func matchAny(tokens []string, joined string, triggers []string) bool {
	for _, t := range triggers {
		if matchOne(tokens, joined, t) {
			return true
		}
	}
	return false
}

func matchOne(tokens []string, joined, trigger string) bool {
	if strings.Contains(trigger, " ") {
		return strings.Contains(joined, " "+trigger+" ")
	}
	for _, tok := range tokens {
		if strings.HasPrefix(tok, trigger) {
			return true
		}
	}
	return false
}
