package orchestrator

import (
	"context"
	"fmt"

	"executive-assistant/internal/model"
	"executive-assistant/internal/note/repository"
	"executive-assistant/internal/project"
	"executive-assistant/internal/router"
	"executive-assistant/pkg/llmprovider"
)

// handleMemoryWrite stores a note on exactly one project. With zero or
// several candidates the extracted note is parked until the next utterance
// names the project.
func (o *Orchestrator) handleMemoryWrite(ctx context.Context, utterance string, out router.Output) string {
	targets, ambiguous := o.resolveTargets(utterance, out.MentionedEntities)
	if len(ambiguous) == 0 && len(targets) > 1 {
		ambiguous = targets
	}

	switch {
	case len(ambiguous) > 0:
		o.pendingNote = o.extractNote(ctx, utterance, ambiguousContextLabel)
		o.l.Infof(ctx, "%s: %d candidates, note parked", LogPrefixMemoryWrite, len(ambiguous))
		return fmt.Sprintf(ReplyWhichOne, listNames(ambiguous))
	case len(targets) == 0:
		o.pendingNote = o.extractNote(ctx, utterance, "")
		o.l.Infof(ctx, "%s: no project, note parked", LogPrefixMemoryWrite)
		return ReplyWhichProject
	}

	p := targets[0]
	return o.saveNote(ctx, p, o.extractNote(ctx, utterance, p.Name))
}

// handlePendingNote resolves the parked note from the follow-up utterance.
// Digits are matched first, then keywords when the reply has no digits.
func (o *Orchestrator) handlePendingNote(ctx context.Context, utterance string) string {
	note := o.pendingNote

	if o.gate.IsNegative(utterance) {
		o.pendingNote = ""
		o.l.Infof(ctx, "%s: discarded by user", LogPrefixPendingNote)
		return ReplyNoteCancelled
	}

	r := o.deps.Resolver
	codes := project.DigitTokens(utterance)
	var candidates []model.Project
	if len(codes) > 0 {
		candidates = r.ResolveCode(utterance)
	} else {
		candidates = r.Search(utterance)
	}
	if len(candidates) > 1 {
		for _, code := range codes {
			if narrowed := project.NarrowByToken(candidates, code); len(narrowed) == 1 {
				candidates = narrowed
				break
			}
		}
	}

	switch len(candidates) {
	case 0:
		o.pendingNote = ""
		o.l.Warnf(ctx, "%s: code not recognised, note discarded", LogPrefixPendingNote)
		return ReplyNoteUnrecognized
	case 1:
		o.pendingNote = ""
		return o.saveNote(ctx, candidates[0], note)
	default:
		return fmt.Sprintf(ReplyStillAmbiguous, listNames(candidates))
	}
}

func (o *Orchestrator) saveNote(ctx context.Context, p model.Project, text string) string {
	_, err := o.deps.Notes.Append(ctx, repository.AppendOptions{
		ProjectID:   p.ID,
		ProjectName: p.Name,
		Text:        text,
	})
	if err != nil {
		o.l.Errorf(ctx, "%s: append note to %s: %v", LogPrefixMemoryWrite, p.ID, err)
		return fmt.Sprintf(ReplyNoteFailed, err)
	}
	o.ensureFolders(ctx, []model.Project{p})
	o.l.Infof(ctx, "%s: note saved to %s", LogPrefixMemoryWrite, p.ID)
	return fmt.Sprintf(ReplyNoteSaved, p.Name)
}

// extractNote asks the model for the bare fact to store, falling back to
// the utterance itself.
func (o *Orchestrator) extractNote(ctx context.Context, utterance, projectLabel string) string {
	resp, err := o.deps.LLM.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.NewTextMessage(llmprovider.RoleUser, fmt.Sprintf(promptNoteExtract, utterance, projectLabel))},
		Temperature: NoteExtractTemperature,
		MaxTokens:   noteExtractMaxTokens,
	})
	if err != nil {
		o.l.Warnf(ctx, "%s: extract note: %v", LogPrefixMemoryWrite, err)
		return utterance
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return utterance
}
