package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"executive-assistant/internal/model"
	"executive-assistant/internal/project"
	"executive-assistant/internal/router"
	"executive-assistant/pkg/llmprovider"
)

// handleDataQuery answers a question about projects from the snapshot and
// the manager's notes.
func (o *Orchestrator) handleDataQuery(ctx context.Context, utterance string, out router.Output) string {
	var projectsBlock string

	if out.Global {
		entries := o.helicopterView(ctx)
		projectsBlock = promptProjectsHeader + mustJSON(entries) + "\n"
	} else {
		targets, ambiguous := o.resolveTargets(utterance, out.MentionedEntities)
		if len(ambiguous) > 0 {
			return fmt.Sprintf(ReplyWhichOne, listNames(ambiguous))
		}

		mentioned := len(out.MentionedEntities) > 0
		switch {
		case len(targets) == 0 && !mentioned:
			targets = o.deps.Resolver.Snapshot().First(o.opt.DataQueryLimit)
		case len(targets) > o.opt.DataQueryLimit:
			targets = targets[:o.opt.DataQueryLimit]
		}

		if len(targets) == 0 {
			projectsBlock = fmt.Sprintf(promptNoProjects, strings.Join(out.MentionedEntities, ", "))
		} else {
			o.ensureFolders(ctx, targets)
			projectsBlock = promptProjectsHeader + mustJSON(o.enrich(ctx, targets)) + "\n"
		}
	}

	prompt := o.conversationContext() + projectsBlock + promptRequestHeader + utterance + promptDataQueryRules
	resp, err := o.deps.LLM.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: o.persona(),
		Messages:          []llmprovider.Message{llmprovider.NewTextMessage(llmprovider.RoleUser, prompt)},
		Temperature:       DataQueryTemperature,
	})
	if err != nil {
		o.l.Errorf(ctx, "%s: generate: %v", LogPrefixDataQuery, err)
		return ReplySystemError
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return ReplyDataQueryEmpty
}

// resolveTargets maps the utterance onto projects. Bare numeric codes win
// over names. A single mention or code hitting several projects is returned
// as ambiguous.
func (o *Orchestrator) resolveTargets(utterance string, mentions []string) (targets, ambiguous []model.Project) {
	r := o.deps.Resolver

	if codes := project.DigitTokens(utterance); len(codes) > 0 {
		byCode := r.ResolveCode(utterance)
		for _, code := range codes {
			if narrowed := project.NarrowByToken(byCode, code); len(narrowed) == 1 {
				return narrowed, nil
			}
		}
		switch len(byCode) {
		case 0:
		case 1:
			return byCode, nil
		default:
			return nil, byCode
		}
	}

	if len(mentions) == 0 {
		found := r.Search(utterance)
		if len(found) > 1 {
			return nil, found
		}
		return found, nil
	}

	for _, m := range mentions {
		if matches := r.Lookup(m); len(matches) > 1 {
			return nil, matches
		}
	}
	return r.Resolve(mentions), nil
}

func (o *Orchestrator) enrich(ctx context.Context, projects []model.Project) []projectBrief {
	out := make([]projectBrief, 0, len(projects))
	for _, p := range projects {
		b := projectBrief{
			ID:              p.ID,
			Name:            p.Name,
			PercentComplete: p.PercentComplete,
			Status:          p.Status,
			Phase:           p.CurrentPhase(),
			CustomFields:    p.CustomFields,
			Notes:           o.notesFor(ctx, p.ID),
		}
		for _, t := range p.Tasks {
			if len(b.OpenTasks) == maxOpenTasksPerProject {
				break
			}
			if t.IsOpen() {
				b.OpenTasks = append(b.OpenTasks, taskBrief{Name: t.Name, EndDate: t.EndDate})
			}
		}
		out = append(out, b)
	}
	return out
}

func (o *Orchestrator) helicopterView(ctx context.Context) []helicopterEntry {
	projects := o.deps.Resolver.Snapshot().First(o.opt.HelicopterLimit)
	out := make([]helicopterEntry, 0, len(projects))
	for _, p := range projects {
		out = append(out, helicopterEntry{
			ID:      p.ID,
			Name:    p.Name,
			Percent: p.PercentComplete,
			Phase:   p.CurrentPhase(),
			Notes:   o.notesFor(ctx, p.ID),
		})
	}
	return out
}

func (o *Orchestrator) notesFor(ctx context.Context, projectID string) []string {
	notes, err := o.deps.Notes.ReadAll(ctx, projectID)
	if err != nil {
		o.l.Warnf(ctx, "%s: read notes of %s: %v", LogPrefixDataQuery, projectID, err)
		return []string{}
	}
	if notes == nil {
		return []string{}
	}
	return notes
}

func (o *Orchestrator) ensureFolders(ctx context.Context, projects []model.Project) {
	if o.deps.Folders == nil {
		return
	}
	for _, p := range projects {
		if _, err := o.deps.Folders.Ensure(p.Name); err != nil {
			o.l.Warnf(ctx, "%s: ensure folder for %s: %v", LogPrefixDataQuery, p.Name, err)
		}
	}
}

func (o *Orchestrator) persona() *llmprovider.Message {
	text := fmt.Sprintf(promptPersona, o.opt.AssistantName, o.opt.UserName, buildTimeContext(o.opt.Now(), o.opt.Location))
	return &llmprovider.Message{Role: llmprovider.RoleSystem, Parts: []llmprovider.Part{{Text: text}}}
}

func listNames(projects []model.Project) string {
	lines := make([]string, len(projects))
	for i, p := range projects {
		lines[i] = "- " + p.Name
	}
	return strings.Join(lines, "\n")
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
