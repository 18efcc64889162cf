package usecase

import (
	"context"
	"sort"

	"executive-assistant/internal/assistant"
	"executive-assistant/internal/model"
)

// Metrics aggregates completion figures over the current snapshot.
func (uc *implUseCase) Metrics(ctx context.Context) (assistant.MetricsOutput, error) {
	projects := uc.projects.Snapshot().All()

	out := assistant.MetricsOutput{Total: len(projects), Critical: []model.Project{}}
	var sum float64
	for _, p := range projects {
		pct := p.PercentComplete
		sum += pct
		switch {
		case pct >= 100:
			out.Completed++
		case pct <= 0:
			out.NotStarted++
		default:
			out.InProgress++
		}
		if pct < assistant.CriticalPercent {
			out.Critical = append(out.Critical, p)
		}
	}
	if len(projects) > 0 {
		out.AverageCompletion = sum / float64(len(projects))
	}

	sort.SliceStable(out.Critical, func(i, j int) bool {
		return out.Critical[i].PercentComplete < out.Critical[j].PercentComplete
	})
	return out, nil
}
