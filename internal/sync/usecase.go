package sync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"executive-assistant/internal/model"
	"executive-assistant/internal/project"
	"executive-assistant/pkg/zoho"
)

func (uc *implUseCase) Sync(ctx context.Context) (SyncOutput, error) {
	if uc.opt.OutputPath == "" {
		return SyncOutput{}, ErrNoOutputPath
	}
	if !uc.running.CompareAndSwap(false, true) {
		return SyncOutput{}, ErrSyncInProgress
	}
	defer uc.running.Store(false)

	start := time.Now()
	out := SyncOutput{Path: uc.opt.OutputPath}

	var all []zoho.Project
	err := uc.retry(ctx, "list projects", func() error {
		var err error
		all, err = uc.source.ListProjects(ctx)
		return err
	})
	if err != nil {
		return out, err
	}
	out.Fetched = len(all)

	var active []zoho.Project
	for _, p := range all {
		if uc.opt.OwnerID != "" && string(p.OwnerID) != uc.opt.OwnerID {
			continue
		}
		if uc.blocked[project.Normalize(p.CustomStatusName)] {
			uc.l.Infof(ctx, "sync.Sync: skipping %q (%s)", p.Name, p.CustomStatusName)
			out.Skipped = append(out.Skipped, p.Name)
			continue
		}
		active = append(active, p)
	}
	uc.l.Infof(ctx, "sync.Sync: %d of %d projects are active and owned", len(active), len(all))

	projects := make([]model.Project, len(active))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.opt.Concurrency)
	for i, p := range active {
		g.Go(func() error {
			var tasks []zoho.Task
			err := uc.retry(gctx, "list tasks of "+p.Name, func() error {
				var err error
				tasks, err = uc.source.ListTasks(gctx, string(p.ID))
				return err
			})
			if err != nil {
				return err
			}
			projects[i] = toProject(p, tasks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	snap, err := project.NewSnapshot(projects)
	if err != nil {
		return out, fmt.Errorf("sync.Sync: %w", err)
	}
	if err := writeJSONAtomic(uc.opt.OutputPath, projects); err != nil {
		return out, fmt.Errorf("sync.Sync: write snapshot: %w", err)
	}
	if uc.opt.Store != nil {
		uc.opt.Store.Replace(snap)
	}

	out.Kept = len(projects)
	out.Duration = time.Since(start)
	uc.l.Infof(ctx, "sync.Sync: wrote %d projects to %s in %s", out.Kept, out.Path, out.Duration)
	return out, nil
}

// retry runs fn up to RetryAttempts times with a linear backoff. Client
// errors of the API are not retried.
func (uc *implUseCase) retry(ctx context.Context, what string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < uc.opt.RetryAttempts; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, time.Duration(attempt)*uc.opt.RetryDelay); err != nil {
				return err
			}
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		var apiErr *zoho.APIError
		if errors.As(lastErr, &apiErr) && !apiErr.Retryable() {
			break
		}
		uc.l.Warnf(ctx, "sync: %s failed (attempt %d/%d): %v", what, attempt+1, uc.opt.RetryAttempts, lastErr)
	}
	return fmt.Errorf("sync: %s: %w", what, lastErr)
}

func toProject(p zoho.Project, tasks []zoho.Task) model.Project {
	status := strings.TrimSpace(p.CustomStatusName)
	if status == "" {
		status = DefaultStatus
	}
	out := model.Project{
		ID:              string(p.ID),
		Name:            p.Name,
		PercentComplete: p.Percent(),
		Status:          status,
		Tasks:           make([]model.Task, 0, len(tasks)),
	}
	for _, t := range tasks {
		priority := t.Priority
		if priority == "" {
			priority = defaultTaskPriority
		}
		out.Tasks = append(out.Tasks, model.Task{
			Name:      t.Name,
			Status:    t.Status.NameOr(defaultTaskStatus),
			Percent:   t.PercentComplete.Float(),
			EndDate:   t.EndDate,
			Priority:  priority,
			TaskList:  t.TaskList.NameOr(defaultTaskList),
			Milestone: t.Milestone.NameOr(defaultTaskMilestone),
		})
	}
	return out
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
