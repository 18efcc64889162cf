package report

import (
	"context"
	"fmt"
	"sort"
)

func (uc *implUseCase) Build(ctx context.Context) (Digest, error) {
	now := uc.opt.Now().In(uc.dates.Location())
	monday, friday := uc.dates.WorkWeek(now)

	d := Digest{GeneratedAt: now, WeekStart: monday, WeekEnd: friday}

	for _, p := range uc.projects.Snapshot().All() {
		var late []OverdueTask
		for _, t := range p.Tasks {
			if !t.IsOpen() {
				continue
			}
			due, err := uc.dates.ParseDate(t.EndDate)
			if err != nil || due.After(friday) {
				continue
			}
			late = append(late, OverdueTask{
				Name:     t.Name,
				Due:      due,
				DaysLate: uc.dates.DaysBetween(due, now),
			})
		}
		if len(late) == 0 {
			continue
		}
		sort.SliceStable(late, func(i, j int) bool { return late[i].Due.Before(late[j].Due) })
		d.Overdue = append(d.Overdue, OverdueProject{Name: p.Name, Tasks: late})
	}

	if uc.progress != nil {
		cmp, err := uc.progress.Compare(ctx)
		if err != nil {
			return d, fmt.Errorf("report.Build: %w", err)
		}
		d.Stagnant = cmp.Stagnant
		d.Evolved = cmp.Evolved
	}

	uc.l.Infof(ctx, "report.Build: %d overdue tasks, %d stagnant, %d evolved",
		d.OverdueCount(), len(d.Stagnant), len(d.Evolved))
	return d, nil
}
