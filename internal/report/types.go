package report

import (
	"time"

	syncpkg "executive-assistant/internal/sync"
)

// Options configures the digest.
type Options struct {
	// Recipient overrides the mail tool's default recipient.
	Recipient string
	Subject   string
	// ManagerName is how the email addresses its reader.
	ManagerName string
	Now         func() time.Time
}

// RunOptions controls one Run.
type RunOptions struct {
	SendEmail bool
	// RecordHistory stores the current percentages after the digest so the
	// next week compares against this one.
	RecordHistory bool
}

// Digest is the pre-processed weekly data.
type Digest struct {
	GeneratedAt time.Time
	WeekStart   time.Time
	WeekEnd     time.Time
	Overdue     []OverdueProject
	Stagnant    []syncpkg.Stagnant
	Evolved     []syncpkg.Evolution
}

// OverdueCount is the number of overdue tasks across projects.
func (d Digest) OverdueCount() int {
	n := 0
	for _, p := range d.Overdue {
		n += len(p.Tasks)
	}
	return n
}

// OverdueProject groups the overdue tasks of one project.
type OverdueProject struct {
	Name  string
	Tasks []OverdueTask
}

// OverdueTask is an open task due until the end of the work week.
// DaysLate is negative for tasks due later this week.
type OverdueTask struct {
	Name     string
	Due      time.Time
	DaysLate int
}

// Output is the result of Run.
type Output struct {
	Digest Digest
	HTML   string
	Sent   bool
	Result string
}
