package orchestrator

import (
	"fmt"
	"time"
)

// Date formats
const (
	DateFormatISO = "2006-01-02"
	ClockFormat   = "15:04"
)

var weekdaysPT = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// buildTimeContext renders the current date, week bounds (Monday-Sunday)
// and tomorrow in loc.
func buildTimeContext(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(DateFormatISO),
		weekdaysPT[now.Weekday()],
		now.Format(ClockFormat),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
		tomorrow.Format(DateFormatISO),
	)
}
