package datemath

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Parser interprets tracker dates and calendar ranges in one timezone.
type Parser struct {
	location *time.Location
	layouts  []string
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "America/Sao_Paulo".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, layouts: TrackerLayouts}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDate reads a tracker date as the start of that day.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range p.layouts {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// WorkWeek returns Monday 00:00 and Friday 23:59:59 of the week of baseTime.
// On weekends it is the week that just ended.
func (p *Parser) WorkWeek(baseTime time.Time) (monday, friday time.Time) {
	day := p.StartOfDay(baseTime)
	offset := (int(day.Weekday()) + 6) % 7
	monday = day.AddDate(0, 0, -offset)
	friday = p.EndOfDay(monday.AddDate(0, 0, 4))
	return monday, friday
}

// DaysBetween counts calendar days from a to b; negative when b is earlier.
func (p *Parser) DaysBetween(a, b time.Time) int {
	a, b = p.StartOfDay(a), p.StartOfDay(b)
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
