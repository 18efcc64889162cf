package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Project is one tracker project as held in the read-only snapshot.
type Project struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	PercentComplete float64           `json:"percent_complete"`
	Status          string            `json:"status,omitempty"`
	CustomFields    map[string]string `json:"custom_fields,omitempty"`
	Tasks           []Task            `json:"tasks,omitempty"`
}

// Task is one tracker task. EndDate keeps the tracker's textual date.
type Task struct {
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Percent   float64 `json:"percent"`
	EndDate   string  `json:"end_date,omitempty"`
	Priority  string  `json:"priority,omitempty"`
	TaskList  string  `json:"tasklist,omitempty"`
	Milestone string  `json:"milestone,omitempty"`
}

var closedTaskStatuses = map[string]bool{
	"completed":  true,
	"concluído":  true,
	"concluido":  true,
	"cancelled":  true,
	"cancelado":  true,
	"fechado":    true,
	"closed":     true,
	"finalizado": true,
}

// IsOpen reports whether the task still counts as pending work.
func (t Task) IsOpen() bool {
	return !closedTaskStatuses[strings.ToLower(strings.TrimSpace(t.Status))]
}

// CurrentPhase is the task list of the first open task, or "Indefinida".
func (p Project) CurrentPhase() string {
	for _, t := range p.Tasks {
		if t.IsOpen() {
			if t.TaskList == "" {
				return "Geral"
			}
			return t.TaskList
		}
	}
	return "Indefinida"
}

// Trackers emit ids as large integers and percentages as either numbers or
// strings, so both fields are decoded leniently.
func (p *Project) UnmarshalJSON(data []byte) error {
	type alias Project
	var raw struct {
		alias
		ID              json.RawMessage `json:"id"`
		PercentComplete json.RawMessage `json:"percent_complete"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Project(raw.alias)

	id, err := flexString(raw.ID)
	if err != nil {
		return fmt.Errorf("project id: %w", err)
	}
	p.ID = id

	pct, err := flexFloat(raw.PercentComplete)
	if err != nil {
		return fmt.Errorf("project %s percent_complete: %w", p.ID, err)
	}
	p.PercentComplete = pct
	return nil
}

func (t *Task) UnmarshalJSON(data []byte) error {
	type alias Task
	var raw struct {
		alias
		Percent json.RawMessage `json:"percent"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Task(raw.alias)

	pct, err := flexFloat(raw.Percent)
	if err != nil {
		return fmt.Errorf("task %q percent: %w", t.Name, err)
	}
	t.Percent = pct
	return nil
}

func flexString(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func flexFloat(raw json.RawMessage) (float64, error) {
	s, err := flexString(raw)
	if err != nil || s == "" {
		return 0, err
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
