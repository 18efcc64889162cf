package zoho

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Config holds the OAuth client and portal settings.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	PortalID     string
	AccountsURL  string
	APIURL       string
	PageSize     int
}

// Project is the subset of a Zoho project the sync job reads.
type Project struct {
	ID               FlexString `json:"id"`
	Name             string     `json:"name"`
	OwnerID          FlexString `json:"owner_id"`
	CustomStatusName string     `json:"custom_status_name"`
	ProjectPercent   FlexString `json:"project_percent"`
	PercentComplete  FlexString `json:"percent_complete"`
}

// Percent prefers project_percent over percent_complete.
func (p Project) Percent() float64 {
	if p.ProjectPercent != "" {
		return p.ProjectPercent.Float()
	}
	return p.PercentComplete.Float()
}

// Task is the subset of a Zoho task the sync job reads.
type Task struct {
	Name            string     `json:"name"`
	Status          *Named     `json:"status"`
	PercentComplete FlexString `json:"percent_complete"`
	EndDate         string     `json:"end_date"`
	Priority        string     `json:"priority"`
	TaskList        *Named     `json:"tasklist"`
	Milestone       *Named     `json:"milestone"`
}

// Named is a nested {"name": ...} reference.
type Named struct {
	Name string `json:"name"`
}

// NameOr returns the name or fallback when the reference is missing.
func (n *Named) NameOr(fallback string) string {
	if n == nil || n.Name == "" {
		return fallback
	}
	return n.Name
}

// FlexString decodes a JSON string or number. Zoho ids exceed float64 precision.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Float parses the value as a percentage; malformed values yield 0.
func (f FlexString) Float() float64 {
	s := strings.TrimSuffix(strings.TrimSpace(string(f)), "%")
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}

type projectsResponse struct {
	Projects []Project `json:"projects"`
}

type tasksResponse struct {
	Tasks []Task `json:"tasks"`
}
