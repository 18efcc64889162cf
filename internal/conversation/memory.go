package conversation

import (
	"fmt"
	"strings"
	"time"

	"executive-assistant/internal/model"
)

const (
	DefaultMaxTurns     = 20
	DefaultContextTurns = 6
	DefaultContextChars = 250

	contextHeader = "[CONTEXTO RECENTE]"
	contextFooter = "[FIM DO CONTEXTO]"
	timeLayout    = "15:04:05"
)

// Options configures a Memory.
type Options struct {
	MaxTurns       int
	ContextTurns   int
	ContextChars   int
	UserLabel      string
	AssistantLabel string
	Now            func() time.Time
}

// Memory is a bounded conversation log owned by a single orchestrator.
// It is not safe for concurrent use.
type Memory struct {
	opt   Options
	turns []model.Turn
}

// New creates an empty memory, filling zero options with defaults.
func New(opt Options) *Memory {
	if opt.MaxTurns <= 0 {
		opt.MaxTurns = DefaultMaxTurns
	}
	if opt.MaxTurns%2 != 0 {
		opt.MaxTurns++
	}
	if opt.ContextTurns <= 0 {
		opt.ContextTurns = DefaultContextTurns
	}
	if opt.ContextChars <= 0 {
		opt.ContextChars = DefaultContextChars
	}
	if opt.UserLabel == "" {
		opt.UserLabel = "GESTOR"
	}
	if opt.AssistantLabel == "" {
		opt.AssistantLabel = "APEX"
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &Memory{opt: opt}
}

// Append records a turn and truncates the oldest entries beyond MaxTurns.
// Truncation never leaves an assistant turn at the head of the log.
func (m *Memory) Append(role model.Role, content string) {
	m.turns = append(m.turns, model.Turn{Role: role, Content: content, Timestamp: m.opt.Now()})
	if len(m.turns) <= m.opt.MaxTurns {
		return
	}
	drop := len(m.turns) - m.opt.MaxTurns
	for drop < len(m.turns) && m.turns[drop].Role == model.RoleAssistant {
		drop++
	}
	m.turns = append([]model.Turn(nil), m.turns[drop:]...)
}

// Clear drops the whole log.
func (m *Memory) Clear() {
	m.turns = nil
}

func (m *Memory) Len() int {
	return len(m.turns)
}

// Turns returns a copy of the full log.
func (m *Memory) Turns() []model.Turn {
	return append([]model.Turn(nil), m.turns...)
}

// Window returns at most k turns made of the most recent complete
// user/assistant pairs, oldest first. k is rounded down to an even number.
func (m *Memory) Window(k int) []model.Turn {
	pairs := k / 2
	if pairs <= 0 {
		return nil
	}

	var out []model.Turn
	for i := len(m.turns) - 1; i > 0 && len(out)/2 < pairs; i-- {
		if m.turns[i].Role == model.RoleAssistant && m.turns[i-1].Role == model.RoleUser {
			out = append(out, m.turns[i], m.turns[i-1])
			i--
		}
	}

	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out
}

// Context renders the configured window as a labelled block, or "" when
// there is no completed exchange yet.
func (m *Memory) Context() string {
	window := m.Window(m.opt.ContextTurns)
	if len(window) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(contextHeader)
	sb.WriteByte('\n')
	for _, t := range window {
		fmt.Fprintf(&sb, "[%s] %s: %s\n", t.Timestamp.Format(timeLayout), m.label(t.Role), truncate(t.Content, m.opt.ContextChars))
	}
	sb.WriteString(contextFooter)
	sb.WriteByte('\n')
	return sb.String()
}

// History renders the configured window as "LABEL: text" lines for routing.
func (m *Memory) History() []string {
	window := m.Window(m.opt.ContextTurns)
	out := make([]string, len(window))
	for i, t := range window {
		out[i] = m.label(t.Role) + ": " + truncate(t.Content, m.opt.ContextChars)
	}
	return out
}

func (m *Memory) label(r model.Role) string {
	if r == model.RoleAssistant {
		return m.opt.AssistantLabel
	}
	return m.opt.UserLabel
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
