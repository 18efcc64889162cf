package gate

import (
	"fmt"
	"strings"

	"executive-assistant/internal/agent"
)

// State of the confirmation gate.
type State int

const (
	StateIdle State = iota
	StateAwaitingConfirmation
)

func (s State) String() string {
	if s == StateAwaitingConfirmation {
		return "AWAITING_CONFIRMATION"
	}
	return "IDLE"
}

// Decision is the outcome of scanning a reply while a PendingAction is held.
type Decision int

const (
	Undecided Decision = iota
	Confirmed
	Cancelled
)

// Replies
const (
	ReplyCancelled = "Ação cancelada, senhor."
	ReplyReprompt  = "⚠️ Ação pendente! Por favor, responda 'Sim' para executar ou 'Não' para cancelar."
)

var (
	DefaultAffirmative = []string{"sim", "pode", "manda", "vai", "confirmo", "ok"}
	DefaultNegative    = []string{"não", "nao", "cancela", "parar", "abortar"}
)

// Gate holds at most one PendingAction and decides its fate from the next
// utterance. Not safe for concurrent use.
type Gate struct {
	state       State
	pending     *agent.Descriptor
	affirmative []string
	negative    []string
}

// New creates a gate with the default keyword sets.
func New() *Gate {
	return NewWithKeywords(DefaultAffirmative, DefaultNegative)
}

// NewWithKeywords creates a gate with custom keyword sets.
func NewWithKeywords(affirmative, negative []string) *Gate {
	return &Gate{
		affirmative: lowerAll(affirmative),
		negative:    lowerAll(negative),
	}
}

// Arm stores desc as the PendingAction, replacing any previous one.
func (g *Gate) Arm(desc agent.Descriptor) {
	d := desc.Clone()
	g.pending = &d
	g.state = StateAwaitingConfirmation
}

// Decide scans utterance for a confirmation keyword. The negative set wins
// when both match. Confirmed and Cancelled return to Idle; Confirmed also
// hands back the action to run. Undecided leaves the gate untouched.
func (g *Gate) Decide(utterance string) (Decision, *agent.Descriptor) {
	if g.state != StateAwaitingConfirmation {
		return Undecided, nil
	}

	text := strings.ToLower(utterance)
	switch {
	case containsAny(text, g.negative):
		g.Reset()
		return Cancelled, nil
	case containsAny(text, g.affirmative):
		action := g.pending
		g.Reset()
		return Confirmed, action
	default:
		return Undecided, nil
	}
}

// IsNegative reports whether utterance contains a negative keyword.
func (g *Gate) IsNegative(utterance string) bool {
	return containsAny(strings.ToLower(utterance), g.negative)
}

// Reset drops the PendingAction and returns to Idle.
func (g *Gate) Reset() {
	g.pending = nil
	g.state = StateIdle
}

// State returns the current state.
func (g *Gate) State() State {
	return g.state
}

// Pending returns a copy of the held action, or nil.
func (g *Gate) Pending() *agent.Descriptor {
	if g.pending == nil {
		return nil
	}
	d := g.pending.Clone()
	return &d
}

// Summary renders the confirmation prompt for desc.
func Summary(desc agent.Descriptor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "⏳ Preparando para executar: '%s'.\nParâmetros:\n", desc.Tool)
	for _, k := range desc.SortedKeys() {
		fmt.Fprintf(&sb, "- %s: %v\n", k, desc.Params[k])
	}
	sb.WriteString("\nDevo prosseguir?")
	return sb.String()
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
