package session

import (
	"strings"
	"time"
	"unicode"

	"executive-assistant/internal/project"
)

// State of the wake-word gate.
type State int

const (
	Standby State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "ACTIVE"
	}
	return "STANDBY"
}

// Action tells the loop what to do with an observed utterance.
type Action int

const (
	Ignore Action = iota
	Prompt
	Forward
	Exit
)

// Outcome is the result of Observe. Utterance is the command to forward,
// with the wake word removed.
type Outcome struct {
	Action    Action
	Utterance string
}

// TimerOptions configures a Timer.
type TimerOptions struct {
	WakeWord  string
	Timeout   time.Duration
	ExitWords []string
	// Continuous keeps the session active between commands. When false every
	// command needs the wake word again.
	Continuous bool
	Now        func() time.Time
}

// Timer gates utterances behind a wake word and expires an idle session.
// Not safe for concurrent use.
type Timer struct {
	opt        TimerOptions
	exitWords  map[string]bool
	state      State
	lastActive time.Time
}

// NewTimer creates a timer in Standby.
func NewTimer(opt TimerOptions) *Timer {
	if opt.WakeWord == "" {
		opt.WakeWord = DefaultWakeWord
	}
	if opt.Timeout <= 0 {
		opt.Timeout = DefaultTimeout
	}
	if opt.ExitWords == nil {
		opt.ExitWords = DefaultExitWords
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	opt.WakeWord = strings.ToLower(strings.TrimSpace(opt.WakeWord))

	exit := make(map[string]bool, len(opt.ExitWords))
	for _, w := range opt.ExitWords {
		exit[project.Normalize(w)] = true
	}
	return &Timer{opt: opt, exitWords: exit}
}

func (t *Timer) State() State {
	return t.state
}

// Remaining is the time left before an active session expires.
func (t *Timer) Remaining() time.Duration {
	if t.state != Active {
		return 0
	}
	left := t.opt.Timeout - t.opt.Now().Sub(t.lastActive)
	if left < 0 {
		return 0
	}
	return left
}

// Observe classifies one utterance. Exit words end the loop in any state.
func (t *Timer) Observe(utterance string) Outcome {
	if t.isExit(utterance) {
		return Outcome{Action: Exit}
	}
	t.Tick()

	lower := strings.ToLower(strings.TrimSpace(utterance))
	if !strings.Contains(lower, t.opt.WakeWord) {
		if t.state == Active && t.opt.Continuous {
			return Outcome{Action: Forward, Utterance: strings.TrimSpace(utterance)}
		}
		return Outcome{Action: Ignore}
	}

	t.state = Active
	t.lastActive = t.opt.Now()

	rest := t.stripWakeWord(lower)
	if strings.TrimFunc(rest, isFiller) == "" {
		return Outcome{Action: Prompt}
	}
	return Outcome{Action: Forward, Utterance: rest}
}

// Tick expires an idle active session. It is called on empty listen cycles
// and reports whether the session just went back to Standby.
func (t *Timer) Tick() bool {
	if t.state != Active || t.opt.Now().Sub(t.lastActive) <= t.opt.Timeout {
		return false
	}
	t.state = Standby
	return true
}

// Touch marks the end of a handled command. In continuous mode it refreshes
// the session, otherwise the timer returns to Standby.
func (t *Timer) Touch() {
	if !t.opt.Continuous {
		t.state = Standby
		return
	}
	if t.state == Active {
		t.lastActive = t.opt.Now()
	}
}

func (t *Timer) isExit(utterance string) bool {
	for _, tok := range project.Tokens(utterance) {
		if t.exitWords[project.Normalize(tok)] {
			return true
		}
	}
	return false
}

func isFiller(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r)
}

func (t *Timer) stripWakeWord(lower string) string {
	rest := strings.ReplaceAll(lower, t.opt.WakeWord, "")
	rest = strings.ReplaceAll(rest, ",", "")
	return strings.Join(strings.Fields(rest), " ")
}
