package session

import (
	"testing"
	"time"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestTimer(continuous bool) (*Timer, *clock) {
	c := &clock{now: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	return NewTimer(TimerOptions{Timeout: 30 * time.Second, Continuous: continuous, Now: c.Now}), c
}

func TestObserve_Standby(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Outcome
		state     State
	}{
		{"no wake word", "qual o status do Rivelare", Outcome{Action: Ignore}, Standby},
		{"wake word alone", "Apex", Outcome{Action: Prompt}, Active},
		{"wake word with comma", "Apex, ", Outcome{Action: Prompt}, Active},
		{"wake word with punctuation", "Apex?!", Outcome{Action: Prompt}, Active},
		{"short command", "apex, ok", Outcome{Action: Forward, Utterance: "ok"}, Active},
		{"wake word and command", "Apex, qual o status do Rivelare?", Outcome{Action: Forward, Utterance: "qual o status do rivelare?"}, Active},
		{"exit word", "pode desligar", Outcome{Action: Exit}, Standby},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, _ := newTestTimer(true)
			got := tm.Observe(tt.utterance)
			if got != tt.want {
				t.Errorf("Observe(%q) = %+v, want %+v", tt.utterance, got, tt.want)
			}
			if tm.State() != tt.state {
				t.Errorf("state = %s, want %s", tm.State(), tt.state)
			}
		})
	}
}

func TestObserve_ExitIsWholeWord(t *testing.T) {
	tm, _ := newTestTimer(true)
	tm.Observe("apex")
	if got := tm.Observe("vamos sair daqui às 18h"); got.Action != Exit {
		t.Errorf("expected exit, got %+v", got)
	}
	if got := tm.Observe("o cliente quer encerrarmos amanhã"); got.Action != Forward {
		t.Errorf("partial word treated as exit: %+v", got)
	}
}

func TestObserve_ActiveContinuous(t *testing.T) {
	tm, _ := newTestTimer(true)
	tm.Observe("apex")

	got := tm.Observe("Manda whatsapp pra Patricia")
	if got.Action != Forward || got.Utterance != "Manda whatsapp pra Patricia" {
		t.Errorf("unexpected outcome %+v", got)
	}
}

func TestObserve_ActiveWakeWordMode(t *testing.T) {
	tm, _ := newTestTimer(false)
	tm.Observe("apex")

	if got := tm.Observe("manda whatsapp"); got.Action != Ignore {
		t.Errorf("command without wake word forwarded: %+v", got)
	}
	if got := tm.Observe("apex manda whatsapp"); got.Action != Forward || got.Utterance != "manda whatsapp" {
		t.Errorf("unexpected outcome %+v", got)
	}
}

func TestTick_ExpiresIdleSession(t *testing.T) {
	tm, c := newTestTimer(true)
	tm.Observe("apex")

	c.Advance(30 * time.Second)
	if tm.Tick() {
		t.Fatalf("expired at exactly the timeout")
	}
	if tm.Remaining() != 0 {
		t.Errorf("remaining = %s", tm.Remaining())
	}

	c.Advance(time.Second)
	if !tm.Tick() || tm.State() != Standby {
		t.Fatalf("session did not expire")
	}
	if tm.Tick() {
		t.Errorf("second tick reported expiry again")
	}
	if got := tm.Observe("qual o status"); got.Action != Ignore {
		t.Errorf("expired session forwarded: %+v", got)
	}
}

func TestTouch_RefreshesOnCompletion(t *testing.T) {
	tm, c := newTestTimer(true)
	tm.Observe("apex qual o status")

	// a long-running command finishes after the timeout would have passed
	c.Advance(45 * time.Second)
	tm.Touch()
	c.Advance(20 * time.Second)

	if tm.Tick() {
		t.Fatalf("session expired despite completion refresh")
	}
	if got := tm.Remaining(); got != 10*time.Second {
		t.Errorf("remaining = %s, want 10s", got)
	}
}

func TestTouch_WakeWordModeReturnsToStandby(t *testing.T) {
	tm, _ := newTestTimer(false)
	tm.Observe("apex qual o status")
	tm.Touch()
	if tm.State() != Standby {
		t.Errorf("state = %s, want STANDBY", tm.State())
	}
}
