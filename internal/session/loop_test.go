package session

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"executive-assistant/pkg/log"
)

type scriptedListener struct {
	lines []string
	err   error
}

func (s *scriptedListener) Listen(ctx context.Context) (string, error) {
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

type recordingSpeaker struct {
	said []string
}

func (r *recordingSpeaker) Speak(ctx context.Context, text string) error {
	r.said = append(r.said, text)
	return nil
}

type fakeHandler struct {
	handled []string
	cleared int
	reply   string
}

func (f *fakeHandler) Handle(ctx context.Context, utterance string) string {
	f.handled = append(f.handled, utterance)
	return f.reply
}

func (f *fakeHandler) ClearHistory() { f.cleared++ }

func runLoop(t *testing.T, lines []string, opt LoopOptions) (*fakeHandler, *recordingSpeaker, error) {
	t.Helper()
	h := &fakeHandler{reply: "**Feito**, senhor."}
	sp := &recordingSpeaker{}
	lp := NewLoop(log.NewNop(), h, &scriptedListener{lines: lines}, sp, opt)
	err := lp.Run(context.Background())
	return h, sp, err
}

func TestLoop_WakeWordGatesHandler(t *testing.T) {
	h, sp, err := runLoop(t, []string{
		"qual o status",
		"",
		"apex",
		"qual o status do Rivelare",
		"sair",
		"nunca chega aqui",
	}, LoopOptions{Timer: TimerOptions{Continuous: true}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(h.handled) != 1 || h.handled[0] != "qual o status do Rivelare" {
		t.Errorf("handled = %v", h.handled)
	}
	want := []string{ReplyWakePrompt, "Feito, senhor.", ReplyGoodbye}
	if strings.Join(sp.said, "|") != strings.Join(want, "|") {
		t.Errorf("said = %v, want %v", sp.said, want)
	}
}

func TestLoop_ClearHistory(t *testing.T) {
	h, sp, err := runLoop(t, []string{"apex limpar histórico"}, LoopOptions{Greet: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if h.cleared != 1 || len(h.handled) != 0 {
		t.Errorf("cleared=%d handled=%v", h.cleared, h.handled)
	}
	if len(sp.said) != 2 || sp.said[0] != ReplyOnline || sp.said[1] != ReplyHistoryCleared {
		t.Errorf("said = %v", sp.said)
	}
}

func TestLoop_ExitFromStandby(t *testing.T) {
	h, sp, err := runLoop(t, []string{"encerrar"}, LoopOptions{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(h.handled) != 0 || len(sp.said) != 1 || sp.said[0] != ReplyGoodbye {
		t.Errorf("handled=%v said=%v", h.handled, sp.said)
	}
}

func TestLoop_ListenerError(t *testing.T) {
	boom := errors.New("mic unplugged")
	lp := NewLoop(log.NewNop(), &fakeHandler{}, &scriptedListener{err: boom}, &recordingSpeaker{}, LoopOptions{})
	if err := lp.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run err = %v, want %v", err, boom)
	}
}

func TestLoop_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lp := NewLoop(log.NewNop(), &fakeHandler{}, &scriptedListener{lines: []string{"apex oi"}}, &recordingSpeaker{}, LoopOptions{})
	if err := lp.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run err = %v", err)
	}
}

func TestLineListener(t *testing.T) {
	ll := NewLineListener(strings.NewReader("apex\nqual o status\n"), 50*time.Millisecond)
	ctx := context.Background()

	for _, want := range []string{"apex", "qual o status"} {
		got, err := ll.Listen(ctx)
		if err != nil || got != want {
			t.Fatalf("Listen = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := ll.Listen(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestLineListener_SilenceReturnsEmpty(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ll := NewLineListener(r, 10*time.Millisecond)
	got, err := ll.Listen(context.Background())
	if err != nil || got != "" {
		t.Errorf("Listen = %q, %v; want silence", got, err)
	}
}

func TestWriterSpeaker(t *testing.T) {
	var sb strings.Builder
	if err := NewWriterSpeaker(&sb, "APEX").Speak(context.Background(), "Pronto."); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "APEX: Pronto.\n" {
		t.Errorf("got %q", sb.String())
	}
}
