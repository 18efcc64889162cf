package dispatcher

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"executive-assistant/internal/agent"
	"executive-assistant/pkg/log"
)

type fakeTool struct {
	name        string
	destructive bool
	result      string
	err         error
	panicWith   any
	calls       int
	calledAt    time.Time
}

func (f *fakeTool) Name() string { return f.name }
func (f *fakeTool) Schema() agent.ToolSchema {
	return agent.ToolSchema{Name: f.name, Destructive: f.destructive}
}
func (f *fakeTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	f.calls++
	f.calledAt = time.Now()
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	return f.result, f.err
}

func newDispatcher(delay time.Duration, tools ...agent.Tool) *Dispatcher {
	r := agent.NewToolRegistry()
	for _, t := range tools {
		r.Register(t)
	}
	return New(r, log.NewNop(), Options{ActionDelay: delay})
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		tool := &fakeTool{name: "digitar_texto", result: "Texto digitado."}
		got := newDispatcher(-1, tool).Execute(ctx, agent.Descriptor{Tool: "digitar_texto"})
		if got != "Ação concluída: Texto digitado." {
			t.Errorf("unexpected result %q", got)
		}
		if tool.calls != 1 {
			t.Errorf("expected 1 call, got %d", tool.calls)
		}
	})

	t.Run("error", func(t *testing.T) {
		tool := &fakeTool{name: "enviar_email", err: errors.New("smtp down")}
		got := newDispatcher(-1, tool).Execute(ctx, agent.Descriptor{Tool: "enviar_email"})
		if got != "Falha na execução da ação: smtp down" {
			t.Errorf("unexpected result %q", got)
		}
	})

	t.Run("panic", func(t *testing.T) {
		tool := &fakeTool{name: "clicar_elemento_visual", panicWith: "nil pointer"}
		got := newDispatcher(-1, tool).Execute(ctx, agent.Descriptor{Tool: "clicar_elemento_visual"})
		if !strings.HasPrefix(got, "Falha na execução da ação: ") || !strings.Contains(got, "nil pointer") {
			t.Errorf("unexpected result %q", got)
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		got := newDispatcher(-1).Execute(ctx, agent.Descriptor{Tool: "apagar_tudo"})
		if !strings.Contains(got, "Erro de configuração") || !strings.Contains(got, "apagar_tudo") {
			t.Errorf("unexpected result %q", got)
		}
	})
}

func TestExecute_DestructiveDelay(t *testing.T) {
	ctx := context.Background()
	delay := 30 * time.Millisecond

	destructive := &fakeTool{name: "enviar_whatsapp", destructive: true, result: "ok"}
	plain := &fakeTool{name: "digitar_texto", result: "ok"}
	d := newDispatcher(delay, destructive, plain)

	start := time.Now()
	d.Execute(ctx, agent.Descriptor{Tool: "enviar_whatsapp"})
	if waited := destructive.calledAt.Sub(start); waited < delay {
		t.Errorf("destructive tool ran after %v, want >= %v", waited, delay)
	}

	start = time.Now()
	d.Execute(ctx, agent.Descriptor{Tool: "digitar_texto"})
	if waited := plain.calledAt.Sub(start); waited >= delay {
		t.Errorf("non destructive tool delayed by %v", waited)
	}
}

func TestExecute_DelayHonoursContext(t *testing.T) {
	tool := &fakeTool{name: "enviar_whatsapp", destructive: true}
	d := newDispatcher(time.Hour, tool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := d.Execute(ctx, agent.Descriptor{Tool: "enviar_whatsapp"})
	if !strings.HasPrefix(got, "Falha na execução da ação: ") {
		t.Errorf("unexpected result %q", got)
	}
	if tool.calls != 0 {
		t.Errorf("tool ran after cancellation")
	}
}

func TestNew_DefaultDelay(t *testing.T) {
	d := New(agent.NewToolRegistry(), log.NewNop(), Options{})
	if d.actionDelay != DefaultActionDelay {
		t.Errorf("expected default delay, got %v", d.actionDelay)
	}
}
