package dispatcher

import (
	"context"
	"fmt"
	"time"

	"executive-assistant/internal/agent"
	"executive-assistant/pkg/log"
)

const (
	LogPrefixExecute = "internal.agent.dispatcher.Execute"

	DefaultActionDelay = time.Second

	prefixSuccess = "Ação concluída: "
	prefixFailure = "Falha na execução da ação: "
	msgNotWired   = "Erro de configuração: a ferramenta '%s' não está disponível."
)

// Options configures the dispatcher. A zero ActionDelay uses the default; a
// negative one disables it.
type Options struct {
	ActionDelay time.Duration
}

// Dispatcher runs validated descriptors against the registered tools and
// always answers with a result string.
type Dispatcher struct {
	registry    *agent.ToolRegistry
	l           log.Logger
	actionDelay time.Duration
}

// New creates a new Dispatcher.
func New(registry *agent.ToolRegistry, l log.Logger, opt Options) *Dispatcher {
	switch {
	case opt.ActionDelay == 0:
		opt.ActionDelay = DefaultActionDelay
	case opt.ActionDelay < 0:
		opt.ActionDelay = 0
	}
	return &Dispatcher{registry: registry, l: l, actionDelay: opt.ActionDelay}
}

// Execute runs desc. Destructive tools wait ActionDelay first so a
// push-to-talk control can be released. Tool errors and panics become a
// failure string.
func (d *Dispatcher) Execute(ctx context.Context, desc agent.Descriptor) string {
	tool, ok := d.registry.Get(desc.Tool)
	if !ok {
		d.l.Errorf(ctx, "%s: %v: %s", LogPrefixExecute, agent.ErrToolNotWired, desc.Tool)
		return fmt.Sprintf(msgNotWired, desc.Tool)
	}

	if tool.Schema().Destructive && d.actionDelay > 0 {
		t := time.NewTimer(d.actionDelay)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return prefixFailure + ctx.Err().Error()
		}
	}

	d.l.Infof(ctx, "%s: running %s params=%v", LogPrefixExecute, desc.Tool, desc.Params)
	result, err := d.run(ctx, tool, desc.Params)
	if err != nil {
		d.l.Warnf(ctx, "%s: %s failed: %v", LogPrefixExecute, desc.Tool, err)
		return prefixFailure + err.Error()
	}
	d.l.Infof(ctx, "%s: %s done", LogPrefixExecute, desc.Tool)
	return prefixSuccess + result
}

func (d *Dispatcher) run(ctx context.Context, tool agent.Tool, params map[string]any) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return tool.Execute(ctx, params)
}
