package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"executive-assistant/internal/agent"
	"executive-assistant/pkg/llmprovider"
	"executive-assistant/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	replies []string
	errs    []error
	calls   int
	last    *llmprovider.Request
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	i := s.calls
	s.calls++
	s.last = req
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i >= len(s.replies) {
		return &llmprovider.Response{}, nil
	}
	return &llmprovider.Response{Content: llmprovider.NewTextMessage(llmprovider.RoleAssistant, s.replies[i])}, nil
}

func newPlanner(llm llmprovider.Generator) *Planner {
	return New(llm, agent.NewSchemaTable(agent.DefaultSchemas...), log.NewNop(), Options{RetryDelay: -1})
}

func TestPlan_Success(t *testing.T) {
	llm := &scriptedLLM{replies: []string{"```json\n{\"ferramenta\": \"enviar_whatsapp\", \"params\": {\"contato\": \"Patricia\", \"mensagem\": \"Terminei.\"}}\n```"}}
	p := newPlanner(llm)

	res := p.Plan(context.Background(), "manda whatsapp pra Patricia avisando que terminei", "GESTOR: oi")
	require.True(t, res.OK(), "err: %v", res.Err)
	assert.Equal(t, &agent.Descriptor{
		Tool:   "enviar_whatsapp",
		Params: map[string]any{"contato": "Patricia", "mensagem": "Terminei."},
	}, res.Descriptor)

	assert.True(t, llm.last.JSONMode)
	assert.Equal(t, PlannerTemperature, llm.last.Temperature)
	prompt := llm.last.Messages[0].Text()
	assert.Contains(t, prompt, "CONTEXTO DA CONVERSA:\nGESTOR: oi")
	assert.True(t, strings.HasSuffix(prompt, "PEDIDO:\nmanda whatsapp pra Patricia avisando que terminei"))
}

func TestPlan_SystemPromptEmbedsSchemaTable(t *testing.T) {
	p := newPlanner(&scriptedLLM{})
	for _, s := range agent.DefaultSchemas {
		assert.Contains(t, p.system, s.Name)
	}
}

func TestPlan_SchemaErrorsAreNotRetried(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  error
	}{
		{"unknown tool", `{"tool":"formatar_disco","params":{}}`, agent.ErrUnknownTool},
		{"missing param", `{"tool":"enviar_whatsapp","params":{"contato":"Patricia"}}`, agent.ErrMissingParam},
		{"invalid param", `{"tool":"buscar_emails","params":{"apenas_nao_lidos":"talvez"}}`, agent.ErrInvalidParam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &scriptedLLM{replies: []string{tt.reply, tt.reply, tt.reply}}
			res := newPlanner(llm).Plan(context.Background(), "faça algo", "")

			assert.False(t, res.OK())
			assert.Nil(t, res.Descriptor)
			assert.ErrorIs(t, res.Err, tt.want)
			assert.False(t, res.Retryable)
			assert.Equal(t, 1, llm.calls)
		})
	}
}

func TestPlan_RetriesTransportAndParseFailures(t *testing.T) {
	llm := &scriptedLLM{
		errs:    []error{errors.New("timeout")},
		replies: []string{"", "isto não é json", `{"tool":"digitar_texto","params":{"texto":"ok"}}`},
	}
	res := newPlanner(llm).Plan(context.Background(), "digite ok", "")

	require.True(t, res.OK(), "err: %v", res.Err)
	assert.Equal(t, "digitar_texto", res.Descriptor.Tool)
	assert.Equal(t, 3, llm.calls)
}

func TestPlan_BudgetExhausted(t *testing.T) {
	llm := &scriptedLLM{replies: []string{"", "", ""}}
	res := newPlanner(llm).Plan(context.Background(), "digite ok", "")

	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, ErrPlanningFailed)
	assert.ErrorIs(t, res.Err, ErrEmptyResponse)
	assert.True(t, res.Retryable)
	assert.Equal(t, DefaultAttempts, llm.calls)
}
