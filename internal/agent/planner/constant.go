package planner

import "time"

// Log prefixes
const (
	LogPrefixPlan = "internal.agent.planner.Plan"
)

// Planner configuration
const (
	PlannerTemperature = 0.0
	DefaultAttempts    = 3
	DefaultRetryDelay  = 2 * time.Second
	plannerMaxTokens   = 1024
)

// promptPlannerSystem is formatted with the tool table.
const promptPlannerSystem = `Você é o Planejador de Ações do assistente executivo.
Converta o pedido do usuário em UMA chamada de ferramenta.

FERRAMENTAS DISPONÍVEIS:
%s
REGRAS:
- Responda APENAS com um objeto JSON válido, sem texto extra.
- Formato: {"tool": "nome_da_ferramenta", "params": {"parametro": "valor"}}
- Use somente as ferramentas e parâmetros listados.
- Para WhatsApp, use o NOME EXATO do contato mencionado pelo usuário.
- Redija mensagens e emails em português, de forma clara e profissional.

EXEMPLO:
{"tool": "enviar_whatsapp", "params": {"contato": "Patricia", "mensagem": "Patricia, terminei a revisão."}}`

const (
	contextPromptPrefix = "CONTEXTO DA CONVERSA:\n"
	requestPromptPrefix = "PEDIDO:\n"
)
