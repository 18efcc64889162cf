package router

import "time"

// Log prefixes
const (
	LogPrefixSemantic = "internal.router.SemanticRouter.Classify"
	LogPrefixKeyword  = "internal.router.KeywordRouter.Classify"
)

// Router configuration
const (
	RouterTemperature   = 0.0
	DefaultAttempts     = 3
	DefaultRetryDelay   = 2 * time.Second
	routerMaxTokens     = 256
	historyPromptPrefix = "HISTÓRICO RECENTE:\n"
	utterancePrefix     = "MENSAGEM ATUAL:\n"
)

// PromptRouterSystem is the fixed classification instruction.
const PromptRouterSystem = `Você é o Roteador de Intenções do assistente executivo.
Sua única função é ler a mensagem do usuário e classificar a intenção em um JSON estrito.

CATEGORIAS PERMITIDAS:
- "SMALL_TALK": Saudações, perguntas gerais, papo furado ("bom dia", "quem é você").
- "DATA_QUERY": Perguntas sobre status de projetos, cronogramas, atrasos, percentuais ou resumo de clientes.
- "ACTION": Comandos imperativos para realizar ações (enviar whatsapp, enviar ou buscar email, clicar, digitar).
- "MEMORY_WRITE": Comandos explícitos para guardar uma anotação ("anote que", "lembre-se de", "registre").

REGRAS:
- Retorne APENAS um objeto JSON válido. Nenhuma palavra a mais.
- Se identificar um nome de cliente, projeto ou código numérico, coloque na lista "projetos_mencionados".
- "consulta_global" é true quando a pergunta abrange todos os projetos ("quantos", "quais", "resumo geral").
- "acao_detectada" é o nome da ferramenta quando a categoria é ACTION: enviar_whatsapp, enviar_email, buscar_emails, clicar_elemento_visual ou digitar_texto. Caso contrário, null.

EXEMPLO DE SAÍDA ESPERADA:
{
    "categoria": "ACTION",
    "projetos_mencionados": ["Unimed"],
    "acao_detectada": "enviar_whatsapp",
    "consulta_global": false
}`

// Keyword router trigger sets. Single words match as token prefixes,
// phrases as substrings; both after accent folding.
var (
	DefaultWriteTriggers  = []string{"anote", "anota", "lembre", "adicionar nota", "gravar", "grave", "registre", "registra"}
	DefaultGlobalTriggers = []string{"quais", "quantos", "listar", "liste", "relatorio", "resumo", "todos", "geral"}

	// DefaultActionTriggers maps a trigger onto the tool it usually implies.
	DefaultActionTriggers = map[string]string{
		"whatsapp":         "enviar_whatsapp",
		"zap":              "enviar_whatsapp",
		"avise":            "enviar_whatsapp",
		"avisa":            "enviar_whatsapp",
		"fala pro":         "enviar_whatsapp",
		"fala pra":         "enviar_whatsapp",
		"envie email":      "enviar_email",
		"envie um email":   "enviar_email",
		"mande email":      "enviar_email",
		"mande um email":   "enviar_email",
		"manda um email":   "enviar_email",
		"manda email":      "enviar_email",
		"meus emails":      "buscar_emails",
		"caixa de entrada": "buscar_emails",
		"checa o email":    "buscar_emails",
		"clique":           "clicar_elemento_visual",
		"clica":            "clicar_elemento_visual",
		"digite":           "digitar_texto",
		"digita":           "digitar_texto",
		"escreva":          "digitar_texto",
	}
)
