package orchestrator

// Log prefixes
const (
	LogPrefixHandle      = "internal.agent.orchestrator.Handle"
	LogPrefixAction      = "internal.agent.orchestrator.handleAction"
	LogPrefixDataQuery   = "internal.agent.orchestrator.handleDataQuery"
	LogPrefixMemoryWrite = "internal.agent.orchestrator.handleMemoryWrite"
	LogPrefixPendingNote = "internal.agent.orchestrator.handlePendingNote"
	LogPrefixSmallTalk   = "internal.agent.orchestrator.handleSmallTalk"
)

// Fixed replies
const (
	ReplySystemError      = "Senhor, os servidores da IA estão instáveis no momento. Por favor, tente novamente em instantes."
	ReplySmallTalkDefault = "Tudo operacional por aqui, senhor. Em que posso ajudar?"
	ReplyDataQueryEmpty   = "Não consegui montar uma resposta sobre esses dados agora, senhor."
	ReplyActionUnformable = "Senhor, não consegui formatar essa ação com segurança (%v). Pode reformular o pedido?"
	ReplyWhichProject     = "Qual projeto? Diga o nome ou código."
	ReplyWhichOne         = "Qual deles? (Diga o código):\n%s"
	ReplyStillAmbiguous   = "Ainda há mais de um projeto possível. Qual deles? (Diga o código):\n%s"
	ReplyNoteSaved        = "✅ Anotado no projeto %s."
	ReplyNoteFailed       = "❌ Erro ao salvar anotação: %v"
	ReplyNoteUnrecognized = "Código não reconhecido. Anotação descartada."
	ReplyNoteCancelled    = "Anotação descartada, senhor."
	ReplyHistoryCleared   = "Histórico de conversa limpo, senhor."
)

// Generation settings
const (
	DataQueryTemperature   = 0.3
	SmallTalkTemperature   = 0.7
	NoteExtractTemperature = 0.2

	DefaultDataQueryLimit  = 10
	DefaultHelicopterLimit = 15
	maxOpenTasksPerProject = 3
	noteExtractMaxTokens   = 200
	ambiguousContextLabel  = "Múltiplos"
)

// Prompt fragments
const (
	promptPersona = `Você é %s, o assistente executivo pessoal de %s.
%s
# PERSONALIDADE E TOM
- Seja DIRETO, CONCISO e NATURAL como em uma conversa real.
- Tom profissional mas amigável. Trate o usuário por "senhor".
- Evite saudações longas. NUNCA repita informações já ditas na conversa.
- Se não souber algo, admita honestamente.

# FONTES DE DADOS
1. Dados dos projetos (tarefas, percentuais, prazos).
2. Memória do Gestor: anotações feitas sobre os projetos (campo MEMORIA_GESTOR).
3. Histórico da conversa atual.

# REGRAS
- FOQUE NO GARGALO: fale do que trava ou atrasa, não liste tudo que está ok.
- Se um projeto já está em fase avançada, não cite tarefas de fases anteriores.`

	promptProjectsHeader = "\n--- DADOS DOS PROJETOS RELEVANTES ---\n"
	promptNoProjects     = "\n--- DADOS DOS PROJETOS RELEVANTES ---\nNenhum projeto encontrado para: %s\n"
	promptRequestHeader  = "\n--- SOLICITAÇÃO ATUAL ---\n"
	promptDataQueryRules = `

INSTRUÇÕES:
- Responda em texto natural, direto e conversacional.
- Use somente os dados acima; não invente projetos.
- Considere o histórico da conversa para dar contexto à resposta.`

	promptNoteExtract = "Frase: '%s'. Contexto: '%s'. Extraia apenas o fato a ser anotado. Responda curto."

	// TimeContextTemplate is filled with today, weekday, week bounds and tomorrow.
	TimeContextTemplate = `Data/Hora atual: %s (%s), %s
- Esta semana: de %s a %s
- Amanhã: %s
`
)
