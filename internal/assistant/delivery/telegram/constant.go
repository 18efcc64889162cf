package telegram

const (
	commandStart = "/start"
	commandHelp  = "/help"
	commandClear = "/limpar"

	msgWelcome = "👋 Olá, senhor. Sou seu assistente executivo.\n\nPergunte sobre os projetos, peça para *anotar* algo ou para *enviar* um e-mail ou WhatsApp. Ações só são executadas depois da sua confirmação."
	msgHelp    = "*Exemplos:*\n• `Qual a situação do projeto Rivelare?`\n• `Anote no Rivelare que o cliente pediu atraso`\n• `Manda um WhatsApp pra Patricia avisando que terminei`\n\nUse /limpar para apagar o histórico da conversa."
	msgCleared = "Histórico de conversa limpo, senhor."
	msgVoice   = "Ainda não processo áudio por aqui. Envie o pedido em texto, por favor."
	msgFailure = "Tive um problema para processar seu pedido. Tente novamente em instantes."
)
