package session

import "time"

const (
	DefaultTimeout      = 60 * time.Second
	DefaultWakeWord     = "apex"
	DefaultPollInterval = time.Second

	logPrefixRun = "internal.session.Loop.Run"
)

var (
	DefaultExitWords    = []string{"sair", "desligar", "encerrar"}
	DefaultClearPhrases = []string{"limpar histórico", "limpa histórico", "limpar historico", "limpa historico"}
)

// Spoken replies
const (
	ReplyOnline         = "Sistemas online. Estou pronto, senhor."
	ReplyWakePrompt     = "Sim, senhor? Como posso ajudar?"
	ReplyGoodbye        = "Desligando sistemas. Até logo, senhor."
	ReplyHistoryCleared = "Histórico de conversa limpo. Começando do zero."
	ReplyActionRunning  = "Executando ação solicitada."
)
