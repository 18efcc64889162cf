package report

const (
	DefaultSubject = "⚠️ Relatório de Cobrança Semanal"
	DefaultManager = "Gestor"

	composeTemperature = 0.3
	composeMaxTokens   = 2048

	msgNoOverdue     = "Nenhuma atividade vencida nesta semana."
	msgNoStagnation  = "Todos os projetos tiveram alguma movimentação."
	reportDateFormat = "02/01/2006"
	shortDateFormat  = "02/01"
)
