package sync

import "time"

// DefaultBlockedStatuses are custom statuses of finished projects.
var DefaultBlockedStatuses = []string{"completed", "cancelled", "concluído", "cancelado", "finalizado", "arquivado"}

const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 2 * time.Second
	DefaultConcurrency   = 4
	DefaultStatus        = "Ativo"

	defaultTaskStatus    = "Sem status"
	defaultTaskPriority  = "Normal"
	defaultTaskList      = "Sem lista"
	defaultTaskMilestone = "Sem Phase"

	// HistoryDateFormat is the layout of HistoryEntry.RecordedAt.
	HistoryDateFormat = "02/01/2006"

	backgroundTimeout = 10 * time.Minute
)
