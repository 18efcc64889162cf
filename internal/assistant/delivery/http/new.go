package http

import (
	"github.com/gin-gonic/gin"

	"executive-assistant/internal/assistant"
	"executive-assistant/pkg/log"
)

// Handler is the public interface of the dashboard HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Session(c *gin.Context)
	ClearHistory(c *gin.Context)
	ListProjects(c *gin.Context)
	ProjectDetail(c *gin.Context)
	AddNote(c *gin.Context)
	ListNotes(c *gin.Context)
	Metrics(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
