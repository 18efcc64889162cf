package http

import (
	"github.com/gin-gonic/gin"

	"executive-assistant/internal/middleware"
)

// RegisterRoutes maps the dashboard API under rg. Every route requires the
// API key when one is configured.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())

	rg.POST("/chat", h.Chat)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id", h.Session)
		sessions.DELETE("/:id/history", h.ClearHistory)
	}

	projects := rg.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.GET("/:id", h.ProjectDetail)
		projects.POST("/:id/notes", h.AddNote)
	}

	rg.GET("/notes", h.ListNotes)
	rg.GET("/metrics", h.Metrics)
}
