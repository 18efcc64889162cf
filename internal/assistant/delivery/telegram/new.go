package telegram

import (
	"github.com/gin-gonic/gin"

	"executive-assistant/internal/assistant"
	pkgLog "executive-assistant/pkg/log"
	pkgTelegram "executive-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l       pkgLog.Logger
	uc      assistant.UseCase
	bot     *pkgTelegram.Bot
	allowed map[int64]bool
}

// New creates a new Telegram delivery handler. A non-empty allowedChats
// restricts the assistant to those chats.
func New(l pkgLog.Logger, uc assistant.UseCase, bot *pkgTelegram.Bot, allowedChats []int64) Handler {
	allowed := make(map[int64]bool, len(allowedChats))
	for _, id := range allowedChats {
		allowed[id] = true
	}
	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		allowed: allowed,
	}
}
