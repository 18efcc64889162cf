package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"executive-assistant/internal/assistant"
	"executive-assistant/internal/model"
	pkgResponse "executive-assistant/pkg/response"
	pkgTelegram "executive-assistant/pkg/telegram"
)

// HandleWebhook acknowledges the update immediately and processes it in the
// background. A full turn can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}
	if len(h.allowed) > 0 && !h.allowed[update.Message.Chat.ID] {
		h.l.Warnf(ctx, "telegram handler: chat %d not allowed", update.Message.Chat.ID)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgFailure)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	sessionID := fmt.Sprintf("telegram_%d", msg.Chat.ID)

	if msg.Voice != nil && msg.Text == "" {
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgVoice)
	}

	text := strings.TrimSpace(msg.Text)
	switch text {
	case "":
		return nil
	case commandStart:
		return h.bot.SendMarkdown(ctx, msg.Chat.ID, msgWelcome)
	case commandHelp:
		return h.bot.SendMarkdown(ctx, msg.Chat.ID, msgHelp)
	case commandClear:
		if err := h.uc.ClearHistory(ctx, sessionID); err != nil && !errors.Is(err, assistant.ErrSessionNotFound) {
			return err
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgCleared)
	}

	if err := h.bot.SendChatAction(ctx, msg.Chat.ID, pkgTelegram.ActionTyping); err != nil {
		h.l.Debugf(ctx, "telegram handler: chat action: %v", err)
	}

	sc := model.Scope{SessionID: sessionID, Source: model.SourceTelegram}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}

	out, err := h.uc.Chat(ctx, model.InboundMessage{
		Scope:      sc,
		Text:       text,
		ReceivedAt: time.Unix(msg.Date, 0),
	})
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, out.Reply)
}
