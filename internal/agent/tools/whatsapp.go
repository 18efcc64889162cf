package tools

import (
	"context"
	"fmt"

	"executive-assistant/internal/agent"
)

// SendWhatsAppTool sends a WhatsApp message through the chat driver.
type SendWhatsAppTool struct {
	chat ChatDriver
}

// NewSendWhatsAppTool creates a new send whatsapp tool.
func NewSendWhatsAppTool(chat ChatDriver) agent.Tool {
	return &SendWhatsAppTool{chat: chat}
}

func (t *SendWhatsAppTool) Name() string {
	return agent.ToolSendWhatsApp
}

func (t *SendWhatsAppTool) Schema() agent.ToolSchema {
	return schemaFor(agent.ToolSendWhatsApp)
}

func (t *SendWhatsAppTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	contact, _ := params["contato"].(string)
	message, _ := params["mensagem"].(string)
	if contact == "" || message == "" {
		return "", fmt.Errorf("contato and mensagem are required")
	}

	if err := t.chat.SendChatMessage(ctx, contact, message); err != nil {
		return "", fmt.Errorf("whatsapp to %s: %w", contact, err)
	}
	return fmt.Sprintf("Mensagem enviada para %s.", contact), nil
}
