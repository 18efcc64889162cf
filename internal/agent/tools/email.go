package tools

import (
	"context"
	"fmt"
	"strings"

	"executive-assistant/internal/agent"
	"executive-assistant/pkg/gmail"
)

const signatureTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="background-color: #f4f4f4; padding: 20px; border-radius: 10px;">
    <div style="background-color: white; padding: 20px; border-radius: 5px; border-left: 5px solid #3498db;">
      %s
    </div>
    <p style="font-size: 12px; color: #7f8c8d; margin-top: 20px;">Enviado automaticamente por %s.</p>
  </div>
</body>
</html>`

// EmailOptions configures SendEmailTool.
type EmailOptions struct {
	// DefaultRecipient is used when the model leaves destinatario empty.
	DefaultRecipient string
	// Signature is the sender name placed in the footer. Empty disables the wrapper.
	Signature string
}

// SendEmailTool sends an HTML email.
type SendEmailTool struct {
	sender EmailSender
	opt    EmailOptions
}

// NewSendEmailTool creates a new send email tool.
func NewSendEmailTool(sender EmailSender, opt EmailOptions) agent.Tool {
	return &SendEmailTool{sender: sender, opt: opt}
}

func (t *SendEmailTool) Name() string {
	return agent.ToolSendEmail
}

func (t *SendEmailTool) Schema() agent.ToolSchema {
	return schemaFor(agent.ToolSendEmail)
}

func (t *SendEmailTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	to, _ := params["destinatario"].(string)
	subject, _ := params["assunto"].(string)
	body, _ := params["corpo_html"].(string)

	if strings.TrimSpace(to) == "" {
		to = t.opt.DefaultRecipient
	}
	if to == "" {
		return "", fmt.Errorf("no recipient and no default recipient configured")
	}

	err := t.sender.Send(ctx, gmail.SendRequest{
		To:       to,
		Subject:  subject,
		HTMLBody: t.wrap(body),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("E-mail enviado com sucesso para %s.", to), nil
}

func (t *SendEmailTool) wrap(body string) string {
	if t.opt.Signature == "" {
		return body
	}
	return fmt.Sprintf(signatureTemplate, body, t.opt.Signature)
}
