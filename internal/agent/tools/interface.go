package tools

import (
	"context"

	"executive-assistant/pkg/gmail"
)

// EmailSender delivers HTML email. *gmail.Client satisfies it.
type EmailSender interface {
	Send(ctx context.Context, req gmail.SendRequest) error
}

// EmailSearcher searches the inbox. *gmail.Client satisfies it.
type EmailSearcher interface {
	Search(ctx context.Context, req gmail.SearchRequest) ([]gmail.Message, error)
}

// ChatDriver sends chat messages. *browser.Driver satisfies it.
type ChatDriver interface {
	SendChatMessage(ctx context.Context, contact, message string) error
}

// ScreenDriver clicks and types on the active screen. *browser.Driver satisfies it.
type ScreenDriver interface {
	ClickElement(ctx context.Context, description string) error
	TypeText(ctx context.Context, text string) error
}
