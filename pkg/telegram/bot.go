package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the API base URL, mainly for tests.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers webhookURL. Telegram echoes a non-empty secret in the
// SecretTokenHeader of every update.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	return b.call(ctx, "setWebhook", SetWebhookRequest{URL: webhookURL, SecretToken: secret})
}

// SendMessage sends plain text, split into several messages when it exceeds
// MaxMessageLength.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.send(ctx, chatID, text, "")
}

// SendMarkdown sends text with the legacy Markdown parse mode.
func (b *Bot) SendMarkdown(ctx context.Context, chatID int64, text string) error {
	return b.send(ctx, chatID, text, ParseModeMarkdown)
}

// SendChatAction shows a transient status such as ActionTyping.
func (b *Bot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	return b.call(ctx, "sendChatAction", ChatActionRequest{ChatID: chatID, Action: action})
}

func (b *Bot) send(ctx context.Context, chatID int64, text, parseMode string) error {
	for _, chunk := range SplitMessage(text, MaxMessageLength) {
		err := b.call(ctx, "sendMessage", SendMessageRequest{
			ChatID:    chatID,
			Text:      chunk,
			ParseMode: parseMode,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: marshal: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil || !apiResp.OK {
		desc := apiResp.Description
		if desc == "" {
			desc = strings.TrimSpace(string(raw))
		}
		return &APIError{Method: method, StatusCode: resp.StatusCode, Description: desc}
	}
	return nil
}

// SplitMessage cuts text into chunks of at most limit runes, preferring line
// breaks. Empty text yields no chunks.
func SplitMessage(text string, limit int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, strings.TrimRight(string(runes[:cut]), "\n"))
		runes = runes[cut:]
	}
	if rest := strings.TrimSpace(string(runes)); rest != "" {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

const defaultTimeout = 15 * time.Second
