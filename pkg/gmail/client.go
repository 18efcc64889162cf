package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/mail"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Scopes requested by the assistant.
var Scopes = []string{gmailapi.GmailSendScope, gmailapi.GmailReadonlyScope}

// Client wraps the Gmail API service.
type Client struct {
	service    *gmailapi.Service
	from       string
	senderName string
}

// Option customises the client.
type Option func(*Client)

// WithSender sets the From header. Without it Gmail uses the account address.
func WithSender(address, name string) Option {
	return func(c *Client) {
		c.from = address
		c.senderName = name
	}
}

// OAuthConfigFromJSON parses an "installed" desktop credentials file.
func OAuthConfigFromJSON(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	return cfg, nil
}

// NewClientFromFiles creates a Gmail client from the OAuth desktop credentials
// file and a previously stored token file.
func NewClientFromFiles(ctx context.Context, credentialsPath, tokenPath string, opts ...Option) (*Client, error) {
	creds, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("no token found at %s: run scripts/gmail-auth first: %w", tokenPath, err)
	}
	return NewClientFromJSON(ctx, creds, tokenData, opts...)
}

// NewClientFromJSON creates a Gmail client from raw credentials and token JSON.
func NewClientFromJSON(ctx context.Context, credentialsJSON, tokenJSON []byte, opts ...Option) (*Client, error) {
	cfg, err := OAuthConfigFromJSON(credentialsJSON)
	if err != nil {
		return nil, err
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenJSON, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	svc, err := gmailapi.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx, &tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return newClient(svc, opts), nil
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts ...Option) (*Client, error) {
	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return newClient(svc, opts), nil
}

func newClient(svc *gmailapi.Service, opts []Option) *Client {
	c := &Client{service: svc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send delivers an HTML email.
func (c *Client) Send(ctx context.Context, req SendRequest) error {
	if strings.TrimSpace(req.To) == "" {
		return fmt.Errorf("gmail: empty recipient")
	}

	raw := c.buildMIME(req)
	msg := &gmailapi.Message{Raw: base64.URLEncoding.EncodeToString([]byte(raw))}
	if _, err := c.service.Users.Messages.Send(userMe, msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (c *Client) buildMIME(req SendRequest) string {
	var sb strings.Builder
	if c.from != "" {
		from := mail.Address{Name: c.senderName, Address: c.from}
		fmt.Fprintf(&sb, "From: %s\r\n", from.String())
	}
	fmt.Fprintf(&sb, "To: %s\r\n", req.To)
	fmt.Fprintf(&sb, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", req.Subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	sb.WriteString(req.HTMLBody)
	return sb.String()
}

// Search lists the most recent inbox messages matching req, newest first.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Message, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	list, err := c.service.Users.Messages.List(userMe).
		Q(BuildQuery(req.Query, req.UnreadOnly)).
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	out := make([]Message, 0, len(list.Messages))
	for _, m := range list.Messages {
		full, err := c.service.Users.Messages.Get(userMe, m.Id).
			Format("metadata").
			MetadataHeaders(headerFrom, headerSubject, headerDate).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get message %s: %w", m.Id, err)
		}
		out = append(out, toMessage(full))
	}
	return out, nil
}

// BuildQuery combines the free-text query with the inbox and unread filters.
func BuildQuery(query string, unreadOnly bool) string {
	parts := []string{inboxQuery}
	if unreadOnly {
		parts = append(parts, unreadQuery)
	}
	if q := strings.TrimSpace(query); q != "" {
		parts = append(parts, q)
	}
	return strings.Join(parts, " ")
}

func toMessage(m *gmailapi.Message) Message {
	out := Message{ID: m.Id, Snippet: truncate(m.Snippet, snippetMaxRune)}
	for _, l := range m.LabelIds {
		if l == labelUnread {
			out.Unread = true
		}
	}
	if m.Payload != nil {
		for _, h := range m.Payload.Headers {
			switch h.Name {
			case headerFrom:
				out.From = h.Value
			case headerSubject:
				out.Subject = decodeHeader(h.Value)
			case headerDate:
				if t, err := mail.ParseDate(h.Value); err == nil {
					out.Date = t
				}
			}
		}
	}
	if out.Date.IsZero() && m.InternalDate > 0 {
		out.Date = time.UnixMilli(m.InternalDate)
	}
	return out
}

func decodeHeader(v string) string {
	dec := new(mime.WordDecoder)
	s, err := dec.DecodeHeader(v)
	if err != nil {
		return v
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
