package tools_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"executive-assistant/internal/agent"
	"executive-assistant/internal/agent/tools"
	"executive-assistant/pkg/gmail"
)

type mockMail struct {
	sent      []gmail.SendRequest
	sendErr   error
	searchReq gmail.SearchRequest
	messages  []gmail.Message
	searchErr error
}

func (m *mockMail) Send(ctx context.Context, req gmail.SendRequest) error {
	m.sent = append(m.sent, req)
	return m.sendErr
}

func (m *mockMail) Search(ctx context.Context, req gmail.SearchRequest) ([]gmail.Message, error) {
	m.searchReq = req
	return m.messages, m.searchErr
}

type mockBrowser struct {
	chats  [][2]string
	clicks []string
	typed  []string
	err    error
}

func (m *mockBrowser) SendChatMessage(ctx context.Context, contact, message string) error {
	m.chats = append(m.chats, [2]string{contact, message})
	return m.err
}

func (m *mockBrowser) ClickElement(ctx context.Context, description string) error {
	m.clicks = append(m.clicks, description)
	return m.err
}

func (m *mockBrowser) TypeText(ctx context.Context, text string) error {
	m.typed = append(m.typed, text)
	return m.err
}

func TestAgentTools(t *testing.T) {
	ctx := context.Background()

	t.Run("schemas match the default table", func(t *testing.T) {
		mail := &mockMail{}
		b := &mockBrowser{}
		registry := agent.NewToolRegistry()
		registry.Register(tools.NewSendWhatsAppTool(b))
		registry.Register(tools.NewSendEmailTool(mail, tools.EmailOptions{}))
		registry.Register(tools.NewSearchEmailsTool(mail, 0))
		registry.Register(tools.NewClickTool(b))
		registry.Register(tools.NewTypeTextTool(b))

		table := registry.SchemaTable()
		for _, s := range agent.DefaultSchemas {
			got, ok := table.Get(s.Name)
			if !ok {
				t.Errorf("tool %s not registered", s.Name)
				continue
			}
			if got.Destructive != s.Destructive || len(got.Params) != len(s.Params) {
				t.Errorf("schema mismatch for %s", s.Name)
			}
		}
	})

	t.Run("SendWhatsAppTool", func(t *testing.T) {
		b := &mockBrowser{}
		tool := tools.NewSendWhatsAppTool(b)

		res, err := tool.Execute(ctx, map[string]any{"contato": "Patricia", "mensagem": "terminei"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res != "Mensagem enviada para Patricia." {
			t.Errorf("unexpected result: %q", res)
		}
		if len(b.chats) != 1 || b.chats[0] != [2]string{"Patricia", "terminei"} {
			t.Errorf("unexpected chats: %v", b.chats)
		}

		if _, err := tool.Execute(ctx, map[string]any{"contato": "Patricia"}); err == nil {
			t.Errorf("expected error for missing mensagem")
		}

		b.err = errors.New("contact not found")
		if _, err := tool.Execute(ctx, map[string]any{"contato": "X", "mensagem": "y"}); err == nil {
			t.Errorf("expected driver error")
		}
	})

	t.Run("SendEmailTool default recipient and signature", func(t *testing.T) {
		mail := &mockMail{}
		tool := tools.NewSendEmailTool(mail, tools.EmailOptions{DefaultRecipient: "boss@example.com", Signature: "Apex"})

		res, err := tool.Execute(ctx, map[string]any{"assunto": "Status", "corpo_html": "<b>ok</b>"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !strings.Contains(res, "boss@example.com") {
			t.Errorf("unexpected result: %q", res)
		}
		sent := mail.sent[0]
		if sent.To != "boss@example.com" || sent.Subject != "Status" {
			t.Errorf("unexpected request: %+v", sent)
		}
		if !strings.Contains(sent.HTMLBody, "<b>ok</b>") || !strings.Contains(sent.HTMLBody, "Enviado automaticamente por Apex.") {
			t.Errorf("body not wrapped: %s", sent.HTMLBody)
		}
	})

	t.Run("SendEmailTool without any recipient", func(t *testing.T) {
		mail := &mockMail{}
		tool := tools.NewSendEmailTool(mail, tools.EmailOptions{})
		if _, err := tool.Execute(ctx, map[string]any{"assunto": "a", "corpo_html": "b"}); err == nil {
			t.Errorf("expected error")
		}
		if len(mail.sent) != 0 {
			t.Errorf("email sent without recipient")
		}
	})

	t.Run("SearchEmailsTool", func(t *testing.T) {
		mail := &mockMail{messages: []gmail.Message{
			{From: "Ana", Subject: "Passagem", Snippet: "voo às 10h"},
			{From: "Rui", Subject: "Fatura", Snippet: "vence amanhã"},
		}}
		tool := tools.NewSearchEmailsTool(mail, 5)

		res, err := tool.Execute(ctx, map[string]any{"query": "passagem", "apenas_nao_lidos": true})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if mail.searchReq != (gmail.SearchRequest{Query: "passagem", UnreadOnly: true, Limit: 5}) {
			t.Errorf("unexpected request: %+v", mail.searchReq)
		}
		if !strings.Contains(res, "ASSUNTO: Passagem") || !strings.Contains(res, "DE: Rui") {
			t.Errorf("unexpected result: %q", res)
		}

		mail.messages = nil
		res, _ = tool.Execute(ctx, map[string]any{})
		if res != "Nenhum e-mail encontrado com esses critérios." {
			t.Errorf("unexpected empty result: %q", res)
		}
	})

	t.Run("ClickTool and TypeTextTool", func(t *testing.T) {
		b := &mockBrowser{}
		click := tools.NewClickTool(b)
		typer := tools.NewTypeTextTool(b)

		if res, err := click.Execute(ctx, map[string]any{"descricao_elemento": "Enviar"}); err != nil || res != "Cliquei em 'Enviar'." {
			t.Errorf("unexpected click result: %q %v", res, err)
		}
		if res, err := typer.Execute(ctx, map[string]any{"texto": "bom dia"}); err != nil || res != "Texto digitado." {
			t.Errorf("unexpected type result: %q %v", res, err)
		}
		if len(b.clicks) != 1 || len(b.typed) != 1 || b.typed[0] != "bom dia" {
			t.Errorf("driver not called: %+v", b)
		}
	})
}
