package tools

import (
	"context"
	"fmt"
	"strings"

	"executive-assistant/internal/agent"
	"executive-assistant/pkg/gmail"
)

const noEmailsFound = "Nenhum e-mail encontrado com esses critérios."

// SearchEmailsTool lists recent inbox messages.
type SearchEmailsTool struct {
	searcher EmailSearcher
	limit    int64
}

// NewSearchEmailsTool creates a new search emails tool. limit <= 0 uses the client default.
func NewSearchEmailsTool(searcher EmailSearcher, limit int) agent.Tool {
	return &SearchEmailsTool{searcher: searcher, limit: int64(limit)}
}

func (t *SearchEmailsTool) Name() string {
	return agent.ToolSearchEmails
}

func (t *SearchEmailsTool) Schema() agent.ToolSchema {
	return schemaFor(agent.ToolSearchEmails)
}

func (t *SearchEmailsTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	query, _ := params["query"].(string)
	unread, _ := params["apenas_nao_lidos"].(bool)

	msgs, err := t.searcher.Search(ctx, gmail.SearchRequest{
		Query:      query,
		UnreadOnly: unread,
		Limit:      t.limit,
	})
	if err != nil {
		return "", fmt.Errorf("search failed: %w", err)
	}
	if len(msgs) == 0 {
		return noEmailsFound, nil
	}

	var sb strings.Builder
	for i, m := range msgs {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "📩 DE: %s\n   ASSUNTO: %s\n   RESUMO: %s\n", m.From, m.Subject, m.Snippet)
	}
	return sb.String(), nil
}
