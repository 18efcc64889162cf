package tools

import (
	"context"
	"fmt"

	"executive-assistant/internal/agent"
)

// ClickTool clicks a visual element described in natural language.
type ClickTool struct {
	screen ScreenDriver
}

// NewClickTool creates a new click tool.
func NewClickTool(screen ScreenDriver) agent.Tool {
	return &ClickTool{screen: screen}
}

func (t *ClickTool) Name() string {
	return agent.ToolClick
}

func (t *ClickTool) Schema() agent.ToolSchema {
	return schemaFor(agent.ToolClick)
}

func (t *ClickTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	desc, _ := params["descricao_elemento"].(string)
	if desc == "" {
		return "", fmt.Errorf("descricao_elemento is required")
	}
	if err := t.screen.ClickElement(ctx, desc); err != nil {
		return "", err
	}
	return fmt.Sprintf("Cliquei em '%s'.", desc), nil
}

// TypeTextTool types text into the focused field.
type TypeTextTool struct {
	screen ScreenDriver
}

// NewTypeTextTool creates a new type text tool.
func NewTypeTextTool(screen ScreenDriver) agent.Tool {
	return &TypeTextTool{screen: screen}
}

func (t *TypeTextTool) Name() string {
	return agent.ToolTypeText
}

func (t *TypeTextTool) Schema() agent.ToolSchema {
	return schemaFor(agent.ToolTypeText)
}

func (t *TypeTextTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	text, _ := params["texto"].(string)
	if err := t.screen.TypeText(ctx, text); err != nil {
		return "", err
	}
	return "Texto digitado.", nil
}
