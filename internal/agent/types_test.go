package agent_test

import (
	"context"
	"testing"

	"executive-assistant/internal/agent"
)

type mockTool struct {
	schema agent.ToolSchema
}

func (m *mockTool) Name() string             { return m.schema.Name }
func (m *mockTool) Schema() agent.ToolSchema { return m.schema }
func (m *mockTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	return "", nil
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry()

	registry.Register(&mockTool{schema: agent.ToolSchema{Name: "tool2", Description: "desc2"}})
	registry.Register(&mockTool{schema: agent.ToolSchema{Name: "tool1", Description: "desc1"}})

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("tool1")
		if !ok || got.Name() != "tool1" {
			t.Errorf("expected tool1 to be found")
		}
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		_, ok := registry.Get("missing")
		if ok {
			t.Errorf("expected 'missing' tool to not be found")
		}
	})

	t.Run("List tools sorted", func(t *testing.T) {
		tools := registry.List()
		if len(tools) != 2 {
			t.Fatalf("expected 2 tools, got %d", len(tools))
		}
		if tools[0].Name() != "tool1" || tools[1].Name() != "tool2" {
			t.Errorf("unexpected order: %s, %s", tools[0].Name(), tools[1].Name())
		}
	})

	t.Run("SchemaTable", func(t *testing.T) {
		table := registry.SchemaTable()
		if _, ok := table.Get("tool2"); !ok {
			t.Errorf("expected tool2 in schema table")
		}
		if len(table.Schemas()) != 2 {
			t.Errorf("expected 2 schemas, got %d", len(table.Schemas()))
		}
	})
}
