package agent

import (
	"context"
	"sort"
)

// Tool is a side-effecting action the assistant can run after confirmation.
type Tool interface {
	// Name returns the tool name the model emits.
	Name() string

	// Schema returns the static parameter schema.
	Schema() ToolSchema

	// Execute runs the tool with validated params and returns a short result.
	Execute(ctx context.Context, params map[string]any) (string, error)
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// SchemaTable builds the schema table of the registered tools.
func (r *ToolRegistry) SchemaTable() *SchemaTable {
	tools := r.List()
	schemas := make([]ToolSchema, 0, len(tools))
	for _, t := range tools {
		schemas = append(schemas, t.Schema())
	}
	return NewSchemaTable(schemas...)
}
