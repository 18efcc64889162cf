package agent

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParamType is the wire type of a tool parameter.
type ParamType string

const (
	ParamString ParamType = "string"
	ParamBool   ParamType = "bool"
)

// ParamSpec describes one tool parameter.
type ParamSpec struct {
	Name        string
	Type        ParamType
	Required    bool
	Description string
}

// ToolSchema is the static description of a tool.
type ToolSchema struct {
	Name        string
	Description string
	Params      []ParamSpec
	// Destructive tools drive the UI and get a pre-delay before running.
	Destructive bool
}

// Descriptor is a tool invocation: a PendingAction once validated.
// Param values are string or bool.
type Descriptor struct {
	Tool   string         `json:"tool"`
	Params map[string]any `json:"params"`
}

// String returns the param as a string, or "" when absent.
func (d Descriptor) String(name string) string {
	s, _ := d.Params[name].(string)
	return s
}

// Bool returns the param as a bool, or false when absent.
func (d Descriptor) Bool(name string) bool {
	b, _ := d.Params[name].(bool)
	return b
}

// Clone copies the descriptor so callers cannot mutate a held action.
func (d Descriptor) Clone() Descriptor {
	params := make(map[string]any, len(d.Params))
	for k, v := range d.Params {
		params[k] = v
	}
	return Descriptor{Tool: d.Tool, Params: params}
}

// JSONSchema renders the schema in the JSON-schema shape used by function
// calling models.
func (s ToolSchema) JSONSchema() map[string]any {
	props := make(map[string]any, len(s.Params))
	required := []string{}
	for _, p := range s.Params {
		typ := "string"
		if p.Type == ParamBool {
			typ = "boolean"
		}
		props[p.Name] = map[string]any{"type": typ, "description": p.Description}
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// Validate coerces raw model params into the schema. Unknown params are
// dropped, numbers become strings, "true"/"false" strings become bools.
// A required string param must be non-blank.
func (s ToolSchema) Validate(raw map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s.Params))
	for _, p := range s.Params {
		v, present := raw[p.Name]
		if !present || v == nil {
			if p.Required {
				return nil, fmt.Errorf("%w: %s.%s", ErrMissingParam, s.Name, p.Name)
			}
			continue
		}

		coerced, err := coerce(p.Type, v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrInvalidParam, s.Name, p.Name, err)
		}
		if str, ok := coerced.(string); ok && str == "" {
			if p.Required {
				return nil, fmt.Errorf("%w: %s.%s", ErrMissingParam, s.Name, p.Name)
			}
			continue
		}
		out[p.Name] = coerced
	}
	return out, nil
}

func coerce(typ ParamType, v any) (any, error) {
	switch typ {
	case ParamBool:
		switch b := v.(type) {
		case bool:
			return b, nil
		case string:
			switch strings.ToLower(strings.TrimSpace(b)) {
			case "true", "sim", "1":
				return true, nil
			case "false", "nao", "não", "0", "":
				return false, nil
			}
		}
		return nil, fmt.Errorf("want bool, got %T", v)
	default:
		switch x := v.(type) {
		case string:
			return strings.TrimSpace(x), nil
		case float64:
			return strconv.FormatFloat(x, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(x), nil
		case bool:
			return strconv.FormatBool(x), nil
		}
		return nil, fmt.Errorf("want string, got %T", v)
	}
}

// SchemaTable indexes schemas by tool name.
type SchemaTable struct {
	byName map[string]ToolSchema
	names  []string
}

// NewSchemaTable builds a table. Later schemas with the same name win.
func NewSchemaTable(schemas ...ToolSchema) *SchemaTable {
	t := &SchemaTable{byName: make(map[string]ToolSchema, len(schemas))}
	for _, s := range schemas {
		if _, dup := t.byName[s.Name]; !dup {
			t.names = append(t.names, s.Name)
		}
		t.byName[s.Name] = s
	}
	return t
}

// Get returns the schema for name.
func (t *SchemaTable) Get(name string) (ToolSchema, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// Schemas returns the schemas in registration order.
func (t *SchemaTable) Schemas() []ToolSchema {
	out := make([]ToolSchema, 0, len(t.names))
	for _, n := range t.names {
		out = append(out, t.byName[n])
	}
	return out
}

// Validate checks the tool name and coerces the params of d.
func (t *SchemaTable) Validate(d Descriptor) (Descriptor, error) {
	name := strings.TrimSpace(d.Tool)
	s, ok := t.byName[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownTool, d.Tool)
	}
	params, err := s.Validate(d.Params)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{Tool: name, Params: params}, nil
}

// Describe renders the table as prompt text, one tool per block.
func (t *SchemaTable) Describe() string {
	var sb strings.Builder
	for _, s := range t.Schemas() {
		fmt.Fprintf(&sb, "- %s: %s\n", s.Name, s.Description)
		for _, p := range s.Params {
			req := "opcional"
			if p.Required {
				req = "obrigatório"
			}
			fmt.Fprintf(&sb, "    * %s (%s, %s): %s\n", p.Name, p.Type, req, p.Description)
		}
	}
	return sb.String()
}

// SortedKeys returns the param names of d in lexical order.
func (d Descriptor) SortedKeys() []string {
	keys := make([]string, 0, len(d.Params))
	for k := range d.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
