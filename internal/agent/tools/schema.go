package tools

import (
	"fmt"

	"executive-assistant/internal/agent"
)

func schemaFor(name string) agent.ToolSchema {
	for _, s := range agent.DefaultSchemas {
		if s.Name == name {
			return s
		}
	}
	panic(fmt.Sprintf("tools: no schema for %s", name))
}
