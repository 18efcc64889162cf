package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"executive-assistant/config"
	"executive-assistant/internal/agent"
	"executive-assistant/internal/model"
	"executive-assistant/pkg/log"
)

const projectsJSON = `[
	{"id": 1, "name": "Rivelare", "percent_complete": 42, "tasks": [{"name": "Kickoff", "status": "Open", "tasklist": "Fase 1"}]},
	{"id": "2", "name": "Clínica 2", "percent_complete": "10"}
]`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "db_projetos.json")
	require.NoError(t, os.WriteFile(path, []byte(projectsJSON), 0o644))

	cfg := &config.Config{}
	cfg.Assistant.Timezone = "UTC"
	cfg.Assistant.Router = RouterSemantic
	cfg.Assistant.ConversationMemory = true
	cfg.Assistant.RetryDelay = -1
	cfg.Assistant.ActionDelay = -1
	cfg.Projects.Path = path
	cfg.Notes.Driver = NotesDriverJSON
	cfg.Notes.Path = filepath.Join(dir, "notes.json")
	return cfg
}

func TestNew_WithoutOptionalIntegrations(t *testing.T) {
	a, err := New(context.Background(), testConfig(t), log.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	assert.Equal(t, 2, a.Projects.Snapshot().Len())
	assert.Nil(t, a.Sync, "tracker sync needs credentials")
	assert.Nil(t, a.Gmail)
	assert.Empty(t, a.Registry.List())
	assert.NotNil(t, a.Report)
}

func TestNew_UnknownNotesDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Notes.Driver = "postgres"
	_, err := New(context.Background(), cfg, log.NewNop())
	assert.Error(t, err)
}

func TestNewOrchestrator_KeywordFallbackWritesNotes(t *testing.T) {
	a, err := New(context.Background(), testConfig(t), log.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	o := a.NewOrchestrator()
	reply := o.Handle(context.Background(), "anote no Rivelare que o cliente aprovou o layout")
	assert.NotEmpty(t, reply)

	notes, err := a.Notes.ReadAll(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "aprovou o layout")
	assert.Equal(t, 2, o.Snapshot().Turns)
}

func TestAssistant_ChatAndDispatchNotWired(t *testing.T) {
	a, err := New(context.Background(), testConfig(t), log.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	uc := a.Assistant()
	out, err := uc.Chat(context.Background(), model.InboundMessage{
		Scope: model.Scope{SessionID: "s1", Source: model.SourceCLI},
		Text:  "bom dia",
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", out.SessionID)
	assert.NotEmpty(t, out.Reply)

	_, ok := a.Registry.Get(agent.ToolSendEmail)
	assert.False(t, ok)
}
