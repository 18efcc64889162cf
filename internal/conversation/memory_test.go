package conversation

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"executive-assistant/internal/model"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func exchange(m *Memory, n int) {
	for i := 0; i < n; i++ {
		m.Append(model.RoleUser, fmt.Sprintf("u%d", i))
		m.Append(model.RoleAssistant, fmt.Sprintf("a%d", i))
	}
}

func assertPaired(t *testing.T, turns []model.Turn) {
	t.Helper()
	require.Equal(t, 0, len(turns)%2, "window must be even: %v", turns)
	for i := 0; i < len(turns); i += 2 {
		assert.Equal(t, model.RoleUser, turns[i].Role)
		assert.Equal(t, model.RoleAssistant, turns[i+1].Role)
		assert.Equal(t, strings.TrimPrefix(turns[i].Content, "u"), strings.TrimPrefix(turns[i+1].Content, "a"))
	}
}

func TestAppend_TruncatesOldestPairs(t *testing.T) {
	m := New(Options{MaxTurns: 4, Now: fixedClock()})
	exchange(m, 5)

	turns := m.Turns()
	require.Len(t, turns, 4)
	assert.Equal(t, "u3", turns[0].Content)
	assertPaired(t, turns)
}

func TestAppend_NeverKeepsOrphanAssistantAtHead(t *testing.T) {
	m := New(Options{MaxTurns: 4, Now: fixedClock()})
	m.Append(model.RoleUser, "u0")
	m.Append(model.RoleAssistant, "a0")
	m.Append(model.RoleUser, "u1")
	m.Append(model.RoleAssistant, "a1")
	m.Append(model.RoleUser, "u2") // log: u0 a0 u1 a1 u2 -> drop u0, then orphan a0

	turns := m.Turns()
	require.NotEmpty(t, turns)
	assert.Equal(t, model.RoleUser, turns[0].Role)
	assert.Equal(t, "u1", turns[0].Content)
}

func TestWindow_EvenAlignedForEveryK(t *testing.T) {
	m := New(Options{MaxTurns: 20, Now: fixedClock()})
	exchange(m, 4)
	m.Append(model.RoleUser, "pending") // unanswered user turn is never windowed

	for k := 0; k <= 12; k++ {
		w := m.Window(k)
		assert.LessOrEqual(t, len(w), k)
		assertPaired(t, w)
		if len(w) > 0 {
			assert.Equal(t, "a3", w[len(w)-1].Content, "k=%d must end with the latest pair", k)
		}
	}
	assert.Len(t, m.Window(3), 2)
	assert.Len(t, m.Window(100), 8)
}

func TestContext_FormatAndTruncation(t *testing.T) {
	m := New(Options{ContextTurns: 2, ContextChars: 5, Now: fixedClock()})
	assert.Empty(t, m.Context())

	m.Append(model.RoleUser, "bom dia APEX")
	m.Append(model.RoleAssistant, "Bom dia, senhor.")

	got := m.Context()
	want := "[CONTEXTO RECENTE]\n" +
		"[10:00:01] GESTOR: bom d...\n" +
		"[10:00:02] APEX: Bom d...\n" +
		"[FIM DO CONTEXTO]\n"
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"GESTOR: bom d...", "APEX: Bom d..."}, m.History())
}

func TestClear(t *testing.T) {
	m := New(Options{})
	exchange(m, 2)
	m.Clear()
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Context())
}
