package orchestrator

import (
	"strings"
	"testing"
	"time"
)

func TestBuildTimeContext(t *testing.T) {
	now := time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC) // Friday
	context := buildTimeContext(now, time.UTC)

	for _, want := range []string{
		"Data/Hora atual: 2026-10-16 (sexta-feira), 14:30",
		"Esta semana: de 2026-10-12 a 2026-10-18",
		"Amanhã: 2026-10-17",
	} {
		if !strings.Contains(context, want) {
			t.Errorf("context should contain %q, got:\n%s", want, context)
		}
	}
}

func TestBuildTimeContext_SundayBelongsToPreviousWeek(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC) // Sunday
	context := buildTimeContext(now, time.UTC)

	if !strings.Contains(context, "de 2026-10-12 a 2026-10-18") {
		t.Errorf("unexpected week bounds:\n%s", context)
	}
	if !strings.Contains(context, "(domingo)") {
		t.Errorf("unexpected weekday:\n%s", context)
	}
}

func TestBuildTimeContext_NilLocation(t *testing.T) {
	if buildTimeContext(time.Now(), nil) == "" {
		t.Error("expected non-empty context")
	}
}
