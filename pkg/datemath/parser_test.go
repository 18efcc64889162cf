package datemath_test

import (
	"testing"
	"time"

	"executive-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	want := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "Zoho month first", input: "10-14-2026", want: want},
		{name: "ISO", input: "2026-10-14", want: want},
		{name: "Brazilian", input: "14/10/2026", want: want},
		{name: "Padded", input: "  2026-10-14 ", want: want},
		{name: "Empty", input: "", wantErr: true},
		{name: "Placeholder", input: "Sem data", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorkWeek(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 10, 16, 23, 59, 59, 0, time.UTC)

	for _, base := range []time.Time{
		time.Date(2026, 10, 12, 8, 0, 0, 0, time.UTC),  // Monday
		time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC), // Friday
		time.Date(2026, 10, 18, 22, 0, 0, 0, time.UTC), // Sunday
	} {
		gotMon, gotFri := parser.WorkWeek(base)
		if !gotMon.Equal(monday) || !gotFri.Equal(friday) {
			t.Errorf("WorkWeek(%s) = %v..%v", base.Weekday(), gotMon, gotFri)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	a := time.Date(2026, 10, 10, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, 10, 16, 1, 0, 0, 0, time.UTC)

	if got := parser.DaysBetween(a, b); got != 6 {
		t.Errorf("DaysBetween = %d, want 6", got)
	}
	if got := parser.DaysBetween(b, a); got != -6 {
		t.Errorf("DaysBetween reversed = %d, want -6", got)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	start := parser.StartOfDay(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC))
	want := time.Date(2026, 10, 16, 23, 59, 59, 0, time.UTC)
	if got := parser.EndOfDay(start); !got.Equal(want) {
		t.Errorf("EndOfDay() = %v, want %v", got, want)
	}
}
