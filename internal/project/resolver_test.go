package project

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"executive-assistant/internal/model"
)

func testSnapshot(t *testing.T, names ...string) *Snapshot {
	t.Helper()
	projects := make([]model.Project, len(names))
	for i, n := range names {
		projects[i] = model.Project{ID: string(rune('a' + i)), Name: n}
	}
	snap, err := NewSnapshot(projects)
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}
	return snap
}

func ids(ps []model.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestLookup_CaseAndAccentInsensitiveSubstring(t *testing.T) {
	r := NewResolver(testSnapshot(t, "Rivelare Clínica", "Hospital Central 12", "Outro"), nil)

	tests := []struct {
		term string
		want []string
	}{
		{"rivelare", []string{"a"}},
		{"RIVELARE", []string{"a"}},
		{"clinica", []string{"a"}},
		{"Clínica", []string{"a"}},
		{"12", []string{"b"}},
		{"1", []string{"b"}},
		{"3", nil},
		{"", nil},
		{"inexistente", nil},
	}
	for _, tt := range tests {
		got := ids(r.Lookup(tt.term))
		if len(got) == 0 {
			got = nil
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Lookup(%q) mismatch (-want +got):\n%s", tt.term, diff)
		}
	}
}

func TestResolve_UnionInFirstAppearanceOrder(t *testing.T) {
	r := NewResolver(testSnapshot(t, "Alfa 1", "Beta 2", "Alfa Beta 3"), nil)

	got := ids(r.Resolve([]string{"beta", "alfa", "beta"}))
	want := []string{"b", "c", "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCode_OnlyBareDigits(t *testing.T) {
	r := NewResolver(testSnapshot(t, "Clínica 2", "Clínica 3", "Projeto X2"), nil)

	if got := ids(r.ResolveCode("o código é 3")); !cmp.Equal(got, []string{"b"}) {
		t.Errorf("ResolveCode(3) = %v", got)
	}
	if got := ids(r.ResolveCode("2!")); !cmp.Equal(got, []string{"a", "c"}) {
		t.Errorf("ResolveCode(2) = %v", got)
	}
	if got := r.ResolveCode("X2"); len(got) != 0 {
		t.Errorf("ResolveCode must ignore non bare digit tokens, got %v", ids(got))
	}
}

func TestSearch_SkipsStopWordsAndShortTerms(t *testing.T) {
	r := NewResolver(testSnapshot(t, "Rivelare - Implantação", "Status Report"), nil)

	if got := ids(r.Search("Qual a situação do projeto Rivelare?")); !cmp.Equal(got, []string{"a"}) {
		t.Errorf("Search = %v", got)
	}
	if got := r.Search("status do dia"); len(got) != 0 {
		t.Errorf("stop word matched: %v", ids(got))
	}
	if got := r.MatchingTerms("como anda a implantacao"); !cmp.Equal(got, []string{"implantacao"}) {
		t.Errorf("MatchingTerms = %v", got)
	}
}

func TestNarrowByToken(t *testing.T) {
	cands := []model.Project{{ID: "a", Name: "Clínica 2"}, {ID: "b", Name: "Clínica 12"}}
	if got := ids(NarrowByToken(cands, "2")); !cmp.Equal(got, []string{"a"}) {
		t.Errorf("NarrowByToken = %v", got)
	}
}

func TestResolver_FollowsStoreReplace(t *testing.T) {
	st := NewStore("unused.json")
	r := NewResolver(st, nil)
	if len(r.Lookup("alfa")) != 0 {
		t.Fatal("empty store must not match")
	}
	st.Replace(testSnapshot(t, "Alfa"))
	if len(r.Lookup("alfa")) != 1 {
		t.Fatal("resolver did not see replaced snapshot")
	}
}
