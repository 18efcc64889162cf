package project

import (
	"strings"
	"unicode/utf8"

	"executive-assistant/internal/model"
)

const minTermRunes = 4

// DefaultStopWords are ignored when extracting search terms from an utterance.
var DefaultStopWords = []string{
	"anote", "que", "sobre", "projeto", "projetos", "no", "na", "o", "a", "para",
	"fase", "status", "apex", "situacao", "situação", "clique", "mande", "leia",
	"email", "whatsapp", "mensagem", "qual", "como", "esta", "está",
}

// Resolver maps names and numeric codes onto projects of the current snapshot.
// Matching is case and accent insensitive substring matching on the name.
type Resolver struct {
	source    Source
	stopWords map[string]bool
}

// NewResolver creates a resolver. A nil stopWords uses DefaultStopWords.
func NewResolver(source Source, stopWords []string) *Resolver {
	if stopWords == nil {
		stopWords = DefaultStopWords
	}
	sw := make(map[string]bool, len(stopWords))
	for _, w := range stopWords {
		sw[Normalize(w)] = true
	}
	return &Resolver{source: source, stopWords: sw}
}

// Snapshot exposes the snapshot the resolver currently reads.
func (r *Resolver) Snapshot() *Snapshot {
	return r.source.Snapshot()
}

// Lookup returns every project whose name contains term.
func (r *Resolver) Lookup(term string) []model.Project {
	needle := Normalize(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}

	var out []model.Project
	for _, p := range r.source.Snapshot().All() {
		if strings.Contains(Normalize(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Resolve looks up each name and returns the union in order of first appearance.
func (r *Resolver) Resolve(names []string) []model.Project {
	seen := make(map[string]bool)
	var out []model.Project
	for _, name := range names {
		for _, p := range r.Lookup(name) {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			out = append(out, p)
		}
	}
	return out
}

// ResolveCode matches the bare numeric tokens of utterance against project names.
func (r *Resolver) ResolveCode(utterance string) []model.Project {
	return r.Resolve(DigitTokens(utterance))
}

// Terms extracts the searchable words of an utterance: longer than three
// runes and not a stop word.
func (r *Resolver) Terms(utterance string) []string {
	var out []string
	for _, tok := range Tokens(utterance) {
		n := Normalize(tok)
		if utf8.RuneCountInString(n) < minTermRunes || r.stopWords[n] || IsDigits(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Search resolves the keyword terms of utterance.
func (r *Resolver) Search(utterance string) []model.Project {
	return r.Resolve(r.Terms(utterance))
}

// MatchingTerms returns the terms of utterance that hit at least one project.
func (r *Resolver) MatchingTerms(utterance string) []string {
	var out []string
	for _, t := range r.Terms(utterance) {
		if len(r.Lookup(t)) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// NarrowByToken keeps the candidates whose name contains code as a whole
// token, e.g. "2" matches "Clínica 2" but not "Clínica 12".
func NarrowByToken(candidates []model.Project, code string) []model.Project {
	code = Normalize(code)
	var out []model.Project
	for _, p := range candidates {
		for _, tok := range Tokens(p.Name) {
			if Normalize(tok) == code {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
