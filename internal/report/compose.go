package report

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"executive-assistant/pkg/llmprovider"
)

const composeSystemPrompt = `Atue como um Secretário Executivo. Escreva um e-mail HTML formal e direto para o %s.
Use os dados para cobrar resultados. Destaque em VERMELHO o que está vencido e estagnado. Destaque em VERDE a evolução.
Não invente dados. Use apenas a lista fornecida. Responda somente com o HTML do corpo.`

var fallbackTemplate = template.Must(template.New("digest").Funcs(template.FuncMap{
	"date": func(d Digest) string { return d.GeneratedAt.Format(reportDateFormat) },
}).Parse(`<p>Olá, {{.Manager}}. Segue o resumo da semana ({{date .Digest}}).</p>
<h3 style="color:#c0392b">Tarefas vencidas</h3>
{{- if .Digest.Overdue}}
{{- range .Digest.Overdue}}
<p><b>{{.Name}}</b></p><ul>
{{- range .Tasks}}<li style="color:#c0392b">{{.Name}} (venceu em {{.Due.Format "02/01"}}, {{.DaysLate}}d de atraso)</li>{{end}}
</ul>
{{- end}}
{{- else}}<p>{{.NoOverdue}}</p>{{end}}
<h3 style="color:#c0392b">Projetos estagnados</h3>
{{- if .Digest.Stagnant}}<ul>
{{- range .Digest.Stagnant}}<li style="color:#c0392b">{{.Name}}: travado em {{.Percent}}%</li>{{end}}
</ul>{{else}}<p>{{.NoStagnation}}</p>{{end}}
{{- if .Digest.Evolved}}
<h3 style="color:#27ae60">Evolução</h3><ul>
{{- range .Digest.Evolved}}<li style="color:#27ae60">{{.Name}}: de {{.Before}}% para {{.After}}% (+{{.Delta}}%)</li>{{end}}
</ul>{{end}}`))

// Compose asks the model to write the email from the pre-processed digest
// and falls back to a fixed template when no model answers.
func (uc *implUseCase) Compose(ctx context.Context, d Digest) string {
	if uc.llm != nil {
		resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
			SystemInstruction: ptr(llmprovider.NewTextMessage(llmprovider.RoleSystem, fmt.Sprintf(composeSystemPrompt, uc.opt.ManagerName))),
			Messages:          []llmprovider.Message{llmprovider.NewTextMessage(llmprovider.RoleUser, Summary(d))},
			Temperature:       composeTemperature,
			MaxTokens:         composeMaxTokens,
		})
		if err == nil {
			if body := stripHTMLFence(resp.Text()); body != "" {
				return body
			}
		}
		uc.l.Warnf(ctx, "report.Compose: model unavailable, using template: %v", err)
	}
	return uc.renderFallback(d)
}

func (uc *implUseCase) renderFallback(d Digest) string {
	var buf bytes.Buffer
	err := fallbackTemplate.Execute(&buf, map[string]any{
		"Manager":      uc.opt.ManagerName,
		"Digest":       d,
		"NoOverdue":    msgNoOverdue,
		"NoStagnation": msgNoStagnation,
	})
	if err != nil {
		return template.HTMLEscapeString(Summary(d))
	}
	return buf.String()
}

// Summary renders the digest as the plain text block given to the model.
func Summary(d Digest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "DATA: %s\n", d.GeneratedAt.Format(reportDateFormat))
	fmt.Fprintf(&sb, "PERÍODO: %s a %s\n\n", d.WeekStart.Format(shortDateFormat), d.WeekEnd.Format(shortDateFormat))

	sb.WriteString("1. TAREFAS VENCIDAS:\n")
	if len(d.Overdue) == 0 {
		sb.WriteString(msgNoOverdue + "\n")
	}
	for _, p := range d.Overdue {
		fmt.Fprintf(&sb, "PROJETO: %s\n", p.Name)
		for _, t := range p.Tasks {
			fmt.Fprintf(&sb, "   - %s (Vencia em %s, %dd atraso)\n", t.Name, t.Due.Format(shortDateFormat), t.DaysLate)
		}
	}

	sb.WriteString("\n2. PROJETOS ESTAGNADOS (Sem mudança de %):\n")
	if len(d.Stagnant) == 0 {
		sb.WriteString(msgNoStagnation + "\n")
	}
	for _, s := range d.Stagnant {
		fmt.Fprintf(&sb, "- %s: Travado em %d%%\n", s.Name, s.Percent)
	}

	sb.WriteString("\n3. EVOLUÇÃO:\n")
	for _, e := range d.Evolved {
		fmt.Fprintf(&sb, "- %s: Avançou de %d%% para %d%% (%+d%%)\n", e.Name, e.Before, e.After, e.Delta)
	}
	return sb.String()
}

func stripHTMLFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```html")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func ptr[T any](v T) *T { return &v }
