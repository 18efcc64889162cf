package session

import "testing"

func TestCleanForSpeech(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Tudo certo, senhor.", "Tudo certo, senhor."},
		{"markdown", "**Rivelare** está em 42%.\n\n- Fase: Implantação", "Rivelare está em 42%.. Fase: Implantação"},
		{"html", "<b>Atenção</b><br>Prazo amanhã", "Atenção. Prazo amanhã"},
		{"heading", "# Resumo\nOk", " Resumo. Ok"},
		{"json", `{"tool":"enviar_email"}`, ReplyActionRunning},
		{"fenced json", "Segue:\n```json\n{}\n```", ReplyActionRunning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanForSpeech(tt.in); got != tt.want {
				t.Errorf("CleanForSpeech(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
