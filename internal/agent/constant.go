package agent

// Tool names. These are the names the model must emit.
const (
	ToolSendWhatsApp = "enviar_whatsapp"
	ToolSendEmail    = "enviar_email"
	ToolSearchEmails = "buscar_emails"
	ToolClick        = "clicar_elemento_visual"
	ToolTypeText     = "digitar_texto"
)

// DefaultSchemas is the static tool table shared by the planner, the gate
// and the dispatcher.
var DefaultSchemas = []ToolSchema{
	{
		Name:        ToolSendWhatsApp,
		Description: "Envia uma mensagem de WhatsApp para um contato.",
		Destructive: true,
		Params: []ParamSpec{
			{Name: "contato", Type: ParamString, Required: true, Description: "Nome do contato como salvo no WhatsApp"},
			{Name: "mensagem", Type: ParamString, Required: true, Description: "Texto da mensagem"},
		},
	},
	{
		Name:        ToolSendEmail,
		Description: "Envia um email em HTML.",
		Params: []ParamSpec{
			{Name: "destinatario", Type: ParamString, Description: "Endereço de email; vazio usa o destinatário padrão"},
			{Name: "assunto", Type: ParamString, Required: true, Description: "Assunto do email"},
			{Name: "corpo_html", Type: ParamString, Required: true, Description: "Corpo do email em HTML"},
		},
	},
	{
		Name:        ToolSearchEmails,
		Description: "Busca emails recentes na caixa de entrada.",
		Params: []ParamSpec{
			{Name: "query", Type: ParamString, Description: "Filtro de busca no formato do Gmail"},
			{Name: "apenas_nao_lidos", Type: ParamBool, Description: "Somente emails não lidos"},
		},
	},
	{
		Name:        ToolClick,
		Description: "Clica em um elemento visível na tela a partir de uma descrição.",
		Destructive: true,
		Params: []ParamSpec{
			{Name: "descricao_elemento", Type: ParamString, Required: true, Description: "Texto ou descrição do botão/link"},
		},
	},
	{
		Name:        ToolTypeText,
		Description: "Digita um texto no campo em foco.",
		Params: []ParamSpec{
			{Name: "texto", Type: ParamString, Required: true, Description: "Texto a digitar"},
		},
	},
}
