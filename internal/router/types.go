package router

// Category is the coarse intent of an utterance.
type Category string

const (
	CategorySmallTalk   Category = "SMALL_TALK"
	CategoryDataQuery   Category = "DATA_QUERY"
	CategoryAction      Category = "ACTION"
	CategoryMemoryWrite Category = "MEMORY_WRITE"
	CategorySystemError Category = "SYSTEM_ERROR"
)

// legacyCategories maps the older Portuguese labels onto categories.
var legacyCategories = map[string]Category{
	"CONVERSA":      CategorySmallTalk,
	"CONSULTA_ZOHO": CategoryDataQuery,
	"CONSULTA":      CategoryDataQuery,
	"ACAO_SISTEMA":  CategoryAction,
	"MEMORIA":       CategoryMemoryWrite,
}

// ParseCategory accepts canonical and legacy labels. SYSTEM_ERROR is never
// a valid model answer.
func ParseCategory(s string) (Category, bool) {
	switch c := Category(s); c {
	case CategorySmallTalk, CategoryDataQuery, CategoryAction, CategoryMemoryWrite:
		return c, true
	}
	c, ok := legacyCategories[s]
	return c, ok
}

// Output is the classification of one utterance.
type Output struct {
	Category          Category `json:"category"`
	MentionedEntities []string `json:"mentioned_entities"`
	DetectedAction    string   `json:"detected_action,omitempty"`
	// Global marks portfolio-wide questions ("quantos projetos...").
	Global bool `json:"global,omitempty"`
}

// modelOutput is the JSON the model is asked to emit. Both the Portuguese
// and English keys are accepted.
type modelOutput struct {
	Categoria           string   `json:"categoria"`
	Category            string   `json:"category"`
	ProjetosMencionados []string `json:"projetos_mencionados"`
	MentionedEntities   []string `json:"mentioned_entities"`
	AcaoDetectada       *string  `json:"acao_detectada"`
	DetectedAction      *string  `json:"detected_action"`
	ConsultaGlobal      bool     `json:"consulta_global"`
	Global              bool     `json:"global"`
}
