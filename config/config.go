package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Assistant AssistantConfig
	Projects  ProjectsConfig
	Notes     NotesConfig

	Telegram TelegramConfig
	Gmail    GmailConfig
	Browser  BrowserConfig
	Zoho     ZohoConfig
	Report   ReportConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	Webhook WebhookConfig
	API     APIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig tunes the dialogue core.
type AssistantConfig struct {
	UserName      string // how the manager is labelled in prompts
	AssistantName string
	Router        string // "semantic" or "keyword"
	Timezone      string

	RetryAttempts int
	RetryDelay    time.Duration

	MaxTurns        int
	ContextTurns    int
	ContextChars    int
	DataQueryLimit  int
	HelicopterLimit int
	ActionDelay     time.Duration

	ConversationMemory bool
	StructuredLogging  bool

	WakeWord       string
	SessionTimeout time.Duration
	ContinuousMode bool
	ExitWords      []string

	SessionTTL  time.Duration
	MaxSessions int
}

type ProjectsConfig struct {
	Path       string
	FolderRoot string
	Watch      bool
}

// NotesConfig selects the NoteStore backend: "sqlite" or "json".
type NotesConfig struct {
	Driver string
	Path   string
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
	// NgrokAPI is the local ngrok API used to discover the public URL when
	// WebhookURL is empty.
	NgrokAPI string
	// AllowedChatIDs restricts the bot to these chats. Empty allows all.
	AllowedChatIDs []int64
}

type GmailConfig struct {
	Enabled          bool
	CredentialsPath  string
	TokenPath        string
	DefaultRecipient string
	SenderAddress    string
	SenderName       string
	SearchLimit      int
}

type BrowserConfig struct {
	Enabled     bool
	Headless    bool
	ControlURL  string
	WhatsAppURL string
	Timeout     time.Duration
}

type ZohoConfig struct {
	ClientID        string
	ClientSecret    string
	RefreshToken    string
	PortalID        string
	AccountsURL     string
	APIURL          string
	OwnerFilter     string
	BlockedStatuses []string
	SyncInterval    time.Duration
	HistoryPath     string
}

type ReportConfig struct {
	Recipient string
	SendEmail bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// APIConfig guards the dashboard API. An empty Key disables the check.
type APIConfig struct {
	Key string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant core
	cfg.Assistant.UserName = viper.GetString("assistant.user_name")
	cfg.Assistant.AssistantName = viper.GetString("assistant.assistant_name")
	cfg.Assistant.Router = viper.GetString("assistant.router")
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.RetryAttempts = viper.GetInt("assistant.retry_attempts")
	cfg.Assistant.RetryDelay = viper.GetDuration("assistant.retry_delay")
	cfg.Assistant.MaxTurns = viper.GetInt("assistant.max_turns")
	cfg.Assistant.ContextTurns = viper.GetInt("assistant.context_turns")
	cfg.Assistant.ContextChars = viper.GetInt("assistant.context_chars")
	cfg.Assistant.DataQueryLimit = viper.GetInt("assistant.data_query_limit")
	cfg.Assistant.HelicopterLimit = viper.GetInt("assistant.helicopter_limit")
	cfg.Assistant.ActionDelay = viper.GetDuration("assistant.action_delay")
	cfg.Assistant.ConversationMemory = viper.GetBool("assistant.conversation_memory")
	cfg.Assistant.StructuredLogging = viper.GetBool("assistant.structured_logging")
	cfg.Assistant.WakeWord = viper.GetString("assistant.wake_word")
	cfg.Assistant.SessionTimeout = viper.GetDuration("assistant.session_timeout")
	cfg.Assistant.ContinuousMode = viper.GetBool("assistant.continuous_mode")
	cfg.Assistant.ExitWords = splitList(viper.GetStringSlice("assistant.exit_words"))
	cfg.Assistant.SessionTTL = viper.GetDuration("assistant.session_ttl")
	cfg.Assistant.MaxSessions = viper.GetInt("assistant.max_sessions")

	// Data
	cfg.Projects.Path = viper.GetString("projects.path")
	cfg.Projects.FolderRoot = viper.GetString("projects.folder_root")
	cfg.Projects.Watch = viper.GetBool("projects.watch")
	cfg.Notes.Driver = viper.GetString("notes.driver")
	cfg.Notes.Path = viper.GetString("notes.path")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	cfg.Telegram.AllowedChatIDs = parseIDs(splitList([]string{viper.GetString("telegram.allowed_chat_ids")}))
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.Gmail.Enabled = viper.GetBool("gmail.enabled")
	cfg.Gmail.CredentialsPath = viper.GetString("gmail.credentials_path")
	cfg.Gmail.TokenPath = viper.GetString("gmail.token_path")
	cfg.Gmail.DefaultRecipient = viper.GetString("gmail.default_recipient")
	cfg.Gmail.SenderAddress = viper.GetString("gmail.sender_address")
	cfg.Gmail.SenderName = viper.GetString("gmail.sender_name")
	cfg.Gmail.SearchLimit = viper.GetInt("gmail.search_limit")
	if creds := viper.GetString("gmail_credentials"); creds != "" {
		cfg.Gmail.CredentialsPath = creds
	}

	cfg.Browser.Enabled = viper.GetBool("browser.enabled")
	cfg.Browser.Headless = viper.GetBool("browser.headless")
	cfg.Browser.ControlURL = viper.GetString("browser.control_url")
	cfg.Browser.WhatsAppURL = viper.GetString("browser.whatsapp_url")
	cfg.Browser.Timeout = viper.GetDuration("browser.timeout")

	cfg.Zoho.ClientID = viper.GetString("zoho.client_id")
	cfg.Zoho.ClientSecret = expandEnvVar(viper.GetString("zoho.client_secret"))
	cfg.Zoho.RefreshToken = expandEnvVar(viper.GetString("zoho.refresh_token"))
	cfg.Zoho.PortalID = viper.GetString("zoho.portal_id")
	cfg.Zoho.AccountsURL = viper.GetString("zoho.accounts_url")
	cfg.Zoho.APIURL = viper.GetString("zoho.api_url")
	cfg.Zoho.OwnerFilter = viper.GetString("zoho.owner_filter")
	cfg.Zoho.BlockedStatuses = splitList(viper.GetStringSlice("zoho.blocked_statuses"))
	cfg.Zoho.SyncInterval = viper.GetDuration("zoho.sync_interval")
	cfg.Zoho.HistoryPath = viper.GetString("zoho.history_path")

	cfg.Report.Recipient = viper.GetString("report.recipient")
	cfg.Report.SendEmail = viper.GetBool("report.send_email")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	// env vars arrive as a single comma separated string
	cfg.Webhook.AllowedIPs = splitList([]string{viper.GetString("webhook.allowed_ips")})

	cfg.API.Key = expandEnvVar(viper.GetString("api.key"))

	return cfg, nil
}

// ValidateLLM checks the provider list. Commands that never call a model skip it.
func (c *Config) ValidateLLM() error {
	return validateLLMConfig(&c.LLM)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("assistant.user_name", "GESTOR")
	viper.SetDefault("assistant.assistant_name", "APEX")
	viper.SetDefault("assistant.router", "semantic")
	viper.SetDefault("assistant.timezone", "America/Sao_Paulo")
	viper.SetDefault("assistant.retry_attempts", 3)
	viper.SetDefault("assistant.retry_delay", "2s")
	viper.SetDefault("assistant.max_turns", 20)
	viper.SetDefault("assistant.context_turns", 6)
	viper.SetDefault("assistant.context_chars", 250)
	viper.SetDefault("assistant.data_query_limit", 10)
	viper.SetDefault("assistant.helicopter_limit", 15)
	viper.SetDefault("assistant.action_delay", "1s")
	viper.SetDefault("assistant.conversation_memory", true)
	viper.SetDefault("assistant.structured_logging", true)
	viper.SetDefault("assistant.wake_word", "apex")
	viper.SetDefault("assistant.session_timeout", "60s")
	viper.SetDefault("assistant.continuous_mode", true)
	viper.SetDefault("assistant.exit_words", []string{"sair", "desligar", "encerrar"})
	viper.SetDefault("assistant.session_ttl", "30m")
	viper.SetDefault("assistant.max_sessions", 100)

	viper.SetDefault("projects.path", "db_projetos.json")
	viper.SetDefault("projects.watch", true)
	viper.SetDefault("notes.driver", "sqlite")
	viper.SetDefault("notes.path", "apex_memoria.db")

	viper.SetDefault("gmail.credentials_path", "credentials.json")
	viper.SetDefault("gmail.token_path", "token.json")
	viper.SetDefault("gmail.search_limit", 5)
	viper.SetDefault("gmail.sender_name", "Apex Assistant")
	viper.SetDefault("browser.headless", false)
	viper.SetDefault("browser.whatsapp_url", "https://web.whatsapp.com")
	viper.SetDefault("browser.timeout", "30s")

	viper.SetDefault("zoho.accounts_url", "https://accounts.zoho.com")
	viper.SetDefault("zoho.api_url", "https://projectsapi.zoho.com/restapi")
	viper.SetDefault("zoho.sync_interval", "1h")
	viper.SetDefault("zoho.history_path", "historico_progresso.json")

	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.enabled", true)

	// Router and planner own the 3x retry budget; the manager only falls back.
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}

		enabledCount++
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}

// splitList flattens entries that may hold comma separated values.
func splitList(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, v := range strings.Split(entry, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// parseIDs drops entries that are not integers.
func parseIDs(raw []string) []int64 {
	var out []int64
	for _, v := range raw {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			out = append(out, id)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
