// Package app composes the dialogue core and its collaborators from config.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"executive-assistant/config"
	"executive-assistant/internal/agent"
	"executive-assistant/internal/agent/dispatcher"
	"executive-assistant/internal/agent/orchestrator"
	"executive-assistant/internal/agent/planner"
	"executive-assistant/internal/agent/tools"
	"executive-assistant/internal/assistant"
	assistantUC "executive-assistant/internal/assistant/usecase"
	"executive-assistant/internal/conversation"
	"executive-assistant/internal/note/repository"
	"executive-assistant/internal/note/repository/jsonfile"
	"executive-assistant/internal/note/repository/sqlite"
	"executive-assistant/internal/project"
	"executive-assistant/internal/report"
	"executive-assistant/internal/router"
	syncpkg "executive-assistant/internal/sync"
	"executive-assistant/pkg/browser"
	"executive-assistant/pkg/datemath"
	"executive-assistant/pkg/gmail"
	"executive-assistant/pkg/llmprovider"
	"executive-assistant/pkg/log"
	"executive-assistant/pkg/zoho"
)

const (
	RouterSemantic = "semantic"
	RouterKeyword  = "keyword"

	NotesDriverSQLite = "sqlite"
	NotesDriverJSON   = "json"
)

// App holds the shared components of every process surface.
type App struct {
	cfg *config.Config
	l   log.Logger

	Projects *project.Store
	Resolver *project.Resolver
	Notes    repository.Repository
	LLM      llmprovider.Generator
	Registry *agent.ToolRegistry
	Dates    *datemath.Parser

	Gmail   *gmail.Client
	Browser *browser.Driver

	// Sync is nil when the tracker is not configured.
	Sync   syncpkg.UseCase
	Report report.UseCase

	hasLLM  bool
	closers []func() error
}

// New builds every component. Optional integrations that fail to
// initialise are logged and left out.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{cfg: cfg, l: l}

	dates, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		l.Warnf(ctx, "app.New: %v, falling back to UTC", err)
		dates, _ = datemath.NewParser("UTC")
	}
	a.Dates = dates

	a.Projects = project.NewStore(cfg.Projects.Path)
	if snap, err := a.Projects.Reload(); err != nil {
		l.Warnf(ctx, "app.New: no project snapshot yet (%v); run a sync first", err)
	} else {
		l.Infof(ctx, "app.New: loaded %d projects from %s", snap.Len(), cfg.Projects.Path)
	}
	a.Resolver = project.NewResolver(a.Projects, nil)

	if a.Notes, err = openNotes(ctx, cfg.Notes); err != nil {
		return nil, err
	}
	a.closers = append(a.closers, a.Notes.Close)

	a.LLM, a.hasLLM = newLLM(ctx, cfg, l)
	a.initGmail(ctx)
	a.initBrowser()
	a.Registry = a.buildRegistry()
	a.initSync(ctx)

	var mailer agent.Tool
	if t, ok := a.Registry.Get(agent.ToolSendEmail); ok {
		mailer = t
	}
	var progress report.Progress
	if a.Sync != nil {
		progress = a.Sync
	}
	a.Report = report.New(l, a.Projects, progress, a.LLM, mailer, a.Dates, report.Options{
		Recipient:   cfg.Report.Recipient,
		ManagerName: cfg.Assistant.UserName,
	})

	return a, nil
}

// Config returns the loaded configuration.
func (a *App) Config() *config.Config { return a.cfg }

// Logger returns the process logger.
func (a *App) Logger() log.Logger { return a.l }

// Close releases the note store and the browser.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

// NewOrchestrator builds a fresh dialogue for one session.
func (a *App) NewOrchestrator() *orchestrator.Orchestrator {
	ac := a.cfg.Assistant

	var r router.Router
	if ac.Router == RouterKeyword || !a.hasLLM {
		r = router.NewKeyword(a.Resolver, a.l)
	} else {
		r = router.New(a.LLM, a.l, router.Options{Attempts: ac.RetryAttempts, RetryDelay: ac.RetryDelay})
	}

	deps := orchestrator.Dependencies{
		Router:     r,
		Resolver:   a.Resolver,
		Planner:    planner.New(a.LLM, agent.NewSchemaTable(agent.DefaultSchemas...), a.l, planner.Options{Attempts: ac.RetryAttempts, RetryDelay: ac.RetryDelay}),
		Dispatcher: dispatcher.New(a.Registry, a.l, dispatcher.Options{ActionDelay: ac.ActionDelay}),
		Notes:      a.Notes,
		LLM:        a.LLM,
	}
	if a.cfg.Projects.FolderRoot != "" {
		deps.Folders = project.NewFolderKeeper(a.cfg.Projects.FolderRoot)
	}

	return orchestrator.New(deps, a.l, orchestrator.Options{
		Capabilities: orchestrator.Capabilities{
			ConversationMemory: ac.ConversationMemory,
			StructuredLogging:  ac.StructuredLogging,
		},
		UserName:        ac.UserName,
		AssistantName:   ac.AssistantName,
		DataQueryLimit:  ac.DataQueryLimit,
		HelicopterLimit: ac.HelicopterLimit,
		Memory: conversation.Options{
			MaxTurns:       ac.MaxTurns,
			ContextTurns:   ac.ContextTurns,
			ContextChars:   ac.ContextChars,
			UserLabel:      strings.ToUpper(ac.UserName),
			AssistantLabel: strings.ToUpper(ac.AssistantName),
		},
		Location: a.Dates.Location(),
	})
}

// Assistant builds the multi-session use case served by the API.
func (a *App) Assistant() assistant.UseCase {
	return assistantUC.New(a.l, func() assistant.Conversation { return a.NewOrchestrator() },
		a.Projects, a.Notes, assistantUC.Options{
			MaxSessions: a.cfg.Assistant.MaxSessions,
			SessionTTL:  a.cfg.Assistant.SessionTTL,
		})
}

func openNotes(ctx context.Context, cfg config.NotesConfig) (repository.Repository, error) {
	switch cfg.Driver {
	case NotesDriverJSON:
		return jsonfile.New(cfg.Path)
	case NotesDriverSQLite, "":
		return sqlite.New(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("app: unknown notes driver %q", cfg.Driver)
	}
}

// newLLM returns the provider manager. Without providers the manager still
// answers, with ErrNoProvidersConfigured, so the keyword router takes over.
func newLLM(ctx context.Context, cfg *config.Config, l log.Logger) (llmprovider.Generator, bool) {
	mcfg := &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}

	if err := cfg.ValidateLLM(); err != nil {
		l.Warnf(ctx, "app.New: LLM disabled: %v", err)
		return llmprovider.NewManager(nil, mcfg, l), false
	}
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		l.Warnf(ctx, "app.New: LLM disabled: %v", err)
		return llmprovider.NewManager(nil, mcfg, l), false
	}
	return llmprovider.NewManager(providers, mcfg, l), true
}

func (a *App) initGmail(ctx context.Context) {
	gc := a.cfg.Gmail
	if !gc.Enabled {
		return
	}
	client, err := gmail.NewClientFromFiles(ctx, gc.CredentialsPath, gc.TokenPath, gmail.WithSender(gc.SenderAddress, gc.SenderName))
	if err != nil {
		a.l.Warnf(ctx, "app.New: Gmail not available (optional): %v", err)
		a.l.Warn(ctx, "→ Run `go run ./scripts/gmail-auth` to generate token.json")
		return
	}
	a.Gmail = client
}

func (a *App) initBrowser() {
	bc := a.cfg.Browser
	if !bc.Enabled {
		return
	}
	a.Browser = browser.New(browser.Config{
		ControlURL:  bc.ControlURL,
		Headless:    bc.Headless,
		WhatsAppURL: bc.WhatsAppURL,
		Timeout:     bc.Timeout,
	})
	a.closers = append(a.closers, a.Browser.Close)
}

// buildRegistry registers the tools whose collaborators are available.
// The planner still knows every schema; the dispatcher reports the rest as
// not wired.
func (a *App) buildRegistry() *agent.ToolRegistry {
	reg := agent.NewToolRegistry()
	if a.Gmail != nil {
		reg.Register(tools.NewSendEmailTool(a.Gmail, tools.EmailOptions{
			DefaultRecipient: a.cfg.Gmail.DefaultRecipient,
			Signature:        a.cfg.Gmail.SenderName,
		}))
		reg.Register(tools.NewSearchEmailsTool(a.Gmail, a.cfg.Gmail.SearchLimit))
	}
	if a.Browser != nil {
		reg.Register(tools.NewSendWhatsAppTool(a.Browser))
		reg.Register(tools.NewClickTool(a.Browser))
		reg.Register(tools.NewTypeTextTool(a.Browser))
	}
	return reg
}

func (a *App) initSync(ctx context.Context) {
	zc := a.cfg.Zoho
	client, err := zoho.New(ctx, zoho.Config{
		ClientID:     zc.ClientID,
		ClientSecret: zc.ClientSecret,
		RefreshToken: zc.RefreshToken,
		PortalID:     zc.PortalID,
		AccountsURL:  zc.AccountsURL,
		APIURL:       zc.APIURL,
	})
	if err != nil {
		a.l.Infof(ctx, "app.New: tracker sync disabled: %v", err)
		return
	}
	a.Sync = syncpkg.New(a.l, client, a.Projects, syncpkg.Options{
		OwnerID:         zc.OwnerFilter,
		BlockedStatuses: zc.BlockedStatuses,
		OutputPath:      a.cfg.Projects.Path,
		HistoryPath:     zc.HistoryPath,
		Store:           a.Projects,
	})
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
