package report

import (
	"time"

	"executive-assistant/internal/agent"
	"executive-assistant/internal/project"
	"executive-assistant/pkg/datemath"
	"executive-assistant/pkg/llmprovider"
	pkgLog "executive-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	projects project.Source
	progress Progress
	llm      llmprovider.Generator
	mailer   agent.Tool
	dates    *datemath.Parser
	opt      Options
}

// New creates the weekly digest use case. llm and mailer are optional:
// without llm the body is rendered from a fixed template, without mailer
// Run cannot send.
func New(
	l pkgLog.Logger,
	projects project.Source,
	progress Progress,
	llm llmprovider.Generator,
	mailer agent.Tool,
	dates *datemath.Parser,
	opt Options,
) UseCase {
	if opt.Subject == "" {
		opt.Subject = DefaultSubject
	}
	if opt.ManagerName == "" {
		opt.ManagerName = DefaultManager
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &implUseCase{
		l:        l,
		projects: projects,
		progress: progress,
		llm:      llm,
		mailer:   mailer,
		dates:    dates,
		opt:      opt,
	}
}
