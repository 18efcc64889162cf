package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"executive-assistant/internal/assistant"
	"executive-assistant/internal/model"
	"executive-assistant/pkg/log"
)

// Chat runs one utterance through the session's conversation. A message
// without a session id starts a new session.
func (uc *implUseCase) Chat(ctx context.Context, msg model.InboundMessage) (assistant.ChatOutput, error) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	id := msg.Scope.SessionID
	if id == "" {
		id = uuid.NewString()
	}
	if log.TraceID(ctx) == "" {
		ctx = log.WithTraceID(ctx, uuid.NewString())
	}

	s := uc.acquire(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	uc.l.Infof(ctx, "uc.Chat: session=%s source=%s user=%s", id, msg.Scope.Source, msg.Scope.UserID)
	reply := s.conv.Handle(ctx, text)

	return assistant.ChatOutput{
		SessionID: id,
		Reply:     reply,
		State:     s.conv.Snapshot(),
	}, nil
}

// Session returns the dialogue state and stored turns of a session.
func (uc *implUseCase) Session(ctx context.Context, sessionID string) (assistant.SessionOutput, error) {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return assistant.SessionOutput{}, assistant.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return assistant.SessionOutput{
		SessionID: sessionID,
		State:     s.conv.Snapshot(),
		Turns:     s.conv.History(),
	}, nil
}

// ClearHistory drops the conversation memory of a session.
func (uc *implUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return assistant.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conv.ClearHistory()
	uc.l.Infof(ctx, "uc.ClearHistory: session=%s", sessionID)
	return nil
}

func (uc *implUseCase) acquire(id string) *conversation {
	uc.poolMu.Lock()
	defer uc.poolMu.Unlock()

	if s, ok := uc.sessions.Get(id); ok {
		return s
	}
	s := &conversation{conv: uc.factory()}
	uc.sessions.Add(id, s)
	return s
}
