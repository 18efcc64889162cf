package session

import (
	"context"
	"errors"
	"io"
	"strings"

	"executive-assistant/pkg/log"
)

// Listener yields the next transcribed utterance. An empty string means
// nothing was heard this cycle; io.EOF ends the loop.
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

// Speaker delivers a reply to the user.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Handler is the conversation the loop feeds. *orchestrator.Orchestrator
// satisfies it.
type Handler interface {
	Handle(ctx context.Context, utterance string) string
	ClearHistory()
}

// LoopOptions configures a Loop.
type LoopOptions struct {
	Timer        TimerOptions
	ClearPhrases []string
	// Greet speaks ReplyOnline before the first listen.
	Greet bool
}

// Loop drives Listener, Timer, Handler and Speaker until an exit word,
// io.EOF or ctx cancellation.
type Loop struct {
	l        log.Logger
	handler  Handler
	listener Listener
	speaker  Speaker
	timer    *Timer
	clear    []string
	greet    bool
}

// NewLoop creates a voice-style loop.
func NewLoop(l log.Logger, handler Handler, listener Listener, speaker Speaker, opt LoopOptions) *Loop {
	if opt.ClearPhrases == nil {
		opt.ClearPhrases = DefaultClearPhrases
	}
	return &Loop{
		l:        l,
		handler:  handler,
		listener: listener,
		speaker:  speaker,
		timer:    NewTimer(opt.Timer),
		clear:    opt.ClearPhrases,
		greet:    opt.Greet,
	}
}

// Timer exposes the session state.
func (lp *Loop) Timer() *Timer {
	return lp.timer
}

// Run blocks until the user exits, the listener is exhausted or ctx ends.
func (lp *Loop) Run(ctx context.Context) error {
	if lp.greet {
		lp.speak(ctx, ReplyOnline)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lp.timer.Tick() {
			lp.l.Infof(ctx, "%s: session expired, back to standby", logPrefixRun)
		}

		utterance, err := lp.listener.Listen(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if strings.TrimSpace(utterance) == "" {
			continue
		}

		out := lp.timer.Observe(utterance)
		switch out.Action {
		case Exit:
			lp.speak(ctx, ReplyGoodbye)
			return nil
		case Ignore:
			lp.l.Debugf(ctx, "%s: ignored in %s (%s left): %q", logPrefixRun, lp.timer.State(), lp.timer.Remaining(), utterance)
		case Prompt:
			lp.speak(ctx, ReplyWakePrompt)
		case Forward:
			lp.forward(ctx, out.Utterance)
		}
	}
}

func (lp *Loop) forward(ctx context.Context, utterance string) {
	if lp.isClear(utterance) {
		lp.handler.ClearHistory()
		lp.speak(ctx, ReplyHistoryCleared)
		lp.timer.Touch()
		return
	}

	reply := lp.handler.Handle(ctx, utterance)
	lp.speak(ctx, CleanForSpeech(reply))
	lp.timer.Touch()
}

func (lp *Loop) isClear(utterance string) bool {
	lower := strings.ToLower(utterance)
	for _, p := range lp.clear {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func (lp *Loop) speak(ctx context.Context, text string) {
	if err := lp.speaker.Speak(ctx, text); err != nil {
		lp.l.Warnf(ctx, "%s: speak: %v", logPrefixRun, err)
	}
}
