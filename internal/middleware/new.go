package middleware

import (
	"executive-assistant/pkg/log"
)

type Middleware struct {
	l      log.Logger
	apiKey string
}

// New creates the shared middleware set. An empty apiKey disables Auth.
func New(l log.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}
