package model

import "time"

// Environment names the deployment stage.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Source identifies which surface delivered an utterance.
type Source string

const (
	SourceTelegram  Source = "telegram"
	SourceDashboard Source = "dashboard"
	SourceVoice     Source = "voice"
	SourceCLI       Source = "cli"
)

// Scope is the caller identity resolved by a delivery layer.
type Scope struct {
	UserID    string
	Username  string
	SessionID string
	Source    Source
}

// InboundMessage is one utterance handed from a delivery layer to the assistant.
type InboundMessage struct {
	Scope      Scope
	Text       string
	ReceivedAt time.Time
}
