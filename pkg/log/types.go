package log

// ZapConfig configures the zap backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" or anything else for development
	Encoding     string // console or json
	ColorEnabled bool
}

const (
	ModeProduction   = "production"
	EncodingJSON     = "json"
	EncodingConsole  = "console"
	fieldTraceID     = "trace_id"
	fieldSessionID   = "session_id"
	defaultLogLevel  = "info"
	callerSkipFrames = 1
)
