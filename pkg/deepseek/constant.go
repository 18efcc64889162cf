package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	defaultTimeout = 60 * time.Second

	// ResponseFormatJSON asks the model for a single JSON object
	ResponseFormatJSON = "json_object"
)
