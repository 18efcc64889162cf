package agent

import "errors"

var (
	ErrUnknownTool  = errors.New("unknown tool")
	ErrMissingParam = errors.New("missing required parameter")
	ErrInvalidParam = errors.New("invalid parameter type")
	ErrToolNotWired = errors.New("tool not registered")
)
