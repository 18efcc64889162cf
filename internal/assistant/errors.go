package assistant

import "errors"

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrSessionNotFound = errors.New("session not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrEmptyNote       = errors.New("note text is empty")
)
