package sync

import "errors"

var (
	ErrSyncInProgress = errors.New("sync already in progress")
	ErrNoOutputPath   = errors.New("snapshot output path is required")
)
