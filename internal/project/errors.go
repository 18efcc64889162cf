package project

import "errors"

var (
	ErrSnapshotNotFound = errors.New("project snapshot file not found")
	ErrInvalidSnapshot  = errors.New("invalid project snapshot")
	ErrDuplicateID      = errors.New("duplicate project id")
	ErrEmptyName        = errors.New("empty project name")
	ErrEmptySnapshot    = errors.New("no projects loaded")
)
