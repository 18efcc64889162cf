package repository

import "errors"

var (
	ErrEmptyProjectID = errors.New("note: empty project id")
	ErrEmptyText      = errors.New("note: empty text")
)
