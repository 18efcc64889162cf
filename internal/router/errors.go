package router

import "errors"

var (
	ErrClassificationFailed = errors.New("intent classification failed")
	ErrEmptyResponse        = errors.New("empty model response")
	ErrMalformedResponse    = errors.New("malformed model response")
	ErrUnknownCategory      = errors.New("unknown category")
)
