package webhook

import "errors"

var (
	ErrInvalidToken = errors.New("invalid secret token")
	ErrIPNotAllowed = errors.New("ip not allowed")
	ErrRateLimited  = errors.New("rate limit exceeded")
)
