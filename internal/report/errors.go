package report

import "errors"

var (
	ErrNoMailer = errors.New("report: email delivery is not configured")
)
