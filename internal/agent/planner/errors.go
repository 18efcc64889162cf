package planner

import "errors"

var (
	ErrPlanningFailed = errors.New("action planning failed")
	ErrEmptyResponse  = errors.New("empty model response")
)
