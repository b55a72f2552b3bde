package report

import "errors"

var (
	ErrInvalidWindow = errors.New("custom window end before start")
	ErrInvalidEvent  = errors.New("event with negative amount")
)
