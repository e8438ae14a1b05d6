package filter

import "errors"

var (
	// ErrInvalidExpression is returned when a filter expression does not compile
	ErrInvalidExpression = errors.New("invalid filter expression")
	// ErrEvaluation is returned when a compiled expression fails against a task
	ErrEvaluation = errors.New("filter expression failed")
)
