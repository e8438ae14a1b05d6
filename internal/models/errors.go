package models

import "errors"

var (
	// ErrInvalidPriority indicates a priority string that matches none of Priorities
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidDueDate indicates a due date that is neither YYYY-MM-DD nor RFC 3339
	ErrInvalidDueDate = errors.New("invalid due date")
)
