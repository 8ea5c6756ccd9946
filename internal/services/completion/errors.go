package completion

import "errors"

// Completion-related errors
var (
	ErrInvalidDate  = errors.New("date must be in yyyy-MM-dd form")
	ErrTaskNotFound = errors.New("task not found")
)
