package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrEmptyName     = errors.New("task name is required in both languages")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
	ErrRoomNotFound = errors.New("room not found")
	ErrPresetTask   = errors.New("preset tasks cannot be deleted")
)
