package room

import "errors"

// Room-related errors
var (
	// Validation errors
	ErrInvalidRoomID = errors.New("invalid room ID")
	ErrEmptyName     = errors.New("room name is required in both languages")

	// Business logic errors
	ErrRoomNotFound = errors.New("room not found")
	ErrPresetRoom   = errors.New("preset rooms cannot be deleted")
)
