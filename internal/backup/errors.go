package backup

import "errors"

// ErrInvalidFormat is the sentinel for every import validation failure.
// Callers branch on it with errors.Is; the message is stable.
var ErrInvalidFormat = errors.New("invalid backup format")
