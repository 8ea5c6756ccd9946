// Package backup implements the versioned export/import snapshot format.
//
// An export is a plain read of all four collections; an import validates the
// candidate snapshot first and then replaces the store contents in a single
// transaction. Validation failures leave the store untouched.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aitbekov/tirlik/internal/database"
	"github.com/aitbekov/tirlik/internal/models"
)

// Version is the snapshot format version this build reads and writes.
const Version = 1

// Snapshot is the portable backup document described in the file format:
// a version marker, the export timestamp, and the raw records of all four
// collections.
type Snapshot struct {
	Version        int                    `json:"version"`
	ExportedAt     time.Time              `json:"exportedAt"`
	Rooms          []models.Room          `json:"rooms"`
	Tasks          []models.Task          `json:"tasks"`
	CompletionLogs []models.CompletionLog `json:"completionLogs"`
	Settings       []models.Setting       `json:"settings"`
}

// Service is the backup codec over a data store.
type Service struct {
	store    database.DataStore
	strict   bool
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithStrict enables per-record validation on import: every record must
// satisfy the entity invariants and every task must reference a room present
// in the snapshot. The default matches the original shape-only contract.
func WithStrict() Option {
	return func(s *Service) { s.strict = true }
}

// withNow overrides the clock; used by tests.
func withNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a backup codec over the given store.
func NewService(store database.DataStore, opts ...Option) *Service {
	s := &Service{
		store:    store,
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Export reads the complete contents of all four collections and wraps them
// in a version-1 snapshot. It never mutates state.
func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	rooms, tasks, logs, settings, err := s.store.ExportAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}
	return &Snapshot{
		Version:        Version,
		ExportedAt:     s.now(),
		Rooms:          rooms,
		Tasks:          tasks,
		CompletionLogs: logs,
		Settings:       settings,
	}, nil
}

// Import validates the snapshot and atomically replaces the store contents
// with its records. On any validation error nothing is written; a failure
// during the write phase rolls the transaction back, so the store is only
// ever fully pre-import or fully post-import.
func (s *Service) Import(ctx context.Context, snap *Snapshot) error {
	if err := s.Validate(snap); err != nil {
		return err
	}
	if err := s.store.ReplaceAll(ctx, snap.Rooms, snap.Tasks, snap.CompletionLogs, snap.Settings); err != nil {
		return fmt.Errorf("failed to replace store contents: %w", err)
	}
	return nil
}

// Validate checks the snapshot without touching the store. Shape checks
// follow the base contract: non-nil snapshot, exact version match, all four
// collections present as sequences. In strict mode every record is also
// checked against the entity invariants.
func (s *Service) Validate(snap *Snapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: no data", ErrInvalidFormat)
	}
	if snap.Version != Version {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidFormat, snap.Version)
	}
	for _, coll := range []struct {
		name    string
		present bool
	}{
		{"rooms", snap.Rooms != nil},
		{"tasks", snap.Tasks != nil},
		{"completionLogs", snap.CompletionLogs != nil},
		{"settings", snap.Settings != nil},
	} {
		if !coll.present {
			return fmt.Errorf("%w: %s is missing or not a list", ErrInvalidFormat, coll.name)
		}
	}
	if s.strict {
		return s.validateRecords(snap)
	}
	return nil
}

func (s *Service) validateRecords(snap *Snapshot) error {
	roomIDs := make(map[string]struct{}, len(snap.Rooms))
	for i, room := range snap.Rooms {
		if err := s.validate.Struct(room); err != nil {
			return fmt.Errorf("%w: rooms[%d]: %v", ErrInvalidFormat, i, err)
		}
		roomIDs[room.ID] = struct{}{}
	}
	for i, task := range snap.Tasks {
		if err := s.validate.Struct(task); err != nil {
			return fmt.Errorf("%w: tasks[%d]: %v", ErrInvalidFormat, i, err)
		}
		if _, ok := roomIDs[task.RoomID]; !ok {
			return fmt.Errorf("%w: tasks[%d]: unknown room %q", ErrInvalidFormat, i, task.RoomID)
		}
	}
	// Completion logs may reference deleted tasks and rooms; only the record
	// shape is checked.
	for i, log := range snap.CompletionLogs {
		if err := s.validate.Struct(log); err != nil {
			return fmt.Errorf("%w: completionLogs[%d]: %v", ErrInvalidFormat, i, err)
		}
	}
	for i, setting := range snap.Settings {
		if err := s.validate.Struct(setting); err != nil {
			return fmt.Errorf("%w: settings[%d]: %v", ErrInvalidFormat, i, err)
		}
	}
	return nil
}

// Decode parses a snapshot from JSON. Structural problems (the document is
// not an object, a collection is not a sequence) surface as ErrInvalidFormat
// rather than bare unmarshal errors so callers can branch on one sentinel.
func Decode(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// Probe the collection fields before unmarshalling records: a field like
	// "rooms": 5 must read as a format error, not a Go type mismatch.
	var raw struct {
		Version        *int            `json:"version"`
		ExportedAt     json.RawMessage `json:"exportedAt"`
		Rooms          json.RawMessage `json:"rooms"`
		Tasks          json.RawMessage `json:"tasks"`
		CompletionLogs json.RawMessage `json:"completionLogs"`
		Settings       json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	for _, coll := range []struct {
		name string
		raw  json.RawMessage
	}{
		{"rooms", raw.Rooms},
		{"tasks", raw.Tasks},
		{"completionLogs", raw.CompletionLogs},
		{"settings", raw.Settings},
	} {
		if coll.raw != nil && !isJSONArray(coll.raw) {
			return nil, fmt.Errorf("%w: %s is not a list", ErrInvalidFormat, coll.name)
		}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &snap, nil
}

// Encode writes the snapshot as indented UTF-8 JSON.
func Encode(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
