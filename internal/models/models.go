// Package models defines the domain entities persisted by tirlik.
package models

import "time"

// Language is one of the interface languages supported by the app.
type Language string

const (
	LanguageRU Language = "ru"
	LanguageKZ Language = "kz"
)

// Valid reports whether l is a supported language code.
func (l Language) Valid() bool {
	return l == LanguageRU || l == LanguageKZ
}

// DateLayout is the calendar-day format used by completion logs ("yyyy-MM-dd").
const DateLayout = "2006-01-02"

// SettingLanguage is the settings key holding the interface language.
const SettingLanguage = "language"

// LocalizedName holds a display name in both supported languages.
// Both entries are required for rooms and tasks.
type LocalizedName struct {
	RU string `json:"ru" validate:"required"`
	KZ string `json:"kz" validate:"required"`
}

// In returns the name for the given language, falling back to Russian.
func (n LocalizedName) In(lang Language) string {
	if lang == LanguageKZ && n.KZ != "" {
		return n.KZ
	}
	return n.RU
}

// Room is an area of the house that tasks belong to.
// Preset rooms are seeded on first run; they can be edited but not deleted.
type Room struct {
	ID        string        `json:"id" validate:"required"`
	Name      LocalizedName `json:"name"`
	Icon      string        `json:"icon"`
	Color     string        `json:"color"`
	Position  int           `json:"order" validate:"gte=0"`
	IsPreset  bool          `json:"isPreset"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Task is a recurring chore assigned to a room. Tasks have no update
// operation: they are created, completed per day, and deleted.
type Task struct {
	ID        string        `json:"id" validate:"required"`
	RoomID    string        `json:"roomId" validate:"required"`
	Name      LocalizedName `json:"name"`
	Position  int           `json:"order" validate:"gte=0"`
	IsPreset  bool          `json:"isPreset"`
	CreatedAt time.Time     `json:"createdAt"`
}

// CompletionLog records that a task was done on a calendar day.
// RoomID is denormalized from the task at completion time so the log
// survives task deletion. At most one log exists per (TaskID, Date).
type CompletionLog struct {
	ID          string    `json:"id" validate:"required"`
	TaskID      string    `json:"taskId" validate:"required"`
	RoomID      string    `json:"roomId" validate:"required"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	CompletedAt time.Time `json:"completedAt"`
}

// Setting is an arbitrary key/value pair. The only defined key today is
// SettingLanguage; values round-trip through backups as raw JSON.
type Setting struct {
	Key   string `json:"key" validate:"required"`
	Value any    `json:"value"`
}
