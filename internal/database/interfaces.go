// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/aitbekov/tirlik/internal/models"
)

// DataStore defines the unified interface for all data operations needed by
// the services, the backup codec, and the TUI. *Repository satisfies it;
// tests can substitute fakes for the parts they exercise.
type DataStore interface {
	// Rooms
	CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error)
	GetAllRooms(ctx context.Context) ([]*models.Room, error)
	GetRoomByID(ctx context.Context, id string) (*models.Room, error)
	UpdateRoom(ctx context.Context, id string, name models.LocalizedName, icon, color string) error
	DeleteRoom(ctx context.Context, id string) error

	// Tasks
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTasksByRoom(ctx context.Context, roomID string) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// Completion logs
	CreateCompletion(ctx context.Context, log *models.CompletionLog) error
	DeleteCompletion(ctx context.Context, id string) error
	GetAllCompletions(ctx context.Context) ([]*models.CompletionLog, error)
	GetCompletionsByDate(ctx context.Context, date string) ([]*models.CompletionLog, error)
	GetCompletionsByRoom(ctx context.Context, roomID string) ([]*models.CompletionLog, error)
	GetCompletionsByDateRange(ctx context.Context, start, end string) ([]*models.CompletionLog, error)
	GetCompletionByTaskAndDate(ctx context.Context, taskID, date string) (*models.CompletionLog, error)

	// Settings
	GetSetting(ctx context.Context, key string) (*models.Setting, error)
	PutSetting(ctx context.Context, setting *models.Setting) error
	GetAllSettings(ctx context.Context) ([]*models.Setting, error)

	// Backup
	ExportAll(ctx context.Context) ([]models.Room, []models.Task, []models.CompletionLog, []models.Setting, error)
	ReplaceAll(ctx context.Context, rooms []models.Room, tasks []models.Task, logs []models.CompletionLog, settings []models.Setting) error
}
