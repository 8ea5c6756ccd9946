package database

import (
	"context"
	"database/sql"

	"github.com/aitbekov/tirlik/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	db *sql.DB

	*RoomRepo
	*TaskRepo
	*CompletionRepo
	*SettingsRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:             db,
		RoomRepo:       &RoomRepo{db: db},
		TaskRepo:       &TaskRepo{db: db},
		CompletionRepo: &CompletionRepo{db: db},
		SettingsRepo:   &SettingsRepo{db: db},
	}
}

// Wrapper methods for RoomRepo to keep selectors unambiguous
func (r *Repository) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	return r.RoomRepo.Create(ctx, room)
}

func (r *Repository) GetAllRooms(ctx context.Context) ([]*models.Room, error) {
	return r.RoomRepo.GetAll(ctx)
}

func (r *Repository) GetRoomByID(ctx context.Context, id string) (*models.Room, error) {
	return r.RoomRepo.GetByID(ctx, id)
}

func (r *Repository) UpdateRoom(ctx context.Context, id string, name models.LocalizedName, icon, color string) error {
	return r.RoomRepo.Update(ctx, id, name, icon, color)
}

func (r *Repository) DeleteRoom(ctx context.Context, id string) error {
	return r.RoomRepo.Delete(ctx, id)
}

// Wrapper methods for TaskRepo
func (r *Repository) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, task)
}

func (r *Repository) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	return r.TaskRepo.GetAll(ctx)
}

func (r *Repository) GetTasksByRoom(ctx context.Context, roomID string) ([]*models.Task, error) {
	return r.TaskRepo.GetByRoom(ctx, roomID)
}

func (r *Repository) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	return r.TaskRepo.Delete(ctx, id)
}

// Wrapper methods for CompletionRepo
func (r *Repository) CreateCompletion(ctx context.Context, log *models.CompletionLog) error {
	return r.CompletionRepo.Create(ctx, log)
}

func (r *Repository) DeleteCompletion(ctx context.Context, id string) error {
	return r.CompletionRepo.Delete(ctx, id)
}

func (r *Repository) GetAllCompletions(ctx context.Context) ([]*models.CompletionLog, error) {
	return r.CompletionRepo.GetAll(ctx)
}

func (r *Repository) GetCompletionsByDate(ctx context.Context, date string) ([]*models.CompletionLog, error) {
	return r.CompletionRepo.GetByDate(ctx, date)
}

func (r *Repository) GetCompletionsByRoom(ctx context.Context, roomID string) ([]*models.CompletionLog, error) {
	return r.CompletionRepo.GetByRoom(ctx, roomID)
}

func (r *Repository) GetCompletionsByDateRange(ctx context.Context, start, end string) ([]*models.CompletionLog, error) {
	return r.CompletionRepo.GetByDateRange(ctx, start, end)
}

func (r *Repository) GetCompletionByTaskAndDate(ctx context.Context, taskID, date string) (*models.CompletionLog, error) {
	return r.CompletionRepo.GetByTaskAndDate(ctx, taskID, date)
}

// Wrapper methods for SettingsRepo
func (r *Repository) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	return r.SettingsRepo.Get(ctx, key)
}

func (r *Repository) PutSetting(ctx context.Context, setting *models.Setting) error {
	return r.SettingsRepo.Put(ctx, setting)
}

func (r *Repository) GetAllSettings(ctx context.Context) ([]*models.Setting, error) {
	return r.SettingsRepo.GetAll(ctx)
}
