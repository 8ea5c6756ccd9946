package database

import (
	"context"
	"database/sql"

	"github.com/aitbekov/tirlik/internal/models"
)

// TaskRepo handles all task-related database operations
type TaskRepo struct {
	db *sql.DB
}

const taskColumns = "id, room_id, name_ru, name_kz, position, is_preset, created_at"

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	task := &models.Task{}
	var isPreset int
	var createdAt string
	err := row.Scan(
		&task.ID, &task.RoomID, &task.Name.RU, &task.Name.KZ,
		&task.Position, &isPreset, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	task.IsPreset = isPreset != 0
	task.CreatedAt = parseTime(createdAt)
	return task, nil
}

// Create inserts a task, assigning the next position within its room.
// The task's ID and CreatedAt must already be set by the caller.
func (r *TaskRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, room_id, name_ru, name_kz, position, is_preset, created_at)
		 VALUES (?, ?, ?, ?, COALESCE((SELECT MAX(position) + 1 FROM tasks WHERE room_id = ?), 0), ?, ?)`,
		task.ID, task.RoomID, task.Name.RU, task.Name.KZ, task.RoomID,
		boolToInt(task.IsPreset), formatTime(task.CreatedAt),
	)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, task.ID)
}

// GetAll retrieves every task ordered by room and position
func (r *TaskRepo) GetAll(ctx context.Context) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY room_id, position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// GetByRoom retrieves all tasks for a room, ordered by position
func (r *TaskRepo) GetByRoom(ctx context.Context, roomID string) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE room_id = ? ORDER BY position`,
		roomID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// GetByID retrieves a single task
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id,
	)
	return scanTask(row)
}

// Delete removes a task. Completion logs for it are kept.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	return err
}

func collectTasks(rows *sql.Rows) ([]*models.Task, error) {
	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
