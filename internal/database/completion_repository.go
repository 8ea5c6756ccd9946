package database

import (
	"context"
	"database/sql"

	"github.com/aitbekov/tirlik/internal/models"
)

// CompletionRepo handles all completion-log database operations
type CompletionRepo struct {
	db *sql.DB
}

const completionColumns = "id, task_id, room_id, date, completed_at"

func scanCompletion(row interface{ Scan(...any) error }) (*models.CompletionLog, error) {
	log := &models.CompletionLog{}
	var completedAt string
	err := row.Scan(&log.ID, &log.TaskID, &log.RoomID, &log.Date, &completedAt)
	if err != nil {
		return nil, err
	}
	log.CompletedAt = parseTime(completedAt)
	return log, nil
}

// Create inserts a completion log. The UNIQUE (task_id, date) constraint
// rejects a second completion of the same task on the same day.
func (r *CompletionRepo) Create(ctx context.Context, log *models.CompletionLog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO completion_logs (id, task_id, room_id, date, completed_at)
		 VALUES (?, ?, ?, ?, ?)`,
		log.ID, log.TaskID, log.RoomID, log.Date, formatTime(log.CompletedAt),
	)
	return err
}

// Delete removes a completion log by id
func (r *CompletionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM completion_logs WHERE id = ?", id)
	return err
}

// GetAll retrieves every completion log
func (r *CompletionRepo) GetAll(ctx context.Context) ([]*models.CompletionLog, error) {
	return r.query(ctx, `SELECT `+completionColumns+` FROM completion_logs`)
}

// GetByDate retrieves all completions on a calendar day
func (r *CompletionRepo) GetByDate(ctx context.Context, date string) ([]*models.CompletionLog, error) {
	return r.query(ctx,
		`SELECT `+completionColumns+` FROM completion_logs WHERE date = ?`, date)
}

// GetByRoom retrieves all completions recorded against a room
func (r *CompletionRepo) GetByRoom(ctx context.Context, roomID string) ([]*models.CompletionLog, error) {
	return r.query(ctx,
		`SELECT `+completionColumns+` FROM completion_logs WHERE room_id = ?`, roomID)
}

// GetByDateRange retrieves completions with start <= date <= end
func (r *CompletionRepo) GetByDateRange(ctx context.Context, start, end string) ([]*models.CompletionLog, error) {
	return r.query(ctx,
		`SELECT `+completionColumns+` FROM completion_logs WHERE date >= ? AND date <= ?`,
		start, end)
}

// GetByTaskAndDate retrieves the completion for a (task, day) pair.
// Returns sql.ErrNoRows when the task is not completed on that day.
func (r *CompletionRepo) GetByTaskAndDate(ctx context.Context, taskID, date string) (*models.CompletionLog, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+completionColumns+` FROM completion_logs WHERE task_id = ? AND date = ?`,
		taskID, date,
	)
	return scanCompletion(row)
}

func (r *CompletionRepo) query(ctx context.Context, q string, args ...any) ([]*models.CompletionLog, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*models.CompletionLog
	for rows.Next() {
		log, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
