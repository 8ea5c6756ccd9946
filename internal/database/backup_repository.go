package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/aitbekov/tirlik/internal/models"
)

// ExportAll reads the full contents of all four tables. It never mutates
// state. Slices are always non-nil so an export of an empty database still
// serializes every collection as a JSON array.
func (r *Repository) ExportAll(ctx context.Context) ([]models.Room, []models.Task, []models.CompletionLog, []models.Setting, error) {
	roomPtrs, err := r.RoomRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	taskPtrs, err := r.TaskRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	logPtrs, err := r.CompletionRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	settingPtrs, err := r.SettingsRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	rooms := make([]models.Room, 0, len(roomPtrs))
	for _, room := range roomPtrs {
		rooms = append(rooms, *room)
	}
	tasks := make([]models.Task, 0, len(taskPtrs))
	for _, task := range taskPtrs {
		tasks = append(tasks, *task)
	}
	logs := make([]models.CompletionLog, 0, len(logPtrs))
	for _, log := range logPtrs {
		logs = append(logs, *log)
	}
	settings := make([]models.Setting, 0, len(settingPtrs))
	for _, setting := range settingPtrs {
		settings = append(settings, *setting)
	}
	return rooms, tasks, logs, settings, nil
}

// ReplaceAll clears all four tables and writes the given records, all inside
// one transaction. A failure anywhere rolls the whole replace back, so a
// reader never observes a half-imported database. Records are written
// verbatim: positions, preset flags, and ids come from the snapshot.
func (r *Repository) ReplaceAll(ctx context.Context, rooms []models.Room, tasks []models.Task, logs []models.CompletionLog, settings []models.Setting) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		// Children first so the room cascade never fires mid-import.
		for _, table := range []string{"completion_logs", "tasks", "rooms", "settings"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return err
			}
		}

		for _, room := range rooms {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO rooms (id, name_ru, name_kz, icon, color, position, is_preset, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				room.ID, room.Name.RU, room.Name.KZ, room.Icon, room.Color,
				room.Position, boolToInt(room.IsPreset), formatTime(room.CreatedAt),
			)
			if err != nil {
				return err
			}
		}
		for _, task := range tasks {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO tasks (id, room_id, name_ru, name_kz, position, is_preset, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				task.ID, task.RoomID, task.Name.RU, task.Name.KZ,
				task.Position, boolToInt(task.IsPreset), formatTime(task.CreatedAt),
			)
			if err != nil {
				return err
			}
		}
		for _, log := range logs {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO completion_logs (id, task_id, room_id, date, completed_at)
				 VALUES (?, ?, ?, ?, ?)`,
				log.ID, log.TaskID, log.RoomID, log.Date, formatTime(log.CompletedAt),
			)
			if err != nil {
				return err
			}
		}
		for _, setting := range settings {
			raw, err := json.Marshal(setting.Value)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
				"INSERT INTO settings (key, value) VALUES (?, ?)",
				setting.Key, string(raw),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
