package database

import (
	"context"
	"database/sql"

	"github.com/aitbekov/tirlik/internal/preset"
)

// runMigrations creates the database schema and seeds preset data if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Rooms table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS rooms (
			id TEXT PRIMARY KEY,
			name_ru TEXT NOT NULL,
			name_kz TEXT NOT NULL,
			icon TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL,
			is_preset INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Tasks table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			room_id TEXT NOT NULL,
			name_ru TEXT NOT NULL,
			name_kz TEXT NOT NULL,
			position INTEGER NOT NULL,
			is_preset INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			FOREIGN KEY (room_id) REFERENCES rooms(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_room
		ON tasks(room_id, position)
	`)
	if err != nil {
		return err
	}

	// Completion logs. No foreign keys: logs deliberately survive task and
	// room deletion, and the streak only cares about dates.
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS completion_logs (
			id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL,
			room_id TEXT NOT NULL,
			date TEXT NOT NULL,
			completed_at TEXT NOT NULL,
			UNIQUE (task_id, date)
		)
	`)
	if err != nil {
		return err
	}

	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_completions_date ON completion_logs(date)`,
		`CREATE INDEX IF NOT EXISTS idx_completions_room ON completion_logs(room_id)`,
		`CREATE INDEX IF NOT EXISTS idx_completions_task ON completion_logs(task_id)`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	// Settings table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	return seedPresets(ctx, db)
}

// seedPresets inserts the preset rooms and tasks on first run.
// Seeding only happens while the rooms table is empty, so user deletions of
// non-preset data are never undone.
func seedPresets(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM rooms").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, room := range preset.Rooms() {
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
		for _, task := range preset.Tasks() {
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
		return nil
	})
}
