package database

import (
	"context"
	"database/sql"

	"github.com/aitbekov/tirlik/internal/models"
)

// RoomRepo handles all room-related database operations
type RoomRepo struct {
	db *sql.DB
}

const roomColumns = "id, name_ru, name_kz, icon, color, position, is_preset, created_at"

func scanRoom(row interface{ Scan(...any) error }) (*models.Room, error) {
	room := &models.Room{}
	var isPreset int
	var createdAt string
	err := row.Scan(
		&room.ID, &room.Name.RU, &room.Name.KZ, &room.Icon, &room.Color,
		&room.Position, &isPreset, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	room.IsPreset = isPreset != 0
	room.CreatedAt = parseTime(createdAt)
	return room, nil
}

// Create inserts a room, assigning the next display position.
// The room's ID and CreatedAt must already be set by the caller.
func (r *RoomRepo) Create(ctx context.Context, room *models.Room) (*models.Room, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rooms (id, name_ru, name_kz, icon, color, position, is_preset, created_at)
		 VALUES (?, ?, ?, ?, ?, COALESCE((SELECT MAX(position) + 1 FROM rooms), 0), ?, ?)`,
		room.ID, room.Name.RU, room.Name.KZ, room.Icon, room.Color,
		boolToInt(room.IsPreset), formatTime(room.CreatedAt),
	)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, room.ID)
}

// GetAll retrieves every room ordered by display position
func (r *RoomRepo) GetAll(ctx context.Context) ([]*models.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms ORDER BY position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// GetByID retrieves a single room
func (r *RoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id,
	)
	return scanRoom(row)
}

// Update replaces a room's name, icon, and color. Position, preset flag,
// and creation time are immutable.
func (r *RoomRepo) Update(ctx context.Context, id string, name models.LocalizedName, icon, color string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET name_ru = ?, name_kz = ?, icon = ?, color = ? WHERE id = ?`,
		name.RU, name.KZ, icon, color, id,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a room. Its tasks go with it via ON DELETE CASCADE;
// completion logs are kept so past streaks stay intact.
func (r *RoomRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = ?", id)
	return err
}
