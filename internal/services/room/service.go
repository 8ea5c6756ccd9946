// Package room implements room business logic on top of the data store.
package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aitbekov/tirlik/internal/database"
	"github.com/aitbekov/tirlik/internal/models"
)

// Service defines all room-related business operations
type Service interface {
	List(ctx context.Context) ([]*models.Room, error)
	Get(ctx context.Context, id string) (*models.Room, error)
	Create(ctx context.Context, req CreateRequest) (*models.Room, error)
	Update(ctx context.Context, req UpdateRequest) (*models.Room, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest encapsulates all data needed to create a room.
// Display position is assigned automatically.
type CreateRequest struct {
	Name  models.LocalizedName
	Icon  string
	Color string
}

// UpdateRequest encapsulates a room update. Nil fields are left unchanged.
// Preset rooms accept updates like any other room.
type UpdateRequest struct {
	RoomID string
	Name   *models.LocalizedName
	Icon   *string
	Color  *string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new room service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*models.Room, error) {
	return s.repo.GetAllRooms(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*models.Room, error) {
	if id == "" {
		return nil, ErrInvalidRoomID
	}
	room, err := s.repo.GetRoomByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	return room, err
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Room, error) {
	if req.Name.RU == "" || req.Name.KZ == "" {
		return nil, ErrEmptyName
	}

	room, err := s.repo.CreateRoom(ctx, &models.Room{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Icon:      req.Icon,
		Color:     req.Color,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*models.Room, error) {
	room, err := s.Get(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	name := room.Name
	if req.Name != nil {
		if req.Name.RU == "" || req.Name.KZ == "" {
			return nil, ErrEmptyName
		}
		name = *req.Name
	}
	icon := room.Icon
	if req.Icon != nil {
		icon = *req.Icon
	}
	color := room.Color
	if req.Color != nil {
		color = *req.Color
	}

	if err := s.repo.UpdateRoom(ctx, req.RoomID, name, icon, color); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return s.repo.GetRoomByID(ctx, req.RoomID)
}

// Delete removes a non-preset room together with its tasks. Completion
// history for the room is kept so past streaks survive.
func (s *service) Delete(ctx context.Context, id string) error {
	room, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if room.IsPreset {
		return ErrPresetRoom
	}

	if err := s.repo.DeleteRoom(ctx, id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
