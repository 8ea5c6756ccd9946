// Package task implements task business logic on top of the data store.
// Tasks have no update operation: create, complete per day, delete.
package task

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

// Service defines all task-related business operations
type Service interface {
	ListByRoom(ctx context.Context, roomID string) ([]*models.Task, error)
	Get(ctx context.Context, id string) (*models.Task, error)
	Create(ctx context.Context, req CreateRequest) (*models.Task, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest encapsulates all data needed to create a task.
// Position within the room is assigned automatically.
type CreateRequest struct {
	RoomID string
	Name   models.LocalizedName
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new task service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) ListByRoom(ctx context.Context, roomID string) ([]*models.Task, error) {
	if roomID == "" {
		return nil, ErrRoomNotFound
	}
	return s.repo.GetTasksByRoom(ctx, roomID)
}

func (s *service) Get(ctx context.Context, id string) (*models.Task, error) {
	if id == "" {
		return nil, ErrInvalidTaskID
	}
	task, err := s.repo.GetTaskByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	return task, err
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Task, error) {
	if req.Name.RU == "" || req.Name.KZ == "" {
		return nil, ErrEmptyName
	}
	if _, err := s.repo.GetRoomByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	task, err := s.repo.CreateTask(ctx, &models.Task{
		ID:        uuid.NewString(),
		RoomID:    req.RoomID,
		Name:      req.Name,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Delete removes a non-preset task. Its completion logs are kept.
func (s *service) Delete(ctx context.Context, id string) error {
	task, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if task.IsPreset {
		return ErrPresetTask
	}

	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
