// Package completion implements per-day task completion and the streak.
package completion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aitbekov/tirlik/internal/database"
	"github.com/aitbekov/tirlik/internal/models"
	"github.com/aitbekov/tirlik/internal/streak"
)

// Service defines all completion-related business operations
type Service interface {
	// Toggle flips the completion of a task on a calendar day: it deletes the
	// existing log or creates a new one. Returns true when the task ends up
	// completed for that day.
	Toggle(ctx context.Context, taskID, date string) (bool, error)

	ForDate(ctx context.Context, date string) ([]*models.CompletionLog, error)
	ForRoom(ctx context.Context, roomID string) ([]*models.CompletionLog, error)
	ForRange(ctx context.Context, start, end string) ([]*models.CompletionLog, error)
	All(ctx context.Context) ([]*models.CompletionLog, error)

	// Streak computes the current consecutive-day streak over all
	// completions, ending at today.
	Streak(ctx context.Context) (int, error)
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new completion service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) Toggle(ctx context.Context, taskID, date string) (bool, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return false, ErrInvalidDate
	}

	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrTaskNotFound
		}
		return false, err
	}

	existing, err := s.repo.GetCompletionByTaskAndDate(ctx, taskID, date)
	switch {
	case err == nil:
		if err := s.repo.DeleteCompletion(ctx, existing.ID); err != nil {
			return false, fmt.Errorf("failed to remove completion: %w", err)
		}
		return false, nil
	case errors.Is(err, sql.ErrNoRows):
		log := &models.CompletionLog{
			ID:          uuid.NewString(),
			TaskID:      taskID,
			RoomID:      task.RoomID,
			Date:        date,
			CompletedAt: time.Now(),
		}
		if err := s.repo.CreateCompletion(ctx, log); err != nil {
			return false, fmt.Errorf("failed to record completion: %w", err)
		}
		return true, nil
	default:
		return false, err
	}
}

func (s *service) ForDate(ctx context.Context, date string) ([]*models.CompletionLog, error) {
	return s.repo.GetCompletionsByDate(ctx, date)
}

func (s *service) ForRoom(ctx context.Context, roomID string) ([]*models.CompletionLog, error) {
	return s.repo.GetCompletionsByRoom(ctx, roomID)
}

func (s *service) ForRange(ctx context.Context, start, end string) ([]*models.CompletionLog, error) {
	return s.repo.GetCompletionsByDateRange(ctx, start, end)
}

func (s *service) All(ctx context.Context) ([]*models.CompletionLog, error) {
	return s.repo.GetAllCompletions(ctx)
}

func (s *service) Streak(ctx context.Context) (int, error) {
	completions, err := s.repo.GetAllCompletions(ctx)
	if err != nil {
		return 0, err
	}
	return streak.Calculate(completions), nil
}
