package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aitbekov/tirlik/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations.
// Preset data is cleared so tests start from an empty store.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Clear seeded preset data for fresh tests
	for _, table := range []string{"completion_logs", "tasks", "rooms", "settings"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("Failed to clear %s: %v", table, err)
		}
	}

	return db
}

// setupTestRepo creates a repository over a fresh in-memory database
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t))
}

// testRoom builds an unsaved room with the given name
func testRoom(name string) *models.Room {
	return &models.Room{
		ID:        uuid.NewString(),
		Name:      models.LocalizedName{RU: name, KZ: name + "-kz"},
		Icon:      "home",
		Color:     "sky",
		CreatedAt: time.Now(),
	}
}

// testTask builds an unsaved task in the given room
func testTask(roomID, name string) *models.Task {
	return &models.Task{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		Name:      models.LocalizedName{RU: name, KZ: name + "-kz"},
		CreatedAt: time.Now(),
	}
}

// testCompletion builds an unsaved completion log
func testCompletion(taskID, roomID, date string) *models.CompletionLog {
	return &models.CompletionLog{
		ID:          uuid.NewString(),
		TaskID:      taskID,
		RoomID:      roomID,
		Date:        date,
		CompletedAt: time.Now(),
	}
}

// mustCreateRoom inserts a room or fails the test
func mustCreateRoom(t *testing.T, repo *Repository, name string) *models.Room {
	t.Helper()
	room, err := repo.CreateRoom(context.Background(), testRoom(name))
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	return room
}

// mustCreateTask inserts a task or fails the test
func mustCreateTask(t *testing.T, repo *Repository, roomID, name string) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), testTask(roomID, name))
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	return task
}
