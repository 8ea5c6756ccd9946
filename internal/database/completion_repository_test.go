package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

func TestCompletionUniquePerTaskAndDate(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	room := mustCreateRoom(t, repo, "Кухня")
	task := mustCreateTask(t, repo, room.ID, "Помыть посуду")

	if err := repo.CreateCompletion(ctx, testCompletion(task.ID, room.ID, "2026-08-29")); err != nil {
		t.Fatalf("CreateCompletion failed: %v", err)
	}

	// Second completion of the same task on the same day is rejected
	err := repo.CreateCompletion(ctx, testCompletion(task.ID, room.ID, "2026-08-29"))
	if err == nil {
		t.Fatal("expected unique constraint violation for duplicate (task, date)")
	}

	// Same task on another day is fine
	if err := repo.CreateCompletion(ctx, testCompletion(task.ID, room.ID, "2026-08-30")); err != nil {
		t.Fatalf("CreateCompletion on another day failed: %v", err)
	}
}

func TestCompletionQueries(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	kitchen := mustCreateRoom(t, repo, "Кухня")
	bathroom := mustCreateRoom(t, repo, "Ванная")
	dishes := mustCreateTask(t, repo, kitchen.ID, "Помыть посуду")
	sink := mustCreateTask(t, repo, bathroom.ID, "Помыть раковину")

	for _, log := range []struct {
		taskID, roomID, date string
	}{
		{dishes.ID, kitchen.ID, "2026-08-27"},
		{dishes.ID, kitchen.ID, "2026-08-28"},
		{sink.ID, bathroom.ID, "2026-08-28"},
		{sink.ID, bathroom.ID, "2026-08-29"},
	} {
		if err := repo.CreateCompletion(ctx, testCompletion(log.taskID, log.roomID, log.date)); err != nil {
			t.Fatalf("CreateCompletion failed: %v", err)
		}
	}

	byDate, err := repo.GetCompletionsByDate(ctx, "2026-08-28")
	if err != nil {
		t.Fatalf("GetCompletionsByDate failed: %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("got %d completions on 2026-08-28, want 2", len(byDate))
	}

	byRoom, err := repo.GetCompletionsByRoom(ctx, kitchen.ID)
	if err != nil {
		t.Fatalf("GetCompletionsByRoom failed: %v", err)
	}
	if len(byRoom) != 2 {
		t.Errorf("got %d kitchen completions, want 2", len(byRoom))
	}

	byRange, err := repo.GetCompletionsByDateRange(ctx, "2026-08-28", "2026-08-29")
	if err != nil {
		t.Fatalf("GetCompletionsByDateRange failed: %v", err)
	}
	if len(byRange) != 3 {
		t.Errorf("got %d completions in range, want 3", len(byRange))
	}

	all, err := repo.GetAllCompletions(ctx)
	if err != nil {
		t.Fatalf("GetAllCompletions failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("got %d completions total, want 4", len(all))
	}
}

func TestCompletionGetByTaskAndDate(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	room := mustCreateRoom(t, repo, "Кухня")
	task := mustCreateTask(t, repo, room.ID, "Помыть посуду")

	created := testCompletion(task.ID, room.ID, "2026-08-29")
	if err := repo.CreateCompletion(ctx, created); err != nil {
		t.Fatalf("CreateCompletion failed: %v", err)
	}

	got, err := repo.GetCompletionByTaskAndDate(ctx, task.ID, "2026-08-29")
	if err != nil {
		t.Fatalf("GetCompletionByTaskAndDate failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("got log %s, want %s", got.ID, created.ID)
	}
	if got.RoomID != room.ID {
		t.Errorf("denormalized room = %s, want %s", got.RoomID, room.ID)
	}

	if _, err := repo.GetCompletionByTaskAndDate(ctx, task.ID, "2026-08-30"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("error = %v, want sql.ErrNoRows", err)
	}

	if err := repo.DeleteCompletion(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCompletion failed: %v", err)
	}
	if _, err := repo.GetCompletionByTaskAndDate(ctx, task.ID, "2026-08-29"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("error after delete = %v, want sql.ErrNoRows", err)
	}
}
