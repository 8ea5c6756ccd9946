package database

import (
	"context"
	"testing"
)

func TestTaskPositionsScopedToRoom(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	kitchen := mustCreateRoom(t, repo, "Кухня")
	bathroom := mustCreateRoom(t, repo, "Ванная")

	dishes := mustCreateTask(t, repo, kitchen.ID, "Помыть посуду")
	trash := mustCreateTask(t, repo, kitchen.ID, "Вынести мусор")
	sink := mustCreateTask(t, repo, bathroom.ID, "Помыть раковину")

	if dishes.Position != 0 || trash.Position != 1 {
		t.Errorf("kitchen positions = %d, %d; want 0, 1", dishes.Position, trash.Position)
	}
	// Each room numbers its own tasks from zero
	if sink.Position != 0 {
		t.Errorf("bathroom first task position = %d, want 0", sink.Position)
	}

	tasks, err := repo.GetTasksByRoom(ctx, kitchen.ID)
	if err != nil {
		t.Fatalf("GetTasksByRoom failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d kitchen tasks, want 2", len(tasks))
	}
	if tasks[0].ID != dishes.ID || tasks[1].ID != trash.ID {
		t.Error("tasks not ordered by position")
	}
}

func TestTaskCreateRequiresRoom(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	// The foreign key rejects tasks pointing at no room
	_, err := repo.CreateTask(ctx, testTask("missing-room", "Помыть пол"))
	if err == nil {
		t.Fatal("expected foreign key violation for unknown room")
	}
}

func TestTaskDeleteKeepsCompletions(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	room := mustCreateRoom(t, repo, "Кухня")
	task := mustCreateTask(t, repo, room.ID, "Помыть посуду")

	log := testCompletion(task.ID, room.ID, "2026-08-29")
	if err := repo.CreateCompletion(ctx, log); err != nil {
		t.Fatalf("CreateCompletion failed: %v", err)
	}

	if err := repo.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	logs, err := repo.GetAllCompletions(ctx)
	if err != nil {
		t.Fatalf("GetAllCompletions failed: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("got %d completions after task deletion, want 1", len(logs))
	}
}
