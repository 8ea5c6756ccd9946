package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/aitbekov/tirlik/internal/models"
)

func TestSettingsUpsert(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	if _, err := repo.GetSetting(ctx, "language"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("GetSetting(unset) error = %v, want sql.ErrNoRows", err)
	}

	if err := repo.PutSetting(ctx, &models.Setting{Key: "language", Value: "ru"}); err != nil {
		t.Fatalf("PutSetting failed: %v", err)
	}
	got, err := repo.GetSetting(ctx, "language")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if got.Value != "ru" {
		t.Errorf("value = %v, want ru", got.Value)
	}

	// Put on the same key overwrites
	if err := repo.PutSetting(ctx, &models.Setting{Key: "language", Value: "kz"}); err != nil {
		t.Fatalf("PutSetting (update) failed: %v", err)
	}
	got, err = repo.GetSetting(ctx, "language")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if got.Value != "kz" {
		t.Errorf("value after upsert = %v, want kz", got.Value)
	}

	all, err := repo.GetAllSettings(ctx)
	if err != nil {
		t.Fatalf("GetAllSettings failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d settings, want 1", len(all))
	}
}

func TestSettingsArbitraryValues(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	// Non-string values from imported backups must round-trip
	if err := repo.PutSetting(ctx, &models.Setting{Key: "installedAt", Value: map[string]any{"ts": "2026-01-01"}}); err != nil {
		t.Fatalf("PutSetting failed: %v", err)
	}
	got, err := repo.GetSetting(ctx, "installedAt")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	value, ok := got.Value.(map[string]any)
	if !ok {
		t.Fatalf("value = %T, want map", got.Value)
	}
	if value["ts"] != "2026-01-01" {
		t.Errorf("value[ts] = %v, want 2026-01-01", value["ts"])
	}
}
