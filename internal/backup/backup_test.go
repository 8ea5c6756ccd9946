package backup

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aitbekov/tirlik/internal/database"
	"github.com/aitbekov/tirlik/internal/models"
)

func setupTestStore(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to init test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	repo := database.NewRepository(db)
	// Start from an empty store rather than the seeded presets
	err = repo.ReplaceAll(context.Background(),
		[]models.Room{}, []models.Task{}, []models.CompletionLog{}, []models.Setting{})
	if err != nil {
		t.Fatalf("failed to clear test database: %v", err)
	}
	return repo
}

func testSnapshot() *Snapshot {
	room := models.Room{
		ID:        "r1",
		Name:      models.LocalizedName{RU: "Кухня", KZ: "Ас үй"},
		Icon:      "chef-hat",
		Color:     "orange",
		CreatedAt: time.Now(),
	}
	task := models.Task{
		ID:        "t1",
		RoomID:    "r1",
		Name:      models.LocalizedName{RU: "Помыть посуду", KZ: "Ыдыс жуу"},
		CreatedAt: time.Now(),
	}
	log := models.CompletionLog{
		ID: "c1", TaskID: "t1", RoomID: "r1", Date: "2026-08-29", CompletedAt: time.Now(),
	}
	return &Snapshot{
		Version:        Version,
		ExportedAt:     time.Now(),
		Rooms:          []models.Room{room},
		Tasks:          []models.Task{task},
		CompletionLogs: []models.CompletionLog{log},
		Settings:       []models.Setting{{Key: "language", Value: "ru"}},
	}
}

func TestValidateRejections(t *testing.T) {
	svc := NewService(setupTestStore(t))

	tests := []struct {
		name string
		snap *Snapshot
	}{
		{"nil snapshot", nil},
		{"version zero", &Snapshot{
			Rooms: []models.Room{}, Tasks: []models.Task{},
			CompletionLogs: []models.CompletionLog{}, Settings: []models.Setting{},
		}},
		{"future version", func() *Snapshot {
			s := testSnapshot()
			s.Version = 2
			return s
		}()},
		{"missing rooms", func() *Snapshot {
			s := testSnapshot()
			s.Rooms = nil
			return s
		}()},
		{"missing tasks", func() *Snapshot {
			s := testSnapshot()
			s.Tasks = nil
			return s
		}()},
		{"missing completion logs", func() *Snapshot {
			s := testSnapshot()
			s.CompletionLogs = nil
			return s
		}()},
		{"missing settings", func() *Snapshot {
			s := testSnapshot()
			s.Settings = nil
			return s
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Validate(tt.snap)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("error %v does not match ErrInvalidFormat", err)
			}
		})
	}
}

func TestValidateAcceptsEmptyCollections(t *testing.T) {
	svc := NewService(setupTestStore(t))
	snap := &Snapshot{
		Version:        Version,
		Rooms:          []models.Room{},
		Tasks:          []models.Task{},
		CompletionLogs: []models.CompletionLog{},
		Settings:       []models.Setting{},
	}
	if err := svc.Validate(snap); err != nil {
		t.Errorf("empty collections should be valid: %v", err)
	}
}

func TestImportRejectionLeavesStoreUntouched(t *testing.T) {
	repo := setupTestStore(t)
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Import(ctx, testSnapshot()); err != nil {
		t.Fatalf("seed import failed: %v", err)
	}

	bad := testSnapshot()
	bad.Version = 99
	if err := svc.Import(ctx, bad); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	snap, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(snap.Rooms) != 1 || snap.Rooms[0].ID != "r1" {
		t.Errorf("store changed after rejected import: %+v", snap.Rooms)
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	repo := setupTestStore(t)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	svc := NewService(repo, withNow(func() time.Time { return now }))
	ctx := context.Background()

	if err := svc.Import(ctx, testSnapshot()); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	snap, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if snap.Version != Version {
		t.Errorf("version = %d, want %d", snap.Version, Version)
	}
	if !snap.ExportedAt.Equal(now) {
		t.Errorf("exportedAt = %v, want %v", snap.ExportedAt, now)
	}
	if len(snap.Rooms) != 1 || snap.Rooms[0].ID != "r1" {
		t.Fatalf("rooms = %+v", snap.Rooms)
	}
	if snap.Rooms[0].Name.RU != "Кухня" || snap.Rooms[0].Name.KZ != "Ас үй" {
		t.Errorf("room name did not survive the round trip: %+v", snap.Rooms[0].Name)
	}
	if len(snap.Tasks) != 1 || snap.Tasks[0].RoomID != "r1" {
		t.Fatalf("tasks = %+v", snap.Tasks)
	}
	if len(snap.CompletionLogs) != 1 || snap.CompletionLogs[0].Date != "2026-08-29" {
		t.Fatalf("completion logs = %+v", snap.CompletionLogs)
	}
	if len(snap.Settings) != 1 || snap.Settings[0].Value != "ru" {
		t.Fatalf("settings = %+v", snap.Settings)
	}

	// Importing the export again must be a no-op in content terms
	if err := svc.Import(ctx, snap); err != nil {
		t.Fatalf("re-import of own export failed: %v", err)
	}
	again, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("second Export failed: %v", err)
	}
	if len(again.Rooms) != 1 || len(again.Tasks) != 1 || len(again.CompletionLogs) != 1 || len(again.Settings) != 1 {
		t.Error("re-import changed record counts")
	}
}

func TestEmptyStoreRoundTrip(t *testing.T) {
	repo := setupTestStore(t)
	svc := NewService(repo)
	ctx := context.Background()

	snap, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if err := svc.Import(ctx, snap); err != nil {
		t.Errorf("export of an empty store must be importable: %v", err)
	}
}

func TestStrictMode(t *testing.T) {
	t.Run("accepts consistent snapshot", func(t *testing.T) {
		svc := NewService(setupTestStore(t), WithStrict())
		if err := svc.Import(context.Background(), testSnapshot()); err != nil {
			t.Errorf("strict import of a consistent snapshot failed: %v", err)
		}
	})

	t.Run("rejects task with unknown room", func(t *testing.T) {
		svc := NewService(setupTestStore(t), WithStrict())
		snap := testSnapshot()
		snap.Tasks[0].RoomID = "no-such-room"
		err := svc.Import(context.Background(), snap)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		svc := NewService(setupTestStore(t), WithStrict())
		snap := testSnapshot()
		snap.CompletionLogs[0].Date = "29.08.2026"
		err := svc.Validate(snap)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("allows orphaned completion logs", func(t *testing.T) {
		svc := NewService(setupTestStore(t), WithStrict())
		snap := testSnapshot()
		snap.CompletionLogs[0].TaskID = "deleted-task"
		snap.CompletionLogs[0].RoomID = "deleted-room"
		if err := svc.Validate(snap); err != nil {
			t.Errorf("logs of deleted tasks must stay importable: %v", err)
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc := `{
			"version": 1,
			"exportedAt": "2026-08-29T12:00:00Z",
			"rooms": [{"id": "r1", "name": {"ru": "Кухня", "kz": "Ас үй"}, "icon": "chef-hat", "color": "orange", "order": 0, "isPreset": false, "createdAt": "2026-08-01T00:00:00Z"}],
			"tasks": [],
			"completionLogs": [],
			"settings": []
		}`
		snap, err := Decode(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if snap.Version != 1 || len(snap.Rooms) != 1 {
			t.Fatalf("decoded %+v", snap)
		}
		if snap.Rooms[0].Name.RU != "Кухня" {
			t.Errorf("room name = %+v", snap.Rooms[0].Name)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name string
			doc  string
		}{
			{"not json", "this is not json"},
			{"json scalar", `42`},
			{"rooms not a list", `{"version": 1, "rooms": 5, "tasks": [], "completionLogs": [], "settings": []}`},
			{"rooms an object", `{"version": 1, "rooms": {}, "tasks": [], "completionLogs": [], "settings": []}`},
			{"tasks a string", `{"version": 1, "rooms": [], "tasks": "nope", "completionLogs": [], "settings": []}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Decode(strings.NewReader(tt.doc))
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("expected ErrInvalidFormat, got %v", err)
				}
			})
		}
	})
}

func TestEncodeDecode(t *testing.T) {
	var buf strings.Builder
	snap := testSnapshot()
	if err := Encode(&buf, snap); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Decode(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Decode of own encoding failed: %v", err)
	}
	if got.Version != snap.Version || len(got.Rooms) != 1 || got.Rooms[0].ID != "r1" {
		t.Errorf("decoded %+v", got)
	}
}
