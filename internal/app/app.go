// Package app wires the repository and services into one container.
package app

import (
	"github.com/aitbekov/tirlik/internal/backup"
	"github.com/aitbekov/tirlik/internal/database"
	completionservice "github.com/aitbekov/tirlik/internal/services/completion"
	roomservice "github.com/aitbekov/tirlik/internal/services/room"
	settingsservice "github.com/aitbekov/tirlik/internal/services/settings"
	taskservice "github.com/aitbekov/tirlik/internal/services/task"
)

// App holds all application services and provides dependency injection.
type App struct {
	repo database.DataStore

	Rooms       roomservice.Service
	Tasks       taskservice.Service
	Completions completionservice.Service
	Settings    settingsservice.Service
	Backup      *backup.Service
}

// New creates a new App with all services initialized over the given store.
func New(repo database.DataStore, backupOpts ...backup.Option) *App {
	return &App{
		repo:        repo,
		Rooms:       roomservice.NewService(repo),
		Tasks:       taskservice.NewService(repo),
		Completions: completionservice.NewService(repo),
		Settings:    settingsservice.NewService(repo),
		Backup:      backup.NewService(repo, backupOpts...),
	}
}

// Repo returns the underlying data store for direct access.
func (a *App) Repo() database.DataStore {
	return a.repo
}
