// Package tui implements the interactive terminal interface: a room list
// with daily progress and streak, and a per-room checklist for any day.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aitbekov/tirlik/internal/app"
	"github.com/aitbekov/tirlik/internal/models"
	"github.com/aitbekov/tirlik/internal/streak"
)

type view int

const (
	viewRooms view = iota
	viewTasks
)

// roomRow is a room plus its progress for the viewed day.
type roomRow struct {
	room  *models.Room
	done  int
	total int
}

// taskRow is a task plus its completion state for the viewed day.
type taskRow struct {
	task *models.Task
	done bool
}

// Model is the root bubbletea model.
type Model struct {
	ctx context.Context
	app *app.App

	view   view
	lang   models.Language
	date   string // viewed calendar day, yyyy-MM-dd
	streak int

	rooms    []roomRow
	selected *models.Room
	tasks    []taskRow

	cursor int
	keys   keyMap
	help   help.Model
	width  int
	err    error
}

// New creates the initial model showing today's room list.
func New(ctx context.Context, application *app.App) Model {
	return Model{
		ctx:  ctx,
		app:  application,
		view: viewRooms,
		lang: models.LanguageRU,
		date: time.Now().Format(models.DateLayout),
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadRooms
}

// Run opens the TUI and blocks until the user quits.
func Run(ctx context.Context, application *app.App) error {
	p := tea.NewProgram(New(ctx, application), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// Messages

type roomsLoadedMsg struct {
	rooms  []roomRow
	streak int
	lang   models.Language
}

type tasksLoadedMsg struct {
	room  *models.Room
	tasks []taskRow
}

type errMsg struct {
	err error
}

// Commands

// loadRooms fetches rooms, per-room progress for the viewed day, the streak,
// and the language setting.
func (m Model) loadRooms() tea.Msg {
	rooms, err := m.app.Rooms.List(m.ctx)
	if err != nil {
		return errMsg{err}
	}

	dayLogs, err := m.app.Completions.ForDate(m.ctx, m.date)
	if err != nil {
		return errMsg{err}
	}
	doneByRoom := make(map[string]int)
	for _, log := range dayLogs {
		doneByRoom[log.RoomID]++
	}

	rows := make([]roomRow, 0, len(rooms))
	for _, room := range rooms {
		tasks, err := m.app.Tasks.ListByRoom(m.ctx, room.ID)
		if err != nil {
			return errMsg{err}
		}
		rows = append(rows, roomRow{
			room:  room,
			done:  doneByRoom[room.ID],
			total: len(tasks),
		})
	}

	all, err := m.app.Completions.All(m.ctx)
	if err != nil {
		return errMsg{err}
	}

	lang, err := m.app.Settings.Language(m.ctx)
	if err != nil {
		return errMsg{err}
	}

	return roomsLoadedMsg{
		rooms:  rows,
		streak: streak.Calculate(all),
		lang:   lang,
	}
}

// loadTasks fetches the selected room's checklist for the viewed day.
func (m Model) loadTasks(room *models.Room) tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.app.Tasks.ListByRoom(m.ctx, room.ID)
		if err != nil {
			return errMsg{err}
		}
		dayLogs, err := m.app.Completions.ForDate(m.ctx, m.date)
		if err != nil {
			return errMsg{err}
		}
		doneTasks := make(map[string]struct{}, len(dayLogs))
		for _, log := range dayLogs {
			doneTasks[log.TaskID] = struct{}{}
		}

		rows := make([]taskRow, 0, len(tasks))
		for _, task := range tasks {
			_, done := doneTasks[task.ID]
			rows = append(rows, taskRow{task: task, done: done})
		}
		return tasksLoadedMsg{room: room, tasks: rows}
	}
}

// toggleTask flips completion for the task under the cursor, then reloads.
func (m Model) toggleTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.app.Completions.Toggle(m.ctx, taskID, m.date); err != nil {
			return errMsg{err}
		}
		return m.loadTasks(m.selected)()
	}
}

// switchLanguage rotates ru -> kz -> ru and persists the choice.
func (m Model) switchLanguage() tea.Cmd {
	next := models.LanguageKZ
	if m.lang == models.LanguageKZ {
		next = models.LanguageRU
	}
	return func() tea.Msg {
		if err := m.app.Settings.SetLanguage(m.ctx, next); err != nil {
			return errMsg{err}
		}
		return m.loadRooms()
	}
}
