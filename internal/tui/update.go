package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aitbekov/tirlik/internal/models"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case roomsLoadedMsg:
		m.rooms = msg.rooms
		m.streak = msg.streak
		m.lang = msg.lang
		if m.cursor >= len(m.rooms) {
			m.cursor = max(0, len(m.rooms)-1)
		}
		m.err = nil
		return m, nil

	case tasksLoadedMsg:
		m.view = viewTasks
		m.selected = msg.room
		m.tasks = msg.tasks
		if m.cursor >= len(m.tasks) {
			m.cursor = max(0, len(m.tasks)-1)
		}
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevDay):
		return m.shiftDate(-1)

	case key.Matches(msg, m.keys.NextDay):
		return m.shiftDate(1)

	case key.Matches(msg, m.keys.Today):
		m.date = time.Now().Format(models.DateLayout)
		return m, m.reload()

	case key.Matches(msg, m.keys.Language):
		return m, m.switchLanguage()
	}

	switch m.view {
	case viewRooms:
		if key.Matches(msg, m.keys.Enter) && m.cursor < len(m.rooms) {
			m.selected = m.rooms[m.cursor].room
			m.cursor = 0
			return m, m.loadTasks(m.selected)
		}
	case viewTasks:
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(m.tasks) {
				return m, m.toggleTask(m.tasks[m.cursor].task.ID)
			}
		case key.Matches(msg, m.keys.Back):
			m.view = viewRooms
			m.selected = nil
			m.cursor = 0
			return m, m.loadRooms
		}
	}

	return m, nil
}

func (m Model) rowCount() int {
	if m.view == viewTasks {
		return len(m.tasks)
	}
	return len(m.rooms)
}

func (m Model) shiftDate(days int) (tea.Model, tea.Cmd) {
	day, err := time.Parse(models.DateLayout, m.date)
	if err != nil {
		day = time.Now()
	}
	m.date = day.AddDate(0, 0, days).Format(models.DateLayout)
	return m, m.reload()
}

// reload refreshes whichever view is active for the current date.
func (m Model) reload() tea.Cmd {
	if m.view == viewTasks && m.selected != nil {
		return m.loadTasks(m.selected)
	}
	return m.loadRooms
}
