package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aitbekov/tirlik/internal/models"
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch m.view {
	case viewRooms:
		b.WriteString(m.roomsView())
	case viewTasks:
		b.WriteString(m.tasksView())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) headerView() string {
	title := titleStyle.Render("Tirlik")

	badge := ""
	if m.streak > 0 {
		badge = "  " + streakStyle.Render(fmt.Sprintf("🔥 %d", m.streak))
	}

	date := m.date
	if m.date == time.Now().Format(models.DateLayout) {
		date += " · " + m.today()
	}
	return title + badge + "  " + dateStyle.Render(date)
}

func (m Model) today() string {
	if m.lang == models.LanguageKZ {
		return "бүгін"
	}
	return "сегодня"
}

func (m Model) roomsView() string {
	if len(m.rooms) == 0 {
		return dimStyle.Render("no rooms yet")
	}

	var b strings.Builder
	for i, row := range m.rooms {
		line := fmt.Sprintf("%-30s %s", row.room.Name.In(m.lang), m.progress(row))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) progress(row roomRow) string {
	s := fmt.Sprintf("%d/%d", row.done, row.total)
	if row.total > 0 && row.done >= row.total {
		return doneStyle.Render(s + " ✓")
	}
	return dimStyle.Render(s)
}

func (m Model) tasksView() string {
	var b strings.Builder
	if m.selected != nil {
		b.WriteString(selectedStyle.Render(m.selected.Name.In(m.lang)))
		b.WriteString("\n\n")
	}

	if len(m.tasks) == 0 {
		b.WriteString(dimStyle.Render("no tasks in this room"))
		return b.String()
	}

	for i, row := range m.tasks {
		check := "[ ]"
		name := row.task.Name.In(m.lang)
		if row.done {
			check = doneStyle.Render("[x]")
			name = doneStyle.Render(name)
		}
		line := check + " " + name
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
