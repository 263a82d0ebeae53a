package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.view {
	case viewToday:
		content = m.viewToday()
	case viewTasks:
		content = m.viewTasks()
	case viewStats:
		content = m.viewStats()
	case viewChat:
		content = m.viewChat()
	}

	var errLine string
	if m.err != nil {
		errLine = errorStyle.Render("error: " + m.err.Error())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		errLine,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range viewNames {
		if m.view == view(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	if len(m.habitList.Items()) == 0 {
		return docStyle.Render("\n  Nothing due today.\n")
	}
	return docStyle.Render(m.habitList.View())
}

func (m Model) viewTasks() string {
	if len(m.taskList.Items()) == 0 {
		return docStyle.Render("\n  No tasks yet.\n")
	}
	return docStyle.Render(m.taskList.View())
}

func (m Model) viewStats() string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(statLabelStyle.Render(label))
		b.WriteString(statValueStyle.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Tasks"))
	b.WriteString("\n")
	row("Completed", fmt.Sprintf("%d of %d (%.0f%%)",
		m.stats.TaskStats.Completed, m.stats.TaskStats.Total, m.stats.TaskStats.CompletionRate))
	row("In progress", fmt.Sprintf("%d", m.stats.TaskStats.InProgress))

	b.WriteString(sectionStyle.Render("Habits"))
	b.WriteString("\n")
	row("Avg current streak", fmt.Sprintf("%d days", m.stats.HabitStats.Streaks.Current))
	row("Longest streak ever", fmt.Sprintf("%d days", m.stats.HabitStats.Streaks.Longest))
	row("Completion rate", fmt.Sprintf("%.1f%%", m.stats.HabitStats.CompletionRate))
	if name := m.habitTitle(m.stats.HabitStats.MostConsistent); name != "" {
		row("Most consistent", name)
	}
	if name := m.habitTitle(m.stats.HabitStats.LeastConsistent); name != "" {
		row("Least consistent", name)
	}

	b.WriteString(sectionStyle.Render("Time"))
	b.WriteString("\n")
	row("Planned hours", fmt.Sprintf("%.1f across %d blocks",
		m.stats.TimeStats.TotalHours, m.stats.TimeStats.TotalTimeBlocks))
	row("Most productive", fmt.Sprintf("%s, %s",
		m.stats.TimeStats.MostProductiveDay, m.stats.TimeStats.MostProductiveTime))

	b.WriteString(sectionStyle.Render("Weekly Goals"))
	b.WriteString("\n")
	row("Completed", fmt.Sprintf("%d of %d (%.0f%%)",
		m.stats.GoalStats.Completed, m.stats.GoalStats.Total, m.stats.GoalStats.CompletionRate))

	return docStyle.Render(b.String())
}

func (m Model) habitTitle(id string) string {
	for _, h := range m.habits {
		if h.ID == id {
			return h.Title
		}
	}
	return ""
}

func (m Model) viewChat() string {
	var b strings.Builder

	// Show only the tail of the conversation that fits
	visible := m.chatLog
	maxEntries := m.height - 8
	if maxEntries > 0 && len(visible) > maxEntries {
		visible = visible[len(visible)-maxEntries:]
	}

	for _, entry := range visible {
		if entry.fromUser {
			b.WriteString(userMsgStyle.Render("you: "))
		} else {
			b.WriteString(assistantMsgStyle.Render("kairo: "))
		}
		b.WriteString(entry.text)
		b.WriteString("\n")
	}
	if len(visible) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(m.chatInput.View())

	return docStyle.Render(b.String())
}
