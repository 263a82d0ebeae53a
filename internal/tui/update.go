package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		frameW, frameH := docStyle.GetFrameSize()
		listHeight := msg.Height - frameH - 6
		m.habitList.SetSize(msg.Width-frameW, listHeight)
		m.taskList.SetSize(msg.Width-frameW, listHeight)
		m.chatInput.Width = msg.Width - frameW - 4
		return m, nil

	case tea.KeyMsg:
		// The chat input owns the keyboard while focused
		if m.view == viewChat && m.chatInput.Focused() {
			return m.updateChat(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.setView((m.view + 1) % view(len(viewNames)))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.setView((m.view + view(len(viewNames)) - 1) % view(len(viewNames)))
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.err = m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.view {
		case viewToday:
			return m.updateToday(msg)
		case viewTasks:
			return m.updateTasks(msg)
		case viewChat:
			m.chatInput.Focus()
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) setView(v view) {
	m.view = v
	if v == viewChat {
		m.chatInput.Focus()
	} else {
		m.chatInput.Blur()
	}
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Toggle) {
		if item, ok := m.habitList.SelectedItem().(habitItem); ok {
			day := utils.DayKey(time.Now())
			completion := models.HabitCompletion{Day: day, Completed: !item.done}
			if err := m.store.UpsertCompletion(item.habit.ID, completion); err != nil {
				m.err = err
				return m, nil
			}
			m.err = m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	return m, cmd
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	transition := func(status constants.TaskStatus) {
		item, ok := m.taskList.SelectedItem().(taskItem)
		if !ok {
			return
		}
		now := time.Now()
		task := item.task
		task.Status = status
		task.UpdatedAt = now
		if status == constants.StatusCompleted {
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
		if err := m.store.UpdateTask(task); err != nil {
			m.err = err
			return
		}
		m.err = m.refresh()
	}

	switch {
	case key.Matches(msg, m.keys.Start):
		transition(constants.StatusInProgress)
		return m, nil
	case key.Matches(msg, m.keys.Done):
		transition(constants.StatusCompleted)
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.chatInput.Blur()
		return m, nil
	case "tab":
		m.setView((m.view + 1) % view(len(viewNames)))
		return m, nil
	case "enter":
		message := strings.TrimSpace(m.chatInput.Value())
		if message == "" {
			return m, nil
		}
		m.chatLog = append(m.chatLog,
			chatEntry{fromUser: true, text: message},
			chatEntry{fromUser: false, text: m.bot.SendMessage(message)})
		m.chatInput.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}
