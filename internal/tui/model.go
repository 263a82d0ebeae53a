package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kairoapp/kairo/internal/analytics"
	"github.com/kairoapp/kairo/internal/assistant"
	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/storage"
	"github.com/kairoapp/kairo/internal/utils"
)

type view int

const (
	viewToday view = iota
	viewTasks
	viewStats
	viewChat
)

var viewNames = []string{"Today", "Tasks", "Stats", "Assistant"}

type habitItem struct {
	habit models.Habit
	done  bool
}

func (i habitItem) Title() string {
	if i.done {
		return "✓ " + i.habit.Title
	}
	return "○ " + i.habit.Title
}

func (i habitItem) Description() string {
	if i.done {
		return "completed today"
	}
	return "not completed today"
}

func (i habitItem) FilterValue() string { return i.habit.Title }

type taskItem struct {
	task models.Task
}

func (i taskItem) Title() string {
	switch i.task.Status {
	case constants.StatusCompleted:
		return "✓ " + i.task.Title
	case constants.StatusInProgress:
		return "» " + i.task.Title
	default:
		return "○ " + i.task.Title
	}
}

func (i taskItem) Description() string {
	desc := string(i.task.Priority) + " priority"
	if i.task.DueDate != nil {
		desc += ", due " + utils.FormatShortDate(*i.task.DueDate)
	}
	return desc
}

func (i taskItem) FilterValue() string { return i.task.Title }

type chatEntry struct {
	fromUser bool
	text     string
}

type Model struct {
	store     storage.Provider
	view      view
	keys      KeyMap
	help      help.Model
	habitList list.Model
	taskList  list.Model
	chatInput textinput.Model
	chatLog   []chatEntry
	bot       *assistant.Assistant
	stats     models.AnalyticsState
	habits    []models.Habit
	width     int
	height    int
	quitting  bool
	err       error
}

// NewModel builds the dashboard model from a fresh storage snapshot.
func NewModel(store storage.Provider) (Model, error) {
	input := textinput.New()
	input.Placeholder = "Ask the assistant anything"
	input.CharLimit = 280

	hl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	hl.Title = "Today's Habits"
	hl.SetShowTitle(false)
	hl.SetShowHelp(false)

	tl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	tl.Title = "Tasks"
	tl.SetShowTitle(false)
	tl.SetShowHelp(false)

	m := Model{
		store:     store,
		view:      viewToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: hl,
		taskList:  tl,
		chatInput: input,
		bot:       assistant.New(),
	}
	if err := m.refresh(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// refresh re-reads the snapshot and rebuilds every derived view.
func (m *Model) refresh() error {
	snapshot, err := m.store.Snapshot()
	if err != nil {
		return err
	}

	now := time.Now()
	m.habits = snapshot.Habits
	m.stats = analytics.Calculate(
		snapshot.Tasks, snapshot.Habits, snapshot.TimeBlocks, snapshot.Goals, now)

	var habitItems []list.Item
	for _, h := range snapshot.Habits {
		if h.Archived || !utils.IsDue(h, now) {
			continue
		}
		done, _ := utils.CompletionStatus(h, now)
		habitItems = append(habitItems, habitItem{habit: h, done: done})
	}
	m.habitList.SetItems(habitItems)

	taskItems := make([]list.Item, len(snapshot.Tasks))
	for i, t := range snapshot.Tasks {
		taskItems[i] = taskItem{task: t}
	}
	m.taskList.SetItems(taskItems)

	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.view {
	case viewToday:
		keys = append(keys, m.keys.Toggle)
	case viewTasks:
		keys = append(keys, m.keys.Start, m.keys.Done)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
	var actions []key.Binding
	switch m.view {
	case viewToday:
		actions = []key.Binding{m.keys.Toggle}
	case viewTasks:
		actions = []key.Binding{m.keys.Start, m.keys.Done}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the dashboard against an already-loaded store.
func Run(store storage.Provider) error {
	m, err := NewModel(store)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
