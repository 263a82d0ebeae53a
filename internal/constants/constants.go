package constants

// HabitFrequency represents how often a habit is due
type HabitFrequency string

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	AppName            = "kairo"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/kairo/kairo.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ShortDateFormat is the human-readable date format used in list output ("Mon, Jan 2")
	ShortDateFormat = "Mon, Jan 2"

	// ClockFormat is the human-readable time format used in list output ("3:04 PM")
	ClockFormat = "3:04 PM"

	// Habit frequency constants
	FrequencyDaily   HabitFrequency = "daily"
	FrequencyWeekly  HabitFrequency = "weekly"
	FrequencyMonthly HabitFrequency = "monthly"
	FrequencyCustom  HabitFrequency = "custom"

	// Task status constants
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"

	// Task priority constants
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"

	// DefaultHabitTarget is the per-period target recorded on new habits
	DefaultHabitTarget = 1
)
