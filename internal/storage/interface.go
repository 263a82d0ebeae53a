package storage

import (
	"net/url"
	"os"
	"strings"

	"github.com/kairoapp/kairo/internal/keyring"
	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/state"
)

// EnvConnectionString is the environment variable checked for a
// PostgreSQL connection string before falling back to the OS keyring.
const EnvConnectionString = "KAIRO_DB_CONNECTION"

// Provider is the persistence boundary. The calculators never touch it;
// they operate on snapshots read through it.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Habits (completions are loaded with their habit)
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByTitle(title string) (models.Habit, error)
	GetAllHabits(includeArchived bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	SetHabitArchived(id string, archived bool) error
	DeleteHabit(id string) error

	// Completion ledger
	UpsertCompletion(habitID string, completion models.HabitCompletion) error
	GetCompletion(habitID, day string) (models.HabitCompletion, error)

	// Time blocks
	AddTimeBlock(models.TimeBlock) error
	GetAllTimeBlocks() ([]models.TimeBlock, error)
	DeleteTimeBlock(id string) error

	// Weekly goals
	AddWeeklyGoal(models.WeeklyGoal) error
	GetAllWeeklyGoals() ([]models.WeeklyGoal, error)
	UpdateWeeklyGoal(models.WeeklyGoal) error
	DeleteWeeklyGoal(id string) error

	// Snapshot reads all four collections for the calculators.
	Snapshot() (state.State, error)

	// Utils
	GetConfigPath() string
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection URL
// carries a password. Embedded credentials are rejected; they belong in
// the environment or the OS keyring.
func HasEmbeddedCredentials(connStr string) bool {
	if !strings.HasPrefix(connStr, "postgres://") && !strings.HasPrefix(connStr, "postgresql://") {
		return false
	}
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, isSet := u.User.Password()
	return isSet
}

// ResolveConnectionString returns the PostgreSQL connection string from
// the environment or, failing that, the OS keyring.
func ResolveConnectionString() (string, error) {
	if connStr := os.Getenv(EnvConnectionString); connStr != "" {
		return connStr, nil
	}
	return keyring.GetConnectionString()
}
