package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/kairoapp/kairo/internal/migration"
	"github.com/kairoapp/kairo/internal/state"
	"github.com/kairoapp/kairo/migrations"
)

// dsnOptions enables foreign key enforcement, which is off by default in
// SQLite. The habit_completions cascade depends on it.
const dsnOptions = "?_pragma=foreign_keys(1)"

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path+dsnOptions)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'kairo init' first")
	}

	db, err := sql.Open("sqlite", s.path+dsnOptions)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.Apply(func(msg string) {
		fmt.Println(msg)
	})
	return err
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS).ValidateVersion()
}

func requireRows(result sql.Result, notFoundMsg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s", notFoundMsg)
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// Snapshot reads all four collections into an immutable state value for
// the calculators.
func (s *Store) Snapshot() (state.State, error) {
	tasks, err := s.GetAllTasks()
	if err != nil {
		return state.State{}, err
	}
	habits, err := s.GetAllHabits(true)
	if err != nil {
		return state.State{}, err
	}
	blocks, err := s.GetAllTimeBlocks()
	if err != nil {
		return state.State{}, err
	}
	goals, err := s.GetAllWeeklyGoals()
	if err != nil {
		return state.State{}, err
	}

	return state.State{
		Tasks:      tasks,
		Habits:     habits,
		TimeBlocks: blocks,
		Goals:      goals,
	}, nil
}
