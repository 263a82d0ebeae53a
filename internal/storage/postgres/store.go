package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	pq "github.com/lib/pq"

	"github.com/kairoapp/kairo/internal/migration"
	"github.com/kairoapp/kairo/internal/state"
	"github.com/kairoapp/kairo/migrations"
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

type Store struct {
	connStr string
	db      *sql.DB
}

func NewStore(connStr string) *Store {
	return &Store{connStr: connStr}
}

// ValidateConnString checks that a connection string parses and carries
// no embedded password. Credentials belong in the environment, .pgpass,
// or the OS keyring.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}
	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
		}
		if u.User != nil {
			if _, isSet := u.User.Password(); isSet {
				return ErrEmbeddedCredentials
			}
		}
	}
	return nil
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Init() error {
	if err := ValidateConnString(s.connStr); err != nil {
		return err
	}
	if err := s.open(); err != nil {
		return err
	}
	return s.runMigrations()
}

func (s *Store) Load() error {
	if err := s.open(); err != nil {
		return err
	}
	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.Apply(func(msg string) {
		fmt.Println(msg)
	})
	return err
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS).ValidateVersion()
}

func (s *Store) GetConfigPath() string {
	return s.connStr
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
