package sqlite

import (
	"database/sql"

	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/storage"
)

const habitColumns = "id, title, description, frequency, custom_days, target, color, start_date, end_date, reminder_time, archived, created_at, updated_at"

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func scanHabit(scan func(dest ...any) error) (models.Habit, error) {
	var h models.Habit
	var customDays, startDate, createdAt, updatedAt string
	var endDate sql.NullString
	var archived int

	err := scan(&h.ID, &h.Title, &h.Description, &h.Frequency, &customDays, &h.Target,
		&h.Color, &startDate, &endDate, &h.ReminderTime, &archived, &createdAt, &updatedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Archived = archived != 0
	if h.CustomDays, err = storage.DecodeWeekdays(customDays); err != nil {
		return models.Habit{}, err
	}
	if h.StartDate, err = storage.DecodeTime(startDate); err != nil {
		return models.Habit{}, err
	}
	if endDate.Valid {
		end, err := storage.DecodeTime(endDate.String)
		if err != nil {
			return models.Habit{}, err
		}
		h.EndDate = &end
	}
	if h.CreatedAt, err = storage.DecodeTime(createdAt); err != nil {
		return models.Habit{}, err
	}
	if h.UpdatedAt, err = storage.DecodeTime(updatedAt); err != nil {
		return models.Habit{}, err
	}

	return h, nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE id = ?", id)
	h, err := scanHabit(row.Scan)
	if err != nil {
		return models.Habit{}, err
	}
	if h.Completions, err = s.getCompletions(h.ID); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) GetHabitByTitle(title string) (models.Habit, error) {
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE title = ?", title)
	h, err := scanHabit(row.Scan)
	if err != nil {
		return models.Habit{}, err
	}
	if h.Completions, err = s.getCompletions(h.ID); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits"
	if !includeArchived {
		query += " WHERE archived = 0"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		if habits[i].Completions, err = s.getCompletions(habits[i].ID); err != nil {
			return nil, err
		}
	}

	return habits, nil
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	var endDate sql.NullString
	if habit.EndDate != nil {
		endDate = sql.NullString{String: storage.EncodeTime(*habit.EndDate), Valid: true}
	}
	archived := 0
	if habit.Archived {
		archived = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, title, description, frequency, custom_days, target, color, start_date, end_date, reminder_time, archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			frequency = excluded.frequency,
			custom_days = excluded.custom_days,
			target = excluded.target,
			color = excluded.color,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			reminder_time = excluded.reminder_time,
			archived = excluded.archived,
			updated_at = excluded.updated_at`,
		habit.ID, habit.Title, habit.Description, string(habit.Frequency),
		storage.EncodeWeekdays(habit.CustomDays), habit.Target, habit.Color,
		storage.EncodeTime(habit.StartDate), endDate, habit.ReminderTime, archived,
		storage.EncodeTime(habit.CreatedAt), storage.EncodeTime(habit.UpdatedAt))
	if err != nil {
		return err
	}

	for _, c := range habit.Completions {
		if err := s.UpsertCompletion(habit.ID, c); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) SetHabitArchived(id string, archived bool) error {
	flag := 0
	if archived {
		flag = 1
	}
	result, err := s.db.Exec("UPDATE habits SET archived = ? WHERE id = ?", flag, id)
	if err != nil {
		return err
	}
	return requireRows(result, "habit not found")
}

func (s *Store) DeleteHabit(id string) error {
	// Completion rows go with the habit via ON DELETE CASCADE
	result, err := s.db.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRows(result, "habit not found")
}

// Completion ledger

func (s *Store) UpsertCompletion(habitID string, completion models.HabitCompletion) error {
	completed := 0
	if completion.Completed {
		completed = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO habit_completions (habit_id, day, completed, note)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO UPDATE SET
			completed = excluded.completed,
			note = excluded.note`,
		habitID, completion.Day, completed, completion.Note)

	return err
}

func (s *Store) GetCompletion(habitID, day string) (models.HabitCompletion, error) {
	row := s.db.QueryRow(`
		SELECT day, completed, note FROM habit_completions
		WHERE habit_id = ? AND day = ?`, habitID, day)

	var c models.HabitCompletion
	var completed int
	if err := row.Scan(&c.Day, &completed, &c.Note); err != nil {
		return models.HabitCompletion{}, err
	}
	c.Completed = completed != 0
	return c, nil
}

func (s *Store) getCompletions(habitID string) (map[string]models.HabitCompletion, error) {
	rows, err := s.db.Query(`
		SELECT day, completed, note FROM habit_completions
		WHERE habit_id = ? ORDER BY day`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completions := make(map[string]models.HabitCompletion)
	for rows.Next() {
		var c models.HabitCompletion
		var completed int
		if err := rows.Scan(&c.Day, &completed, &c.Note); err != nil {
			return nil, err
		}
		c.Completed = completed != 0
		completions[c.Day] = c
	}
	return completions, rows.Err()
}
