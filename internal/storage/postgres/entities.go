package postgres

import (
	"database/sql"

	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/storage"
)

// Tasks

const taskColumns = "id, title, description, priority, status, due_date, tags, created_at, updated_at, completed_at"

func (s *Store) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func scanTask(scan func(dest ...any) error) (models.Task, error) {
	var t models.Task
	var createdAt, updatedAt, tags string
	var dueDate, completedAt sql.NullString

	err := scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status,
		&dueDate, &tags, &createdAt, &updatedAt, &completedAt)
	if err != nil {
		return models.Task{}, err
	}

	t.Tags = storage.DecodeTags(tags)
	if t.CreatedAt, err = storage.DecodeTime(createdAt); err != nil {
		return models.Task{}, err
	}
	if t.UpdatedAt, err = storage.DecodeTime(updatedAt); err != nil {
		return models.Task{}, err
	}
	if dueDate.Valid {
		due, err := storage.DecodeTime(dueDate.String)
		if err != nil {
			return models.Task{}, err
		}
		t.DueDate = &due
	}
	if completedAt.Valid {
		done, err := storage.DecodeTime(completedAt.String)
		if err != nil {
			return models.Task{}, err
		}
		t.CompletedAt = &done
	}

	return t, nil
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)
	return scanTask(row.Scan)
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query("SELECT " + taskColumns + " FROM tasks ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	var dueDate, completedAt sql.NullString
	if task.DueDate != nil {
		dueDate = sql.NullString{String: storage.EncodeTime(*task.DueDate), Valid: true}
	}
	if task.CompletedAt != nil {
		completedAt = sql.NullString{String: storage.EncodeTime(*task.CompletedAt), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, description, priority, status, due_date, tags, created_at, updated_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			priority = excluded.priority,
			status = excluded.status,
			due_date = excluded.due_date,
			tags = excluded.tags,
			updated_at = excluded.updated_at,
			completed_at = excluded.completed_at`,
		task.ID, task.Title, task.Description, string(task.Priority), string(task.Status),
		dueDate, storage.EncodeTags(task.Tags),
		storage.EncodeTime(task.CreatedAt), storage.EncodeTime(task.UpdatedAt), completedAt)

	return err
}

func (s *Store) DeleteTask(id string) error {
	result, err := s.db.Exec("DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRows(result, "task not found")
}

// Habits

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
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE id = $1", id)
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
	row := s.db.QueryRow("SELECT "+habitColumns+" FROM habits WHERE title = $1", title)
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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
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
	result, err := s.db.Exec("UPDATE habits SET archived = $1 WHERE id = $2", flag, id)
	if err != nil {
		return err
	}
	return requireRows(result, "habit not found")
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec("DELETE FROM habits WHERE id = $1", id)
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
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (habit_id, day) DO UPDATE SET
			completed = excluded.completed,
			note = excluded.note`,
		habitID, completion.Day, completed, completion.Note)

	return err
}

func (s *Store) GetCompletion(habitID, day string) (models.HabitCompletion, error) {
	row := s.db.QueryRow(`
		SELECT day, completed, note FROM habit_completions
		WHERE habit_id = $1 AND day = $2`, habitID, day)

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
		WHERE habit_id = $1 ORDER BY day`, habitID)
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

// Time blocks

func (s *Store) AddTimeBlock(block models.TimeBlock) error {
	_, err := s.db.Exec(`
		INSERT INTO time_blocks (id, title, description, start_time, end_time, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			color = excluded.color,
			updated_at = excluded.updated_at`,
		block.ID, block.Title, block.Description,
		storage.EncodeTime(block.StartTime), storage.EncodeTime(block.EndTime), block.Color,
		storage.EncodeTime(block.CreatedAt), storage.EncodeTime(block.UpdatedAt))
	return err
}

func (s *Store) GetAllTimeBlocks() ([]models.TimeBlock, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, start_time, end_time, color, created_at, updated_at
		FROM time_blocks ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []models.TimeBlock
	for rows.Next() {
		var b models.TimeBlock
		var startTime, endTime, createdAt, updatedAt string

		err := rows.Scan(&b.ID, &b.Title, &b.Description, &startTime, &endTime, &b.Color, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}
		if b.StartTime, err = storage.DecodeTime(startTime); err != nil {
			return nil, err
		}
		if b.EndTime, err = storage.DecodeTime(endTime); err != nil {
			return nil, err
		}
		if b.CreatedAt, err = storage.DecodeTime(createdAt); err != nil {
			return nil, err
		}
		if b.UpdatedAt, err = storage.DecodeTime(updatedAt); err != nil {
			return nil, err
		}

		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func (s *Store) DeleteTimeBlock(id string) error {
	result, err := s.db.Exec("DELETE FROM time_blocks WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRows(result, "time block not found")
}

// Weekly goals

func (s *Store) AddWeeklyGoal(goal models.WeeklyGoal) error {
	return s.UpdateWeeklyGoal(goal)
}

func (s *Store) GetAllWeeklyGoals() ([]models.WeeklyGoal, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, completed, week_start_date, created_at, updated_at, completed_at
		FROM weekly_goals ORDER BY week_start_date, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.WeeklyGoal
	for rows.Next() {
		var g models.WeeklyGoal
		var completed int
		var weekStart, createdAt, updatedAt string
		var completedAt sql.NullString

		err := rows.Scan(&g.ID, &g.Title, &g.Description, &completed, &weekStart, &createdAt, &updatedAt, &completedAt)
		if err != nil {
			return nil, err
		}
		g.Completed = completed != 0
		if g.WeekStartDate, err = storage.DecodeTime(weekStart); err != nil {
			return nil, err
		}
		if g.CreatedAt, err = storage.DecodeTime(createdAt); err != nil {
			return nil, err
		}
		if g.UpdatedAt, err = storage.DecodeTime(updatedAt); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			done, err := storage.DecodeTime(completedAt.String)
			if err != nil {
				return nil, err
			}
			g.CompletedAt = &done
		}

		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) UpdateWeeklyGoal(goal models.WeeklyGoal) error {
	completed := 0
	if goal.Completed {
		completed = 1
	}
	var completedAt sql.NullString
	if goal.CompletedAt != nil {
		completedAt = sql.NullString{String: storage.EncodeTime(*goal.CompletedAt), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO weekly_goals (id, title, description, completed, week_start_date, created_at, updated_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			completed = excluded.completed,
			week_start_date = excluded.week_start_date,
			updated_at = excluded.updated_at,
			completed_at = excluded.completed_at`,
		goal.ID, goal.Title, goal.Description, completed,
		storage.EncodeTime(goal.WeekStartDate),
		storage.EncodeTime(goal.CreatedAt), storage.EncodeTime(goal.UpdatedAt), completedAt)
	return err
}

func (s *Store) DeleteWeeklyGoal(id string) error {
	result, err := s.db.Exec("DELETE FROM weekly_goals WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRows(result, "weekly goal not found")
}
