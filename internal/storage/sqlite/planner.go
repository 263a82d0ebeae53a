package sqlite

import (
	"database/sql"

	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/storage"
)

// Time blocks

func (s *Store) AddTimeBlock(block models.TimeBlock) error {
	_, err := s.db.Exec(`
		INSERT INTO time_blocks (id, title, description, start_time, end_time, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
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
	result, err := s.db.Exec("DELETE FROM time_blocks WHERE id = ?", id)
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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
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
	result, err := s.db.Exec("DELETE FROM weekly_goals WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRows(result, "weekly goal not found")
}
