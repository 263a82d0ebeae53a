package sqlite

import (
	"database/sql"

	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/storage"
)

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

const taskColumns = "id, title, description, priority, status, due_date, tags, created_at, updated_at, completed_at"

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
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
	result, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRows(result, "task not found")
}
