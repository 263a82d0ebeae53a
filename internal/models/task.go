package models

import (
	"time"

	"github.com/kairoapp/kairo/internal/constants"
)

// Task is a one-off piece of work moving through todo -> in_progress ->
// completed. CompletedAt is set exactly when the status transitions to
// completed and cleared on any other transition.
type Task struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Priority    constants.TaskPriority `json:"priority"`
	Status      constants.TaskStatus   `json:"status"`
	DueDate     *time.Time             `json:"due_date,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
}
