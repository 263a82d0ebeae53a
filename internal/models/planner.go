package models

import "time"

// TimeBlock is a planned chunk of focused time. EndTime must be after
// StartTime; that is enforced at entry by validation, not here.
type TimeBlock struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WeeklyGoal is an objective scoped to a single week. WeekStartDate is
// normalized to the start of the week (Sunday) it was created against.
type WeeklyGoal struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Completed     bool       `json:"completed"`
	WeekStartDate time.Time  `json:"week_start_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}
