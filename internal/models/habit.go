package models

import (
	"time"

	"github.com/kairoapp/kairo/internal/constants"
)

// HabitCompletion is a single day-level ledger record for a habit.
type HabitCompletion struct {
	Day       string `json:"day"` // YYYY-MM-DD format
	Completed bool   `json:"completed"`
	Note      string `json:"note,omitempty"`
}

// Habit is a recurring practice tracked day by day. Completions are keyed
// by day (YYYY-MM-DD) so there can never be more than one record per
// calendar day.
type Habit struct {
	ID           string                     `json:"id"`
	Title        string                     `json:"title"`
	Description  string                     `json:"description,omitempty"`
	Frequency    constants.HabitFrequency   `json:"frequency"`
	CustomDays   []time.Weekday             `json:"custom_days,omitempty"` // only used when Frequency is custom
	Target       int                        `json:"target"`
	Color        string                     `json:"color,omitempty"` // hex code
	StartDate    time.Time                  `json:"start_date"`
	EndDate      *time.Time                 `json:"end_date,omitempty"`
	ReminderTime string                     `json:"reminder_time,omitempty"` // HH:MM format, display only
	Completions  map[string]HabitCompletion `json:"completions"`
	Archived     bool                       `json:"archived"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// CompletedDays returns the day keys of all records marked completed,
// in no particular order.
func (h Habit) CompletedDays() []string {
	var days []string
	for day, c := range h.Completions {
		if c.Completed {
			days = append(days, day)
		}
	}
	return days
}
