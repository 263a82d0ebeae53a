// Package validation checks entities at their entry points. The
// calculators assume well-formed inputs; anything caught here never
// reaches them.
package validation

import (
	"fmt"
	"time"

	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
)

// ValidateHabit checks a habit's scheduling configuration.
func ValidateHabit(habit models.Habit) error {
	if habit.Title == "" {
		return fmt.Errorf("habit title cannot be empty")
	}

	switch habit.Frequency {
	case constants.FrequencyDaily, constants.FrequencyWeekly, constants.FrequencyMonthly:
	case constants.FrequencyCustom:
		if len(habit.CustomDays) == 0 {
			return fmt.Errorf("custom frequency requires at least one weekday")
		}
		for _, wd := range habit.CustomDays {
			if wd < time.Sunday || wd > time.Saturday {
				return fmt.Errorf("invalid weekday %d (expected 0-6)", wd)
			}
		}
	default:
		return fmt.Errorf("invalid frequency %q", habit.Frequency)
	}

	if habit.Target < 1 {
		return fmt.Errorf("habit target must be a positive integer")
	}
	if habit.EndDate != nil && habit.EndDate.Before(habit.StartDate) {
		return fmt.Errorf("habit end date cannot be before its start date")
	}
	if habit.ReminderTime != "" {
		if _, err := time.Parse(constants.TimeFormat, habit.ReminderTime); err != nil {
			return fmt.Errorf("invalid reminder time %q (expected HH:MM)", habit.ReminderTime)
		}
	}

	return nil
}

// ValidateTask checks a task's status and priority.
func ValidateTask(task models.Task) error {
	if task.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}

	switch task.Status {
	case constants.StatusTodo, constants.StatusInProgress, constants.StatusCompleted:
	default:
		return fmt.Errorf("invalid status %q", task.Status)
	}

	switch task.Priority {
	case constants.PriorityLow, constants.PriorityMedium, constants.PriorityHigh:
	default:
		return fmt.Errorf("invalid priority %q", task.Priority)
	}

	return nil
}

// ValidateTimeBlock enforces that a block's end time is after its start
// time. The analytics engine relies on this holding at entry.
func ValidateTimeBlock(block models.TimeBlock) error {
	if block.Title == "" {
		return fmt.Errorf("time block title cannot be empty")
	}
	if block.StartTime.IsZero() || block.EndTime.IsZero() {
		return fmt.Errorf("time block requires both a start and an end time")
	}
	if !block.EndTime.After(block.StartTime) {
		return fmt.Errorf("time block end must be after its start")
	}
	return nil
}

// ValidateWeeklyGoal checks a weekly goal.
func ValidateWeeklyGoal(goal models.WeeklyGoal) error {
	if goal.Title == "" {
		return fmt.Errorf("goal title cannot be empty")
	}
	if goal.WeekStartDate.IsZero() {
		return fmt.Errorf("goal requires a week start date")
	}
	return nil
}
