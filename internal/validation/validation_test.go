package validation

import (
	"testing"
	"time"

	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
)

func validHabit() models.Habit {
	return models.Habit{
		ID:        "h1",
		Title:     "Read",
		Frequency: constants.FrequencyDaily,
		Target:    1,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateHabit(t *testing.T) {
	if err := ValidateHabit(validHabit()); err != nil {
		t.Errorf("valid habit rejected: %v", err)
	}
}

func TestValidateHabit_EmptyTitle(t *testing.T) {
	habit := validHabit()
	habit.Title = ""
	if err := ValidateHabit(habit); err == nil {
		t.Error("expected error for empty title")
	}
}

func TestValidateHabit_InvalidFrequency(t *testing.T) {
	habit := validHabit()
	habit.Frequency = "fortnightly"
	if err := ValidateHabit(habit); err == nil {
		t.Error("expected error for unknown frequency")
	}
}

func TestValidateHabit_CustomRequiresWeekdays(t *testing.T) {
	habit := validHabit()
	habit.Frequency = constants.FrequencyCustom

	if err := ValidateHabit(habit); err == nil {
		t.Error("expected error for custom frequency without weekdays")
	}

	habit.CustomDays = []time.Weekday{time.Monday}
	if err := ValidateHabit(habit); err != nil {
		t.Errorf("custom habit with weekdays rejected: %v", err)
	}

	habit.CustomDays = []time.Weekday{time.Weekday(7)}
	if err := ValidateHabit(habit); err == nil {
		t.Error("expected error for out-of-range weekday")
	}
}

func TestValidateHabit_Target(t *testing.T) {
	habit := validHabit()
	habit.Target = 0
	if err := ValidateHabit(habit); err == nil {
		t.Error("expected error for non-positive target")
	}
}

func TestValidateHabit_EndBeforeStart(t *testing.T) {
	habit := validHabit()
	end := habit.StartDate.AddDate(0, 0, -1)
	habit.EndDate = &end
	if err := ValidateHabit(habit); err == nil {
		t.Error("expected error for end date before start date")
	}
}

func TestValidateHabit_ReminderTime(t *testing.T) {
	habit := validHabit()
	habit.ReminderTime = "07:30"
	if err := ValidateHabit(habit); err != nil {
		t.Errorf("valid reminder time rejected: %v", err)
	}

	habit.ReminderTime = "25:99"
	if err := ValidateHabit(habit); err == nil {
		t.Error("expected error for invalid reminder time")
	}
}

func TestValidateTask(t *testing.T) {
	task := models.Task{
		ID:       "t1",
		Title:    "Write report",
		Status:   constants.StatusTodo,
		Priority: constants.PriorityMedium,
	}
	if err := ValidateTask(task); err != nil {
		t.Errorf("valid task rejected: %v", err)
	}

	task.Status = "paused"
	if err := ValidateTask(task); err == nil {
		t.Error("expected error for unknown status")
	}

	task.Status = constants.StatusTodo
	task.Priority = "urgent"
	if err := ValidateTask(task); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestValidateTimeBlock(t *testing.T) {
	start := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	block := models.TimeBlock{
		ID:        "b1",
		Title:     "Deep work",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	}
	if err := ValidateTimeBlock(block); err != nil {
		t.Errorf("valid block rejected: %v", err)
	}

	block.EndTime = start
	if err := ValidateTimeBlock(block); err == nil {
		t.Error("expected error for zero-length block")
	}

	block.EndTime = start.Add(-time.Hour)
	if err := ValidateTimeBlock(block); err == nil {
		t.Error("expected error for end before start")
	}
}

func TestValidateWeeklyGoal(t *testing.T) {
	goal := models.WeeklyGoal{
		ID:            "g1",
		Title:         "Ship the feature",
		WeekStartDate: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	}
	if err := ValidateWeeklyGoal(goal); err != nil {
		t.Errorf("valid goal rejected: %v", err)
	}

	goal.WeekStartDate = time.Time{}
	if err := ValidateWeeklyGoal(goal); err == nil {
		t.Error("expected error for missing week start date")
	}
}
