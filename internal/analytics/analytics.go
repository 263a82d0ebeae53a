// Package analytics reduces task, habit, time block, and weekly goal
// collections into derived summary statistics. Every calculation is a
// full recompute over read-only snapshots; nothing here mutates state or
// reads a clock.
package analytics

import (
	"fmt"
	"time"

	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
	"github.com/kairoapp/kairo/internal/utils"
)

// weekdayNames indexes full day names by time.Weekday (Sunday = 0).
var weekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// CalculateTaskStats summarizes the task collection.
func CalculateTaskStats(tasks []models.Task) models.TaskStats {
	stats := models.TaskStats{Total: len(tasks)}

	var totalHours float64
	completedWithTime := 0

	for _, task := range tasks {
		switch task.Status {
		case constants.StatusCompleted:
			stats.Completed++
		case constants.StatusInProgress:
			stats.InProgress++
		case constants.StatusTodo:
			stats.Todo++
		}

		switch task.Priority {
		case constants.PriorityHigh:
			stats.ByPriority.High++
		case constants.PriorityMedium:
			stats.ByPriority.Medium++
		case constants.PriorityLow:
			stats.ByPriority.Low++
		}

		if task.Status == constants.StatusCompleted && task.CompletedAt != nil {
			totalHours += task.CompletedAt.Sub(task.CreatedAt).Hours()
			completedWithTime++
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}
	if completedWithTime > 0 {
		stats.AverageCompletionTime = totalHours / float64(completedWithTime)
	}

	return stats
}

// CalculateHabitStats summarizes the habit collection as of the given
// evaluation time. Streaks.Current is the rounded average current streak
// across all habits; Streaks.Longest is the longest consecutive-day run
// any habit has ever held, regardless of recency.
func CalculateHabitStats(habits []models.Habit, asOf time.Time) models.HabitStats {
	stats := models.HabitStats{Total: len(habits)}

	var totalRate float64
	highestRate := 0.0
	lowestRate := 100.0

	for _, habit := range habits {
		if habit.Archived {
			stats.Archived++
		} else {
			stats.Active++
		}

		if longest := utils.LongestStreak(habit); longest > stats.Streaks.Longest {
			stats.Streaks.Longest = longest
		}

		rate := utils.CompletionRate(habit, asOf)
		totalRate += rate

		// Strict comparisons: first habit encountered wins ties
		if rate > highestRate {
			highestRate = rate
			stats.MostConsistent = habit.ID
		}
		if rate < lowestRate && len(habit.Completions) > 0 {
			lowestRate = rate
			stats.LeastConsistent = habit.ID
		}
	}

	stats.Streaks.Current = utils.AverageStreak(habits, asOf)
	if stats.Total > 0 {
		stats.CompletionRate = totalRate / float64(stats.Total)
	}

	return stats
}

// CalculateTimeStats summarizes the time block collection. The most
// productive day and hour are the ones with the most block starts; ties
// go to the lowest weekday index (Sunday first) and the earliest hour.
func CalculateTimeStats(blocks []models.TimeBlock) models.TimeStats {
	stats := models.TimeStats{TotalTimeBlocks: len(blocks)}

	var totalMinutes float64
	var dayCount [7]int
	var hourCount [24]int

	for _, block := range blocks {
		totalMinutes += block.EndTime.Sub(block.StartTime).Minutes()
		dayCount[block.StartTime.Weekday()]++
		hourCount[block.StartTime.Hour()]++
	}

	stats.TotalHours = totalMinutes / 60
	if len(blocks) > 0 {
		stats.AverageBlockLength = totalMinutes / float64(len(blocks))
	}

	bestDay := 0
	for i, count := range dayCount {
		if count > dayCount[bestDay] {
			bestDay = i
		}
	}
	stats.MostProductiveDay = weekdayNames[bestDay]

	bestHour := 0
	for i, count := range hourCount {
		if count > hourCount[bestHour] {
			bestHour = i
		}
	}
	stats.MostProductiveTime = fmt.Sprintf("%d:00 - %d:00", bestHour, bestHour+1)

	return stats
}

// CalculateGoalStats summarizes the weekly goal collection.
func CalculateGoalStats(goals []models.WeeklyGoal) models.GoalStats {
	stats := models.GoalStats{Total: len(goals)}
	for _, goal := range goals {
		if goal.Completed {
			stats.Completed++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}

// Calculate produces a fresh analytics snapshot over all four collections.
// The four sub-aggregations are independent; asOf is both the habit
// evaluation time and the LastUpdated stamp.
func Calculate(tasks []models.Task, habits []models.Habit, blocks []models.TimeBlock, goals []models.WeeklyGoal, asOf time.Time) models.AnalyticsState {
	return models.AnalyticsState{
		TaskStats:   CalculateTaskStats(tasks),
		HabitStats:  CalculateHabitStats(habits, asOf),
		TimeStats:   CalculateTimeStats(blocks),
		GoalStats:   CalculateGoalStats(goals),
		LastUpdated: asOf,
	}
}
