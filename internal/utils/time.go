package utils

import (
	"fmt"
	"time"

	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
)

// Truncate returns the date at midnight in its own location, dropping the
// time-of-day portion. All date-only comparisons go through this.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey formats a time as the canonical day key (YYYY-MM-DD) used by the
// completion ledger and the storage layer.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a day key (YYYY-MM-DD) into a midnight time value.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", day, err)
	}
	return t, nil
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// StartOfWeek returns midnight on the Sunday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	return Truncate(t).AddDate(0, 0, -int(t.Weekday()))
}

// EndOfWeek returns midnight on the Saturday of the week containing t.
func EndOfWeek(t time.Time) time.Time {
	return Truncate(t).AddDate(0, 0, 6-int(t.Weekday()))
}

// WeekDates returns the seven days of the week containing t, Sunday first.
func WeekDates(t time.Time) []time.Time {
	start := StartOfWeek(t)
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// FormatShortDate formats a date as "Mon, Jan 2".
func FormatShortDate(t time.Time) string {
	return t.Format(constants.ShortDateFormat)
}

// FormatClock formats a time as "3:04 PM".
func FormatClock(t time.Time) string {
	return t.Format(constants.ClockFormat)
}

// FormatDateRange formats a date range like "Jan 1 - Jan 7, 2023",
// repeating the month and year only when they differ.
func FormatDateRange(start, end time.Time) string {
	startLayout := "Jan 2"
	if start.Year() != end.Year() {
		startLayout = "Jan 2, 2006"
	}
	endLayout := "Jan 2, 2006"
	if start.Year() == end.Year() && start.Month() == end.Month() {
		endLayout = "2, 2006"
	}
	return fmt.Sprintf("%s - %s", start.Format(startLayout), end.Format(endLayout))
}

// TimeBlocksForDate returns the blocks whose start time falls on the given
// calendar day.
func TimeBlocksForDate(blocks []models.TimeBlock, date time.Time) []models.TimeBlock {
	var result []models.TimeBlock
	for _, block := range blocks {
		if SameDay(block.StartTime, date) {
			result = append(result, block)
		}
	}
	return result
}

// GoalsForWeek returns the weekly goals belonging to the week containing
// the given date.
func GoalsForWeek(goals []models.WeeklyGoal, date time.Time) []models.WeeklyGoal {
	weekStart := StartOfWeek(date)
	var result []models.WeeklyGoal
	for _, goal := range goals {
		if SameDay(goal.WeekStartDate, weekStart) {
			result = append(result, goal)
		}
	}
	return result
}

// RangesOverlap reports whether two half-open time ranges overlap.
func RangesOverlap(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && end1.After(start2)
}
