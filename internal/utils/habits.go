package utils

import (
	"math"
	"sort"
	"time"

	"github.com/kairoapp/kairo/internal/constants"
	"github.com/kairoapp/kairo/internal/models"
)

// IsDue determines whether a habit is due on the given date based on its
// frequency. This logic is shared between the per-habit display paths and
// the analytics aggregator to ensure consistency.
func IsDue(habit models.Habit, date time.Time) bool {
	day := Truncate(date)
	start := Truncate(habit.StartDate)

	if day.Before(start) {
		return false
	}
	if habit.EndDate != nil && day.After(Truncate(*habit.EndDate)) {
		return false
	}

	switch habit.Frequency {
	case constants.FrequencyDaily:
		return true
	case constants.FrequencyWeekly:
		// Due on the anniversary weekday of the start date
		return day.Weekday() == start.Weekday()
	case constants.FrequencyMonthly:
		// Due on the start date's day of month. Months without that day
		// (e.g. the 31st in a 30-day month) are skipped entirely.
		return day.Day() == start.Day()
	case constants.FrequencyCustom:
		for _, wd := range habit.CustomDays {
			if day.Weekday() == wd {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CompletionStatus looks up the ledger record for the given calendar day.
// It returns completed=false when no record exists.
func CompletionStatus(habit models.Habit, date time.Time) (bool, string) {
	if c, ok := habit.Completions[DayKey(date)]; ok {
		return c.Completed, c.Note
	}
	return false, ""
}

// CurrentStreak returns the number of consecutive completed days ending at
// or adjacent to asOf. A habit whose latest completion is more than one
// day before asOf has no current streak, not a stale one.
func CurrentStreak(habit models.Habit, asOf time.Time) int {
	days := habit.CompletedDays()
	if len(days) == 0 {
		return 0
	}

	// Newest first; day keys sort lexicographically in date order
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	today := Truncate(asOf)
	yesterday := today.AddDate(0, 0, -1)
	latest, err := ParseDay(days[0])
	if err != nil {
		return 0
	}
	if !SameDay(latest, today) && !SameDay(latest, yesterday) {
		return 0
	}

	streak := 1
	current := latest
	for _, day := range days[1:] {
		d, err := ParseDay(day)
		if err != nil {
			return streak
		}
		if !SameDay(d, current.AddDate(0, 0, -1)) {
			break
		}
		streak++
		current = d
	}

	return streak
}

// LongestStreak returns the longest run of exactly-consecutive completed
// days the habit has ever held, independent of recency.
func LongestStreak(habit models.Habit) int {
	days := habit.CompletedDays()
	if len(days) == 0 {
		return 0
	}

	sort.Strings(days)

	longest := 1
	run := 1
	prev, err := ParseDay(days[0])
	if err != nil {
		return 0
	}
	for _, day := range days[1:] {
		d, err := ParseDay(day)
		if err != nil {
			continue
		}
		if SameDay(d, prev.AddDate(0, 0, 1)) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
		prev = d
	}

	return longest
}

// CompletionRate returns the percentage of due days between the habit's
// start date and asOf (inclusive) that were actually completed. The cost
// is linear in the number of days since the start date, which is fine for
// a personal tracker's time horizons.
func CompletionRate(habit models.Habit, asOf time.Time) float64 {
	today := Truncate(asOf)
	start := Truncate(habit.StartDate)

	if today.Before(start) {
		return 0
	}

	totalDue := 0
	completed := 0
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		if !IsDue(habit, day) {
			continue
		}
		totalDue++
		if done, _ := CompletionStatus(habit, day); done {
			completed++
		}
	}

	if totalDue == 0 {
		return 0
	}
	return float64(completed) / float64(totalDue) * 100
}

// AverageStreak returns the average of per-habit current streaks, rounded
// to the nearest integer. An empty fleet averages to zero.
func AverageStreak(habits []models.Habit, asOf time.Time) int {
	total := 0
	for _, h := range habits {
		total += CurrentStreak(h, asOf)
	}
	count := len(habits)
	if count == 0 {
		count = 1
	}
	return int(math.Round(float64(total) / float64(count)))
}
