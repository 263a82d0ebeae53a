package models

import "time"

// TaskStats summarizes the task collection.
type TaskStats struct {
	Total                 int            `json:"total"`
	Completed             int            `json:"completed"`
	InProgress            int            `json:"in_progress"`
	Todo                  int            `json:"todo"`
	CompletionRate        float64        `json:"completion_rate"`
	AverageCompletionTime float64        `json:"average_completion_time"` // in hours
	ByPriority            PriorityCounts `json:"by_priority"`
}

// PriorityCounts breaks tasks down by priority.
type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// StreakStats carries the fleet-wide streak summary: Current is the
// average current streak across habits, Longest the longest run any
// habit has ever held.
type StreakStats struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// HabitStats summarizes the habit collection.
type HabitStats struct {
	Total           int         `json:"total"`
	Active          int         `json:"active"`
	Archived        int         `json:"archived"`
	Streaks         StreakStats `json:"streaks"`
	CompletionRate  float64     `json:"completion_rate"`
	MostConsistent  string      `json:"most_consistent"`  // habit id
	LeastConsistent string      `json:"least_consistent"` // habit id
}

// TimeStats summarizes the time block collection.
type TimeStats struct {
	TotalTimeBlocks    int     `json:"total_time_blocks"`
	TotalHours         float64 `json:"total_hours"`
	AverageBlockLength float64 `json:"average_block_length"` // in minutes
	MostProductiveDay  string  `json:"most_productive_day"`  // day of week
	MostProductiveTime string  `json:"most_productive_time"` // "H:00 - H+1:00"
}

// GoalStats summarizes the weekly goal collection.
type GoalStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

// AnalyticsState is a full derived snapshot over all four collections.
// It is recomputed from scratch on demand, never incrementally updated.
type AnalyticsState struct {
	TaskStats   TaskStats  `json:"task_stats"`
	HabitStats  HabitStats `json:"habit_stats"`
	TimeStats   TimeStats  `json:"time_stats"`
	GoalStats   GoalStats  `json:"goal_stats"`
	LastUpdated time.Time  `json:"last_updated"`
}
