package utils

import (
	"testing"
	"time"

	"github.com/kairoapp/kairo/internal/models"
)

func TestDayKeyRoundTrip(t *testing.T) {
	original := "2024-03-09"
	parsed, err := ParseDay(original)
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if got := DayKey(parsed); got != original {
		t.Errorf("DayKey(ParseDay(%q)) = %q", original, got)
	}
}

func TestParseDay_Invalid(t *testing.T) {
	for _, input := range []string{"", "03/09/2024", "2024-13-01", "not-a-date"} {
		if _, err := ParseDay(input); err == nil {
			t.Errorf("ParseDay(%q) should fail", input)
		}
	}
}

func TestTruncate(t *testing.T) {
	full := time.Date(2024, 3, 9, 17, 45, 30, 123, time.Local)
	got := Truncate(full)

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("Truncate left a time-of-day component: %v", got)
	}
	if !SameDay(got, full) {
		t.Error("Truncate changed the calendar day")
	}
}

func TestStartAndEndOfWeek(t *testing.T) {
	// 2024-01-03 is a Wednesday
	wednesday := day("2024-01-03")

	if got := StartOfWeek(wednesday); DayKey(got) != "2023-12-31" {
		t.Errorf("StartOfWeek = %s, want 2023-12-31 (Sunday)", DayKey(got))
	}
	if got := EndOfWeek(wednesday); DayKey(got) != "2024-01-06" {
		t.Errorf("EndOfWeek = %s, want 2024-01-06 (Saturday)", DayKey(got))
	}

	// A Sunday is its own week start
	sunday := day("2024-01-07")
	if got := StartOfWeek(sunday); DayKey(got) != "2024-01-07" {
		t.Errorf("StartOfWeek(Sunday) = %s, want 2024-01-07", DayKey(got))
	}
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates(day("2024-01-03"))
	if len(dates) != 7 {
		t.Fatalf("WeekDates returned %d days", len(dates))
	}
	if dates[0].Weekday() != time.Sunday {
		t.Errorf("week starts on %s, want Sunday", dates[0].Weekday())
	}
	if dates[6].Weekday() != time.Saturday {
		t.Errorf("week ends on %s, want Saturday", dates[6].Weekday())
	}
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"2024-01-01", "2024-01-07", "Jan 1 - 7, 2024"},
		{"2024-01-30", "2024-02-02", "Jan 30 - Feb 2, 2024"},
		{"2023-12-30", "2024-01-02", "Dec 30, 2023 - Jan 2, 2024"},
	}
	for _, tt := range tests {
		if got := FormatDateRange(day(tt.start), day(tt.end)); got != tt.want {
			t.Errorf("FormatDateRange(%s, %s) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestTimeBlocksForDate(t *testing.T) {
	blocks := []models.TimeBlock{
		{ID: "a", StartTime: time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)},
		{ID: "b", StartTime: time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC)},
		{ID: "c", StartTime: time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC)},
	}

	got := TimeBlocksForDate(blocks, day("2024-01-03"))
	if len(got) != 2 {
		t.Fatalf("got %d blocks, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("got blocks %s, %s", got[0].ID, got[1].ID)
	}
}

func TestGoalsForWeek(t *testing.T) {
	goals := []models.WeeklyGoal{
		{ID: "this", WeekStartDate: day("2023-12-31")},
		{ID: "next", WeekStartDate: day("2024-01-07")},
	}

	got := GoalsForWeek(goals, day("2024-01-03"))
	if len(got) != 1 || got[0].ID != "this" {
		t.Errorf("GoalsForWeek returned %d goals, want only the current week's", len(got))
	}
}

func TestRangesOverlap(t *testing.T) {
	base := day("2024-01-03")
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{"disjoint", 9, 10, 11, 12, false},
		{"touching endpoints", 9, 10, 10, 11, false},
		{"partial overlap", 9, 11, 10, 12, true},
		{"contained", 9, 12, 10, 11, true},
	}
	for _, tt := range tests {
		if got := RangesOverlap(at(tt.s1), at(tt.e1), at(tt.s2), at(tt.e2)); got != tt.want {
			t.Errorf("%s: RangesOverlap = %v, want %v", tt.name, got, tt.want)
		}
	}
}
