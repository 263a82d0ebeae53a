package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row codecs shared by both database dialects. All timestamps are stored
// as RFC3339 strings, lists as comma-joined text.

// EncodeTime formats a timestamp for storage.
func EncodeTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// DecodeTime parses a stored timestamp.
func DecodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// EncodeTags joins a tag list for storage.
func EncodeTags(tags []string) string {
	return strings.Join(tags, ",")
}

// DecodeTags splits a stored tag list.
func DecodeTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// EncodeWeekdays joins a weekday list for storage.
func EncodeWeekdays(days []time.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// DecodeWeekdays splits a stored weekday list.
func DecodeWeekdays(s string) ([]time.Weekday, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]time.Weekday, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("failed to parse weekday %q: %w", part, err)
		}
		days[i] = time.Weekday(n)
	}
	return days, nil
}
