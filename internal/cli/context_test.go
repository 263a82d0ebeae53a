package cli

import (
	"testing"
	"time"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input string
		want  []time.Weekday
	}{
		{"mon,wed,fri", []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{"Monday, Saturday", []time.Weekday{time.Monday, time.Saturday}},
		{"0,6", []time.Weekday{time.Sunday, time.Saturday}},
		{"TUE", []time.Weekday{time.Tuesday}},
	}
	for _, tt := range tests {
		got, err := ParseWeekdays(tt.input)
		if err != nil {
			t.Errorf("ParseWeekdays(%q) failed: %v", tt.input, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseWeekdays(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseWeekdays_Invalid(t *testing.T) {
	for _, input := range []string{"funday", "7", "-1", ""} {
		if _, err := ParseWeekdays(input); err == nil {
			t.Errorf("ParseWeekdays(%q) should fail", input)
		}
	}
}

func TestFormatWeekdays(t *testing.T) {
	got := FormatWeekdays([]time.Weekday{time.Monday, time.Wednesday, time.Friday})
	if got != "Mon,Wed,Fri" {
		t.Errorf("FormatWeekdays = %q", got)
	}
	if got := FormatWeekdays(nil); got != "" {
		t.Errorf("FormatWeekdays(nil) = %q", got)
	}
}
