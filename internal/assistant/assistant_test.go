package assistant

import (
	"math/rand"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		message string
		want    category
	}{
		{"Hello there", categoryGreeting},
		{"help me with my tasks", categoryTask},
		{"I want to build a new habit", categoryHabit},
		{"how should I schedule my day", categoryTime},
		{"I can't focus at all", categoryFocus},
		{"I procrastinate too much", categoryMotivation},
		{"what is the meaning of life", categoryDefault},
		// Matching is literal substring search; inflected forms that do
		// not contain a keyword fall through to the default bucket
		{"I keep procrastinating", categoryDefault},
		// Greeting wins even when later keywords also match
		{"hi, can you help with a task", categoryGreeting},
	}
	for _, tt := range tests {
		if got := classify(tt.message); got != tt.want {
			t.Errorf("classify(%q) = %s, want %s", tt.message, got, tt.want)
		}
	}
}

func TestSendMessage_DrawsFromMatchingPool(t *testing.T) {
	bot := NewWithSource(rand.NewSource(42))

	reply := bot.SendMessage("tell me about habits")
	found := false
	for _, candidate := range responses[categoryHabit] {
		if reply == candidate {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("reply %q is not from the habit pool", reply)
	}
}

func TestSendMessage_Deterministic(t *testing.T) {
	a := NewWithSource(rand.NewSource(7))
	b := NewWithSource(rand.NewSource(7))

	for i := 0; i < 10; i++ {
		if got, want := a.SendMessage("focus"), b.SendMessage("focus"); got != want {
			t.Fatalf("same seed diverged on message %d", i)
		}
	}
}

func TestGenerateTitle(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"How do I focus", "How do I..."},
		{"Hello", "Hello"},
		{"one two three", "one two three"},
		{"  spaced   out   message   here ", "spaced out message..."},
		{"", ""},
	}
	for _, tt := range tests {
		if got := GenerateTitle(tt.message); got != tt.want {
			t.Errorf("GenerateTitle(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestResponsePoolsNonEmpty(t *testing.T) {
	for cat, pool := range responses {
		if len(pool) == 0 {
			t.Errorf("category %s has an empty response pool", cat)
		}
		for _, r := range pool {
			if strings.TrimSpace(r) == "" {
				t.Errorf("category %s contains a blank response", cat)
			}
		}
	}
}
