// Package assistant implements the canned-response productivity
// assistant. It classifies the user's message by keyword and answers
// from a fixed response pool; there is no model behind it and there is
// not supposed to be one.
package assistant

import (
	"math/rand"
	"strings"
	"time"
)

type category string

const (
	categoryGreeting   category = "greeting"
	categoryTask       category = "task"
	categoryHabit      category = "habit"
	categoryTime       category = "time"
	categoryFocus      category = "focus"
	categoryMotivation category = "motivation"
	categoryDefault    category = "default"
)

// keywords maps each category to the substrings that select it. The
// order of classification is fixed: greeting, task, habit, time, focus,
// motivation, then the default bucket.
var keywords = map[category][]string{
	categoryGreeting:   {"hello", "hi", "hey", "greetings"},
	categoryTask:       {"task", "todo", "to-do", "to do"},
	categoryHabit:      {"habit", "routine", "daily"},
	categoryTime:       {"time", "schedule", "planning", "calendar"},
	categoryFocus:      {"focus", "concentrate", "distraction", "attention"},
	categoryMotivation: {"motivate", "motivation", "inspired", "procrastinate"},
}

var responses = map[category][]string{
	categoryGreeting: {
		"Hello! I'm Kairo, your productivity assistant. How can I help you today?",
		"Hi there! I'm here to help you stay productive. What can I assist you with?",
		"Greetings! I'm your Kairo assistant. How can I make your day more productive?",
	},
	categoryTask: {
		"I can help you manage your tasks. Would you like me to help you create a new task, prioritize existing ones, or suggest a task to work on next?",
		"Task management is one of my specialties. I can help you break down complex tasks, set deadlines, or organize your task list.",
		"For effective task management, consider using the Eisenhower Matrix to categorize tasks by urgency and importance. Would you like me to explain how it works?",
	},
	categoryHabit: {
		"Building good habits is key to long-term productivity. What habit are you trying to develop or maintain?",
		"Habits are formed through consistent repetition. The key is to start small and build up gradually. What habit are you working on?",
		"For habit building, I recommend the 'habit stacking' technique - attaching a new habit to an existing one. Would you like some examples?",
	},
	categoryTime: {
		"Time management is essential for productivity. Have you tried techniques like the Pomodoro method or time blocking?",
		"To manage your time effectively, consider identifying your most productive hours and scheduling important tasks during those times.",
		"One effective time management strategy is to plan your day the night before, so you can hit the ground running in the morning.",
	},
	categoryFocus: {
		"Improving focus can significantly boost productivity. Try minimizing distractions, taking regular breaks, and practicing mindfulness.",
		"For better focus, consider the 5-minute rule: commit to just 5 minutes of work on a task, and often you'll find yourself continuing beyond that.",
		"Deep work requires eliminating distractions. Consider setting aside specific times for focused work, and communicate to others that you shouldn't be interrupted during these periods.",
	},
	categoryMotivation: {
		"Staying motivated can be challenging. Try setting clear, achievable goals and celebrating small wins along the way.",
		"Motivation often follows action rather than preceding it. Sometimes the best approach is to just start, even if you don't feel motivated initially.",
		"Consider finding an accountability partner or joining a community with similar goals to stay motivated and committed.",
	},
	categoryDefault: {
		"I'm here to help with your productivity needs. Could you provide more details about what you're looking for?",
		"I can assist with task management, habit building, time management, and more. What specific area would you like help with?",
		"As your productivity assistant, I'm ready to help you achieve your goals. What would you like to focus on today?",
	},
}

// Assistant answers messages from its canned response pools. The random
// source is injected so tests can pin down which pool entry comes back.
type Assistant struct {
	rng *rand.Rand
}

// New returns an assistant seeded from the wall clock.
func New() *Assistant {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns an assistant drawing responses from the given
// random source.
func NewWithSource(src rand.Source) *Assistant {
	return &Assistant{rng: rand.New(src)}
}

func classify(message string) category {
	lower := strings.ToLower(message)
	for _, cat := range []category{
		categoryGreeting, categoryTask, categoryHabit,
		categoryTime, categoryFocus, categoryMotivation,
	} {
		for _, kw := range keywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return categoryDefault
}

// SendMessage returns a canned response for the given user message.
func (a *Assistant) SendMessage(message string) string {
	pool := responses[classify(message)]
	return pool[a.rng.Intn(len(pool))]
}

// GenerateTitle derives a conversation title from its first message: the
// first three words, with an ellipsis when the message runs longer.
func GenerateTitle(message string) string {
	words := strings.Fields(message)
	if len(words) <= 3 {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:3], " ") + "..."
}
