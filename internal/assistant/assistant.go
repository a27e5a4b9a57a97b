// Package assistant provides the motivation message and the chat fallback
// replies, plus detection of habit-creation intents in free-form messages.
package assistant

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"unicode"
)

var motivations = []string{
	"Every small step counts! You're building something amazing.",
	"Today is full of possibilities. Let's make it count!",
	"You have the power to create positive change. Believe in yourself!",
	"Progress, not perfection. You're doing great!",
	"Your future self will thank you for the effort you put in today!",
	"Small consistent actions lead to extraordinary results!",
	"You're stronger than you think and capable of more than you imagine!",
}

// Motivation returns a random motivational message.
func Motivation() string {
	return motivations[rand.IntN(len(motivations))]
}

type bucket struct {
	keywords []string
	replies  []string
}

var buckets = []bucket{
	{
		keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon"},
		replies: []string{
			"Hello! I'm here to help you organize your life, manage your days, and build productive habits. How can I assist you today?",
			"Hi there! Ready to help you tackle your goals and optimize your daily routine. What would you like to work on?",
		},
	},
	{
		keywords: []string{"habit", "routine", "daily", "exercise", "workout", "reading", "water"},
		replies: []string{
			"That's fantastic that you're thinking about habits! Building consistent routines is one of the best investments you can make. What specific habit would you like to work on?",
			"Small, consistent actions create amazing results over time. Tell me more about what you'd like to improve.",
		},
	},
	{
		keywords: []string{"goal", "achieve", "success", "improve", "better", "progress"},
		replies: []string{
			"Every small step counts toward bigger achievements. What specific area would you like to focus on?",
			"Success is built one day at a time! Let's break your goals into actionable steps.",
		},
	},
	{
		keywords: []string{"tired", "stressed", "difficult", "hard", "struggle", "help"},
		replies: []string{
			"What you're feeling is completely valid. Every challenge is an opportunity to grow stronger. Let's take this one step at a time.",
			"Even the smallest progress is still progress. What's one tiny thing we can do right now?",
		},
	},
}

var defaultReplies = []string{
	"I'm here to help with whatever you're working on. Whether it's building better habits or staying organized, I'm all ears!",
	"I love helping people build amazing routines. What aspect of your life would you like to improve?",
}

// Reply returns a canned response chosen by keyword bucket.
func Reply(message string) string {
	lower := strings.ToLower(message)
	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return b.replies[rand.IntN(len(b.replies))]
			}
		}
	}
	return defaultReplies[rand.IntN(len(defaultReplies))]
}

// Each pattern consumes the connective after "habit" so overlapping matches
// from different phrasings reduce to the same captured name.
const habitName = `(?:called |named |of |for )?['"]?([^'".,!?]+)['"]?`

var habitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)i want to (?:start|begin|create|add|track) (?:a )?habit[:\s]+` + habitName),
	regexp.MustCompile(`(?i)(?:create|add|start|track) (?:a |the )?habit[:\s]+` + habitName),
	regexp.MustCompile(`(?i)help me (?:track|start|create) (?:a )?habit[:\s]+` + habitName),
	regexp.MustCompile(`(?i)i'm (?:starting|beginning) (?:a |the )?habit[:\s]+` + habitName),
}

var habitNameSuffix = regexp.MustCompile(`(?i)\s*(daily|every day|everyday)$`)

// DetectHabits extracts habit names the user asked to start tracking.
// Returned names are title-cased with recurrence suffixes stripped.
func DetectHabits(message string) []string {
	var names []string
	seen := map[string]bool{}
	for _, p := range habitPatterns {
		for _, match := range p.FindAllStringSubmatch(message, -1) {
			name := habitNameSuffix.ReplaceAllString(strings.TrimSpace(match[1]), "")
			name = titleCase(name)
			if len(name) <= 2 || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
