package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/cyclewise/internal/models"
)

const (
	maxJournalTagLength = 60
	maxJournalTags      = 20
)

var ErrInvalidMood = errors.New("invalid mood")

type JournalEntryInput struct {
	Date       string
	Mood       string
	Symptoms   []string
	Reflection string
}

func ValidateJournalEntry(input JournalEntryInput) (models.JournalEntry, error) {
	day, err := ParseDay(input.Date)
	if err != nil {
		return models.JournalEntry{}, err
	}

	mood := models.Mood(strings.ToLower(strings.TrimSpace(input.Mood)))
	if mood.Rank() < 0 {
		return models.JournalEntry{}, ErrInvalidMood
	}

	return models.JournalEntry{
		Date:       day,
		Mood:       mood,
		Symptoms:   NormalizeJournalTags(input.Symptoms),
		Reflection: TrimNotes(input.Reflection),
	}, nil
}

// NormalizeJournalTags trims tags, drops blanks and case-insensitive
// duplicates, and keeps the first spelling seen.
func NormalizeJournalTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" || len(trimmed) > maxJournalTagLength {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		normalized = append(normalized, trimmed)
		if len(normalized) == maxJournalTags {
			break
		}
	}
	return normalized
}
