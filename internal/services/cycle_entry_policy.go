package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/cyclewise/internal/models"
)

var (
	ErrInvalidFlow         = errors.New("invalid flow")
	ErrInvalidEntryMood    = errors.New("invalid entry mood")
	ErrInvalidEntrySymptom = errors.New("invalid entry symptom")
)

type CycleEntryInput struct {
	Date     string
	Flow     string
	Mood     string
	Symptoms []string
	Notes    string
}

// ValidateCycleEntry fills a blank flow with medium and a blank mood with
// neutral.
func ValidateCycleEntry(input CycleEntryInput) (models.CycleEntry, error) {
	day, err := ParseDay(input.Date)
	if err != nil {
		return models.CycleEntry{}, err
	}

	flow, ok := normalizeChoice(input.Flow, models.FlowMedium, models.Flows())
	if !ok {
		return models.CycleEntry{}, ErrInvalidFlow
	}
	mood, ok := normalizeChoice(input.Mood, models.EntryMoodNeutral, models.EntryMoods())
	if !ok {
		return models.CycleEntry{}, ErrInvalidEntryMood
	}
	symptoms, err := NormalizeCycleEntrySymptoms(input.Symptoms)
	if err != nil {
		return models.CycleEntry{}, err
	}

	return models.CycleEntry{
		Date:     day,
		Flow:     flow,
		Mood:     mood,
		Symptoms: symptoms,
		Notes:    TrimNotes(input.Notes),
	}, nil
}

// NormalizeCycleEntrySymptoms maps each tag onto its spelling in the fixed
// list and drops duplicates. Any tag outside the list is rejected.
func NormalizeCycleEntrySymptoms(tags []string) ([]string, error) {
	known := models.CycleEntrySymptoms()
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		canonical := ""
		for _, candidate := range known {
			if strings.EqualFold(strings.TrimSpace(tag), candidate) {
				canonical = candidate
				break
			}
		}
		if canonical == "" {
			return nil, ErrInvalidEntrySymptom
		}
		if _, exists := seen[canonical]; exists {
			continue
		}
		seen[canonical] = struct{}{}
		normalized = append(normalized, canonical)
	}
	return normalized, nil
}

func normalizeChoice(raw string, fallback string, allowed []string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return fallback, true
	}
	for _, candidate := range allowed {
		if value == candidate {
			return value, true
		}
	}
	return "", false
}
