package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/cyclewise/internal/models"
)

const MaxNotesLength = 2000

var (
	ErrInvalidSeverity     = errors.New("invalid symptom severity")
	ErrInvalidSleepQuality = errors.New("invalid sleep quality")
)

type SymptomLogInput struct {
	Date         string
	Cramps       int
	Fatigue      int
	MoodSwings   int
	SleepQuality int
	Bloating     bool
	Headache     bool
	Notes        string
}

func ValidateSymptomLog(input SymptomLogInput) (models.SymptomLog, error) {
	day, err := ParseDay(input.Date)
	if err != nil {
		return models.SymptomLog{}, err
	}

	severities := []int{input.Cramps, input.Fatigue, input.MoodSwings}
	for _, value := range severities {
		if !models.Severity(value).Valid() {
			return models.SymptomLog{}, ErrInvalidSeverity
		}
	}
	if input.SleepQuality < models.MinSleepQuality || input.SleepQuality > models.MaxSleepQuality {
		return models.SymptomLog{}, ErrInvalidSleepQuality
	}

	return models.SymptomLog{
		Date:         day,
		Cramps:       models.Severity(input.Cramps),
		Fatigue:      models.Severity(input.Fatigue),
		MoodSwings:   models.Severity(input.MoodSwings),
		SleepQuality: input.SleepQuality,
		Bloating:     input.Bloating,
		Headache:     input.Headache,
		Notes:        TrimNotes(input.Notes),
	}, nil
}

// TrimNotes caps free text at MaxNotesLength characters.
func TrimNotes(value string) string {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) <= MaxNotesLength {
		return value
	}
	return string([]rune(value)[:MaxNotesLength])
}
