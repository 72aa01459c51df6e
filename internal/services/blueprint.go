package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/terraincognita07/cyclewise/internal/models"
)

const (
	minBlueprintLogs       = 7
	maxBlueprintSymptoms   = 5
	notableSymptomSeverity = models.SeverityModerate
)

const (
	EnergyTrendLow      = "Generally lower energy — build in more rest days"
	EnergyTrendModerate = "Moderate energy — balanced pacing recommended"
	EnergyTrendGood     = "Generally good energy — maintain your current rhythm"
)

type SymptomFrequency struct {
	Name      string `json:"name"`
	Frequency int    `json:"frequency"`
}

type WellnessBlueprint struct {
	CommonSymptoms []SymptomFrequency `json:"common_symptoms"`
	EnergyTrend    string             `json:"energy_trend"`
	SensitiveDays  string             `json:"sensitive_days"`
	CareRhythm     string             `json:"care_rhythm"`
}

type blueprintSymptom struct {
	Name    string
	Present func(models.SymptomLog) bool
}

// Table order doubles as the tie-break when two symptoms share a frequency.
var blueprintSymptoms = []blueprintSymptom{
	{Name: "Cramps", Present: func(entry models.SymptomLog) bool { return entry.Cramps >= notableSymptomSeverity }},
	{Name: "Fatigue", Present: func(entry models.SymptomLog) bool { return entry.Fatigue >= notableSymptomSeverity }},
	{Name: "Mood Swings", Present: func(entry models.SymptomLog) bool { return entry.MoodSwings >= notableSymptomSeverity }},
	{Name: "Bloating", Present: func(entry models.SymptomLog) bool { return entry.Bloating }},
	{Name: "Headache", Present: func(entry models.SymptomLog) bool { return entry.Headache }},
}

// GenerateBlueprint summarises a longer log history. The boolean is false
// when there are fewer than seven logs to draw from.
func GenerateBlueprint(logs []models.SymptomLog, profile models.CycleProfile) (WellnessBlueprint, bool) {
	if len(logs) < minBlueprintLogs {
		return WellnessBlueprint{}, false
	}

	return WellnessBlueprint{
		CommonSymptoms: commonSymptoms(logs),
		EnergyTrend:    energyTrend(logs),
		SensitiveDays: fmt.Sprintf("Days %d–%d and %d–%d",
			profile.PeriodLength-1,
			profile.PeriodLength+2,
			profile.CycleLength-3,
			profile.CycleLength,
		),
		CareRhythm: fmt.Sprintf("Focus self-care during menstrual (days 1–%d) and late luteal (days %d–%d)",
			profile.PeriodLength,
			profile.CycleLength-4,
			profile.CycleLength,
		),
	}, true
}

func commonSymptoms(logs []models.SymptomLog) []SymptomFrequency {
	frequencies := make([]SymptomFrequency, 0, len(blueprintSymptoms))
	for _, symptom := range blueprintSymptoms {
		count := 0
		for _, entry := range logs {
			if symptom.Present(entry) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		frequencies = append(frequencies, SymptomFrequency{
			Name:      symptom.Name,
			Frequency: int(math.Round(float64(count) / float64(len(logs)) * 100)),
		})
	}

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Frequency > frequencies[j].Frequency
	})
	if len(frequencies) > maxBlueprintSymptoms {
		frequencies = frequencies[:maxBlueprintSymptoms]
	}
	return frequencies
}

func energyTrend(logs []models.SymptomLog) string {
	averageFatigue := meanSeverity(logs, func(entry models.SymptomLog) models.Severity { return entry.Fatigue })
	switch {
	case averageFatigue > 2:
		return EnergyTrendLow
	case averageFatigue > 1:
		return EnergyTrendModerate
	default:
		return EnergyTrendGood
	}
}
