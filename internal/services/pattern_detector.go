package services

import (
	"time"

	"github.com/montanaflynn/stats"
	"github.com/terraincognita07/cyclewise/internal/models"
)

type InsightType string

const (
	InsightPrediction InsightType = "prediction"
	InsightPattern    InsightType = "pattern"
	InsightSuggestion InsightType = "suggestion"
)

type PatternInsight struct {
	Type    InsightType `json:"type"`
	Message string      `json:"message"`
	Icon    string      `json:"icon"`
}

const (
	minPatternLogs       = 3
	minCohortSize        = 2
	cohortDayWindow      = 2
	elevatedSeverityMean = 2.0
	recentSleepWindow    = 5
	poorSleepQuality     = 2
	minPoorSleepNights   = 3
)

var (
	fatiguePrediction = PatternInsight{
		Type:    InsightPrediction,
		Message: "You often feel fatigue around this time — prioritize rest and hydration today.",
		Icon:    "💤",
	}
	crampsPrediction = PatternInsight{
		Type:    InsightPrediction,
		Message: "Cramps tend to be higher around this phase. Consider a warm compress and gentle stretching.",
		Icon:    "🫂",
	}
	moodPrediction = PatternInsight{
		Type:    InsightPrediction,
		Message: "Mood shifts are common for you around this time. Be kind to yourself today.",
		Icon:    "💜",
	}
	sleepSuggestion = PatternInsight{
		Type:    InsightSuggestion,
		Message: "Your recent sleep quality has been low. Try a calming bedtime routine tonight.",
		Icon:    "🌙",
	}
)

// DetectPatterns looks for symptoms that ran high on the same cycle days in
// the past and for a recent run of poor sleep. Logs are re-sorted newest
// first, so callers may pass them in any order.
func DetectPatterns(logs []models.SymptomLog, profile models.CycleProfile, now time.Time) []PatternInsight {
	insights := make([]PatternInsight, 0)
	if len(logs) < minPatternLogs {
		return insights
	}

	sorted := sortLogsNewestFirst(logs)
	cohort := sameCycleDayCohort(sorted, profile, now)

	if len(cohort) >= minCohortSize {
		if meanSeverity(cohort, func(entry models.SymptomLog) models.Severity { return entry.Fatigue }) >= elevatedSeverityMean {
			insights = append(insights, fatiguePrediction)
		}
		if meanSeverity(cohort, func(entry models.SymptomLog) models.Severity { return entry.Cramps }) >= elevatedSeverityMean {
			insights = append(insights, crampsPrediction)
		}
		if meanSeverity(cohort, func(entry models.SymptomLog) models.Severity { return entry.MoodSwings }) >= elevatedSeverityMean {
			insights = append(insights, moodPrediction)
		}
	}

	poorNights := 0
	for _, entry := range headLogs(sorted, recentSleepWindow) {
		if entry.SleepQuality <= poorSleepQuality {
			poorNights++
		}
	}
	if poorNights >= minPoorSleepNights {
		insights = append(insights, sleepSuggestion)
	}

	return insights
}

// sameCycleDayCohort keeps logs whose own cycle day is within two days of
// today's. The distance is a plain difference and does not wrap around the
// cycle boundary.
func sameCycleDayCohort(logs []models.SymptomLog, profile models.CycleProfile, now time.Time) []models.SymptomLog {
	today := CycleDay(profile, now)
	cohort := make([]models.SymptomLog, 0, len(logs))
	for _, entry := range logs {
		logDay := cycleDayAt(profile.LastPeriodDate, profile.CycleLength, entry.Date)
		if absInt(logDay-today) <= cohortDayWindow {
			cohort = append(cohort, entry)
		}
	}
	return cohort
}

func meanSeverity(logs []models.SymptomLog, pick func(models.SymptomLog) models.Severity) float64 {
	values := make(stats.Float64Data, 0, len(logs))
	for _, entry := range logs {
		values = append(values, float64(pick(entry)))
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}
