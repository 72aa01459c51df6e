package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/cyclewise/internal/models"
)

func mustDay(t *testing.T, raw string) time.Time {
	t.Helper()

	parsed, err := time.ParseInLocation(DayLayout, raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}

func testProfile(t *testing.T, lastPeriod string, cycleLength int, periodLength int) models.CycleProfile {
	t.Helper()

	return models.CycleProfile{
		ID:             models.CycleProfileID,
		LastPeriodDate: mustDay(t, lastPeriod),
		CycleLength:    cycleLength,
		PeriodLength:   periodLength,
	}
}

func symptomLog(t *testing.T, date string, cramps int, fatigue int, mood int, sleep int) models.SymptomLog {
	t.Helper()

	return models.SymptomLog{
		Date:         mustDay(t, date),
		Cramps:       models.Severity(cramps),
		Fatigue:      models.Severity(fatigue),
		MoodSwings:   models.Severity(mood),
		SleepQuality: sleep,
	}
}

type fixedRandom struct {
	index int
	calls int
}

func (source *fixedRandom) Intn(n int) int {
	source.calls++
	return source.index % n
}
