package services

import (
	"reflect"
	"testing"

	"github.com/terraincognita07/cyclewise/internal/models"
)

func blueprintLogs(t *testing.T, count int) []models.SymptomLog {
	t.Helper()

	start := mustDay(t, "2026-04-01")
	logs := make([]models.SymptomLog, 0, count)
	for index := 0; index < count; index++ {
		logs = append(logs, models.SymptomLog{
			Date:         start.AddDate(0, 0, index),
			SleepQuality: models.DefaultSleepQuality,
		})
	}
	return logs
}

func TestGenerateBlueprintNeedsSevenLogs(t *testing.T) {
	t.Parallel()

	profile := testProfile(t, "2026-04-01", 28, 5)
	for _, count := range []int{0, 1, 6} {
		if _, ok := GenerateBlueprint(blueprintLogs(t, count), profile); ok {
			t.Fatalf("expected no blueprint for %d logs", count)
		}
	}
	if _, ok := GenerateBlueprint(blueprintLogs(t, 7), profile); !ok {
		t.Fatal("expected blueprint for seven logs")
	}
}

func TestGenerateBlueprintCommonSymptoms(t *testing.T) {
	t.Parallel()

	profile := testProfile(t, "2026-04-01", 28, 5)
	logs := blueprintLogs(t, 7)
	for index := 0; index < 4; index++ {
		logs[index].Cramps = models.SeverityModerate
	}
	logs[4].Cramps = models.SeverityMild
	logs[0].Headache = true
	logs[1].Bloating = true
	logs[2].Bloating = true

	blueprint, ok := GenerateBlueprint(logs, profile)
	if !ok {
		t.Fatal("expected blueprint")
	}

	want := []SymptomFrequency{
		{Name: "Cramps", Frequency: 57},
		{Name: "Bloating", Frequency: 29},
		{Name: "Headache", Frequency: 14},
	}
	if !reflect.DeepEqual(blueprint.CommonSymptoms, want) {
		t.Fatalf("unexpected common symptoms:\n got %#v\nwant %#v", blueprint.CommonSymptoms, want)
	}
}

func TestGenerateBlueprintTiesKeepTableOrder(t *testing.T) {
	t.Parallel()

	profile := testProfile(t, "2026-04-01", 28, 5)
	logs := blueprintLogs(t, 8)
	for index := 0; index < 2; index++ {
		logs[index].Headache = true
		logs[index].MoodSwings = models.SeveritySevere
		logs[index].Cramps = models.SeverityModerate
		logs[index].Fatigue = models.SeverityModerate
		logs[index].Bloating = true
	}

	blueprint, _ := GenerateBlueprint(logs, profile)
	names := make([]string, 0, len(blueprint.CommonSymptoms))
	for _, symptom := range blueprint.CommonSymptoms {
		names = append(names, symptom.Name)
		if symptom.Frequency != 25 {
			t.Fatalf("expected 25%% for %s, got %d", symptom.Name, symptom.Frequency)
		}
	}
	wantNames := []string{"Cramps", "Fatigue", "Mood Swings", "Bloating", "Headache"}
	if !reflect.DeepEqual(names, wantNames) {
		t.Fatalf("unexpected tie order: got %v want %v", names, wantNames)
	}
}

func TestGenerateBlueprintEmptySymptomListIsNotNil(t *testing.T) {
	t.Parallel()

	blueprint, ok := GenerateBlueprint(blueprintLogs(t, 7), testProfile(t, "2026-04-01", 28, 5))
	if !ok {
		t.Fatal("expected blueprint")
	}
	if blueprint.CommonSymptoms == nil || len(blueprint.CommonSymptoms) != 0 {
		t.Fatalf("expected empty non-nil symptom list, got %#v", blueprint.CommonSymptoms)
	}
}

func TestGenerateBlueprintEnergyTrend(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		fatigue []models.Severity
		want    string
	}{
		{name: "all severe", fatigue: []models.Severity{3, 3, 3, 3, 3, 3, 3}, want: EnergyTrendLow},
		{name: "mean exactly two", fatigue: []models.Severity{2, 2, 2, 2, 2, 2, 2}, want: EnergyTrendModerate},
		{name: "just above one", fatigue: []models.Severity{2, 1, 1, 1, 1, 1, 1}, want: EnergyTrendModerate},
		{name: "mean exactly one", fatigue: []models.Severity{1, 1, 1, 1, 1, 1, 1}, want: EnergyTrendGood},
		{name: "no fatigue", fatigue: []models.Severity{0, 0, 0, 0, 0, 0, 0}, want: EnergyTrendGood},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logs := blueprintLogs(t, len(testCase.fatigue))
			for index, value := range testCase.fatigue {
				logs[index].Fatigue = value
			}
			blueprint, _ := GenerateBlueprint(logs, testProfile(t, "2026-04-01", 28, 5))
			if blueprint.EnergyTrend != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, blueprint.EnergyTrend)
			}
		})
	}
}

func TestGenerateBlueprintCycleWindows(t *testing.T) {
	t.Parallel()

	blueprint, _ := GenerateBlueprint(blueprintLogs(t, 7), testProfile(t, "2026-04-01", 28, 5))
	if blueprint.SensitiveDays != "Days 4–7 and 25–28" {
		t.Fatalf("unexpected sensitive days %q", blueprint.SensitiveDays)
	}
	if blueprint.CareRhythm != "Focus self-care during menstrual (days 1–5) and late luteal (days 24–28)" {
		t.Fatalf("unexpected care rhythm %q", blueprint.CareRhythm)
	}
}
