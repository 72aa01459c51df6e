package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/cyclewise/internal/models"
)

func newTestInsightService(t *testing.T, profile *models.CycleProfile, logs []models.SymptomLog, entries []models.JournalEntry) *InsightService {
	t.Helper()

	profileRepo := &stubProfileRepo{}
	if profile != nil {
		profileRepo.profile = *profile
		profileRepo.found = true
	}
	return NewInsightService(
		NewProfileService(profileRepo, nil),
		NewSymptomLogService(&stubSymptomLogRepo{logs: logs}),
		NewJournalService(&stubJournalRepo{entries: entries}),
		&fixedRandom{index: 2},
	)
}

func TestInsightServiceRequiresProfile(t *testing.T) {
	t.Parallel()

	service := newTestInsightService(t, nil, nil, nil)
	now := mustDay(t, "2026-03-10")

	if _, err := service.Overview(now); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound from overview, got %v", err)
	}
	if _, err := service.Dashboard(now); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound from dashboard, got %v", err)
	}

	prompt, alert, err := service.JournalPrompt()
	if err != nil {
		t.Fatalf("expected prompt to work before onboarding: %v", err)
	}
	if prompt != genericJournalPrompts[2] || alert != "" {
		t.Fatalf("unexpected prompt %q alert %q", prompt, alert)
	}
}

func TestInsightServiceOverview(t *testing.T) {
	t.Parallel()

	profile := testProfile(t, "2026-03-01", 28, 5)
	service := newTestInsightService(t, &profile, nil, nil)

	overview, err := service.Overview(mustDay(t, "2026-03-14"))
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.Phase.Phase != PhaseOvulatory || overview.Phase.Day != 14 {
		t.Fatalf("unexpected phase %+v", overview.Phase)
	}
	if overview.Progress != 50 || overview.DaysUntilNextPeriod != 14 || overview.NextPeriodDate != "2026-03-29" {
		t.Fatalf("unexpected overview %+v", overview)
	}
}

func TestInsightServiceBlueprintNeedsHistory(t *testing.T) {
	t.Parallel()

	profile := testProfile(t, "2026-04-01", 28, 5)
	short := newTestInsightService(t, &profile, blueprintLogs(t, 6), nil)
	blueprint, err := short.Blueprint()
	if err != nil || blueprint != nil {
		t.Fatalf("expected nil blueprint without error, got %+v err=%v", blueprint, err)
	}

	full := newTestInsightService(t, &profile, blueprintLogs(t, 7), nil)
	blueprint, err = full.Blueprint()
	if err != nil || blueprint == nil {
		t.Fatalf("expected blueprint, got %+v err=%v", blueprint, err)
	}
}

func TestInsightServiceDashboard(t *testing.T) {
	t.Parallel()

	profile := testProfile(t, "2026-03-01", 28, 5)
	logs := []models.SymptomLog{
		symptomLog(t, "2026-03-09", 3, 3, 3, 1),
		symptomLog(t, "2026-03-08", 2, 2, 2, 2),
		symptomLog(t, "2026-03-07", 2, 2, 2, 1),
	}
	entries := []models.JournalEntry{
		journalEntry(t, "2026-03-07", models.MoodLow),
		journalEntry(t, "2026-03-08", models.MoodRough),
		journalEntry(t, "2026-03-09", models.MoodLow),
	}
	service := newTestInsightService(t, &profile, logs, entries)

	dashboard, err := service.Dashboard(mustDay(t, "2026-03-10"))
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dashboard.Date != "2026-03-10" || dashboard.Cycle.Phase.Day != 10 {
		t.Fatalf("unexpected dashboard header %+v", dashboard)
	}
	if len(dashboard.Insights) != 4 {
		t.Fatalf("expected four insights, got %#v", dashboard.Insights)
	}
	if dashboard.Blueprint != nil {
		t.Fatal("expected no blueprint with three logs")
	}
	if dashboard.JournalPrompt != MoodReflectionPrompt {
		t.Fatalf("expected mood prompt, got %q", dashboard.JournalPrompt)
	}
	if dashboard.JournalAlert != LowMoodJournalAlert {
		t.Fatalf("expected low mood alert, got %q", dashboard.JournalAlert)
	}
}
