package services

import (
	"time"

	"github.com/terraincognita07/cyclewise/internal/models"
)

type InsightProfileReader interface {
	Get() (models.CycleProfile, error)
}

type InsightLogReader interface {
	List() ([]models.SymptomLog, error)
}

type InsightJournalReader interface {
	List() ([]models.JournalEntry, error)
}

// InsightService loads stored snapshots and hands them to the pure engine
// functions. It keeps no state between calls.
type InsightService struct {
	profiles InsightProfileReader
	logs     InsightLogReader
	journal  InsightJournalReader
	rng      RandomSource
}

type CycleOverview struct {
	Phase               PhaseInfo `json:"phase"`
	Progress            float64   `json:"progress"`
	DaysUntilNextPeriod int       `json:"days_until_next_period"`
	NextPeriodDate      string    `json:"next_period_date"`
}

type Dashboard struct {
	Date          string             `json:"date"`
	Cycle         CycleOverview      `json:"cycle"`
	Insights      []PatternInsight   `json:"insights"`
	Blueprint     *WellnessBlueprint `json:"blueprint"`
	JournalPrompt string             `json:"journal_prompt"`
	JournalAlert  string             `json:"journal_alert,omitempty"`
}

func NewInsightService(profiles InsightProfileReader, logs InsightLogReader, journal InsightJournalReader, rng RandomSource) *InsightService {
	return &InsightService{
		profiles: profiles,
		logs:     logs,
		journal:  journal,
		rng:      rng,
	}
}

func BuildCycleOverview(profile models.CycleProfile, now time.Time) CycleOverview {
	return CycleOverview{
		Phase:               CurrentPhase(profile, now),
		Progress:            PhaseProgress(profile, now),
		DaysUntilNextPeriod: DaysUntilNextPeriod(profile, now),
		NextPeriodDate:      FormatDay(NextPeriodDate(profile, now)),
	}
}

func (service *InsightService) Overview(now time.Time) (CycleOverview, error) {
	profile, err := service.profiles.Get()
	if err != nil {
		return CycleOverview{}, err
	}
	return BuildCycleOverview(profile, now), nil
}

func (service *InsightService) Insights(now time.Time) ([]PatternInsight, error) {
	profile, err := service.profiles.Get()
	if err != nil {
		return nil, err
	}
	logs, err := service.logs.List()
	if err != nil {
		return nil, err
	}
	return DetectPatterns(logs, profile, now), nil
}

// Blueprint returns nil without error while there is too little history.
func (service *InsightService) Blueprint() (*WellnessBlueprint, error) {
	profile, err := service.profiles.Get()
	if err != nil {
		return nil, err
	}
	logs, err := service.logs.List()
	if err != nil {
		return nil, err
	}
	blueprint, ok := GenerateBlueprint(logs, profile)
	if !ok {
		return nil, nil
	}
	return &blueprint, nil
}

// JournalPrompt does not need a profile, so it works before onboarding.
func (service *InsightService) JournalPrompt() (string, string, error) {
	logs, err := service.logs.List()
	if err != nil {
		return "", "", err
	}
	entries, err := service.journal.List()
	if err != nil {
		return "", "", err
	}
	alert, _ := JournalPatternAlert(entries)
	return JournalPrompt(logs, entries, service.rng), alert, nil
}

func (service *InsightService) Dashboard(now time.Time) (Dashboard, error) {
	profile, err := service.profiles.Get()
	if err != nil {
		return Dashboard{}, err
	}
	logs, err := service.logs.List()
	if err != nil {
		return Dashboard{}, err
	}
	entries, err := service.journal.List()
	if err != nil {
		return Dashboard{}, err
	}

	dashboard := Dashboard{
		Date:          FormatDay(now),
		Cycle:         BuildCycleOverview(profile, now),
		Insights:      DetectPatterns(logs, profile, now),
		JournalPrompt: JournalPrompt(logs, entries, service.rng),
	}
	if blueprint, ok := GenerateBlueprint(logs, profile); ok {
		dashboard.Blueprint = &blueprint
	}
	if alert, ok := JournalPatternAlert(entries); ok {
		dashboard.JournalAlert = alert
	}
	return dashboard, nil
}
