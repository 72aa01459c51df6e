package api

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclewise/internal/i18n"
	"github.com/terraincognita07/cyclewise/internal/services"
)

const (
	unlockAttemptLimit  = 8
	unlockAttemptWindow = 15 * time.Minute
)

// Dependencies lists the services the HTTP layer delegates to.
type Dependencies struct {
	Profiles    *services.ProfileService
	SymptomLogs *services.SymptomLogService
	Entries     *services.CycleEntryService
	Journal     *services.JournalService
	Insights    *services.InsightService
	Lock        *services.LockService
	Export      *services.ExportService
	I18n        *i18n.Manager
	Location    *time.Location
	Log         logrus.FieldLogger
	// CookieSecure marks the language and unlock cookies Secure.
	CookieSecure bool
}

type Handler struct {
	profiles      *services.ProfileService
	symptomLogs   *services.SymptomLogService
	entries       *services.CycleEntryService
	journal       *services.JournalService
	insights      *services.InsightService
	lock          *services.LockService
	export        *services.ExportService
	i18n          *i18n.Manager
	location      *time.Location
	log           logrus.FieldLogger
	cookieSecure  bool
	unlockLimiter *attemptLimiter
	now           func() time.Time
}

type profileResponse struct {
	LastPeriodDate string `json:"last_period_date"`
	CycleLength    int    `json:"cycle_length"`
	PeriodLength   int    `json:"period_length"`
}

type symptomLogResponse struct {
	Date         string `json:"date"`
	Cramps       int    `json:"cramps"`
	Fatigue      int    `json:"fatigue"`
	MoodSwings   int    `json:"mood_swings"`
	SleepQuality int    `json:"sleep_quality"`
	Bloating     bool   `json:"bloating"`
	Headache     bool   `json:"headache"`
	Notes        string `json:"notes"`
}

type cycleEntryResponse struct {
	Date     string   `json:"date"`
	Flow     string   `json:"flow"`
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type journalEntryResponse struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	Mood       string   `json:"mood"`
	Symptoms   []string `json:"symptoms"`
	Reflection string   `json:"reflection"`
	CreatedAt  string   `json:"created_at"`
}
