package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclewise/internal/models"
	"github.com/terraincognita07/cyclewise/internal/services"
)

type errorMapping struct {
	target error
	status int
	key    string
}

var serviceErrorMappings = []errorMapping{
	{services.ErrInvalidDate, fiber.StatusBadRequest, "error.invalid_date"},
	{services.ErrCycleLengthOutOfRange, fiber.StatusBadRequest, "error.cycle_length_out_of_range"},
	{services.ErrPeriodLengthOutOfRange, fiber.StatusBadRequest, "error.period_length_out_of_range"},
	{services.ErrPeriodLengthIncompatible, fiber.StatusBadRequest, "error.period_length_incompatible"},
	{services.ErrProfileNotFound, fiber.StatusNotFound, "error.profile_not_found"},
	{services.ErrInvalidSeverity, fiber.StatusBadRequest, "error.invalid_severity"},
	{services.ErrInvalidSleepQuality, fiber.StatusBadRequest, "error.invalid_sleep_quality"},
	{services.ErrSymptomLogNotFound, fiber.StatusNotFound, "error.symptom_log_not_found"},
	{services.ErrInvalidFlow, fiber.StatusBadRequest, "error.invalid_flow"},
	{services.ErrInvalidEntryMood, fiber.StatusBadRequest, "error.invalid_entry_mood"},
	{services.ErrInvalidEntrySymptom, fiber.StatusBadRequest, "error.invalid_entry_symptom"},
	{services.ErrCycleEntryNotFound, fiber.StatusNotFound, "error.cycle_entry_not_found"},
	{services.ErrInvalidMood, fiber.StatusBadRequest, "error.invalid_mood"},
	{services.ErrInvalidJournalIdentifier, fiber.StatusBadRequest, "error.invalid_journal_id"},
	{services.ErrJournalEntryNotFound, fiber.StatusNotFound, "error.journal_entry_not_found"},
	{services.ErrRangeFromDateInvalid, fiber.StatusBadRequest, "error.invalid_range_from"},
	{services.ErrRangeToDateInvalid, fiber.StatusBadRequest, "error.invalid_range_to"},
	{services.ErrRangeInvalid, fiber.StatusBadRequest, "error.invalid_range"},
	{services.ErrWeakPasscode, fiber.StatusBadRequest, "error.weak_passcode"},
	{services.ErrInvalidPasscode, fiber.StatusUnauthorized, "error.invalid_passcode"},
	{services.ErrPasscodeNotSet, fiber.StatusConflict, "error.passcode_not_set"},
	{services.ErrMissingSecretKey, fiber.StatusServiceUnavailable, "error.lock_unavailable"},
	{services.ErrUnlockTokenExpired, fiber.StatusUnauthorized, "error.unlock_expired"},
	{services.ErrUnlockTokenMissing, fiber.StatusUnauthorized, "error.app_locked"},
	{services.ErrUnlockTokenInvalid, fiber.StatusUnauthorized, "error.app_locked"},
	{services.ErrUnlockTokenInvalidPurpose, fiber.StatusUnauthorized, "error.app_locked"},
	{services.ErrUnlockTokenStale, fiber.StatusUnauthorized, "error.app_locked"},
}

// apiError writes {"error": message} with the message localized for the
// request language. Unknown keys are sent as they are.
func apiError(c *fiber.Ctx, status int, key string) error {
	return c.Status(status).JSON(fiber.Map{"error": translateMessage(currentMessages(c), key)})
}

func (handler *Handler) serviceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrProfileNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":            translateMessage(currentMessages(c), "error.profile_not_found"),
			"needs_onboarding": true,
		})
	}
	for _, mapping := range serviceErrorMappings {
		if errors.Is(err, mapping.target) {
			return apiError(c, mapping.status, mapping.key)
		}
	}

	handler.log.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error("api: request failed")
	return apiError(c, fiber.StatusInternalServerError, "error.internal")
}

func translateMessage(messages map[string]string, key string) string {
	if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}

// requestToday honours ?date=YYYY-MM-DD so callers can ask about any day.
// Without it the current date in the configured location is used.
func (handler *Handler) requestToday(c *fiber.Ctx) (time.Time, error) {
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		return services.ParseDay(raw)
	}
	return services.TodayAt(handler.now(), handler.location), nil
}

func newProfileResponse(profile models.CycleProfile) profileResponse {
	return profileResponse{
		LastPeriodDate: services.FormatDay(profile.LastPeriodDate),
		CycleLength:    profile.CycleLength,
		PeriodLength:   profile.PeriodLength,
	}
}

func newSymptomLogResponse(entry models.SymptomLog) symptomLogResponse {
	return symptomLogResponse{
		Date:         services.FormatDay(entry.Date),
		Cramps:       int(entry.Cramps),
		Fatigue:      int(entry.Fatigue),
		MoodSwings:   int(entry.MoodSwings),
		SleepQuality: entry.SleepQuality,
		Bloating:     entry.Bloating,
		Headache:     entry.Headache,
		Notes:        entry.Notes,
	}
}

func newCycleEntryResponse(entry models.CycleEntry) cycleEntryResponse {
	symptoms := make([]string, len(entry.Symptoms))
	copy(symptoms, entry.Symptoms)
	return cycleEntryResponse{
		Date:     services.FormatDay(entry.Date),
		Flow:     entry.Flow,
		Mood:     entry.Mood,
		Symptoms: symptoms,
		Notes:    entry.Notes,
	}
}

func newJournalEntryResponse(entry models.JournalEntry) journalEntryResponse {
	symptoms := make([]string, len(entry.Symptoms))
	copy(symptoms, entry.Symptoms)
	return journalEntryResponse{
		ID:         entry.ID,
		Date:       services.FormatDay(entry.Date),
		Mood:       string(entry.Mood),
		Symptoms:   symptoms,
		Reflection: entry.Reflection,
		CreatedAt:  entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}
