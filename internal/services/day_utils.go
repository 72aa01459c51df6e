package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/cyclewise/internal/models"
)

const DayLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// CalendarDay keeps the calendar date of value (as seen in its own location)
// and drops the time of day. The result is UTC midnight.
func CalendarDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from one date to another. Negative
// when to precedes from.
func DaysBetween(from time.Time, to time.Time) int {
	return int(CalendarDay(to).Sub(CalendarDay(from)) / (24 * time.Hour))
}

func ParseDay(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	parsed, err := time.ParseInLocation(DayLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, trimmed)
	}
	return parsed, nil
}

func FormatDay(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return CalendarDay(value).Format(DayLayout)
}

// TodayAt returns the current calendar date as observed in location.
func TodayAt(now time.Time, location *time.Location) time.Time {
	return CalendarDay(DateAtLocation(now, location))
}

func sortLogsNewestFirst(logs []models.SymptomLog) []models.SymptomLog {
	sorted := make([]models.SymptomLog, 0, len(logs))
	sorted = append(sorted, logs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CalendarDay(sorted[i].Date).After(CalendarDay(sorted[j].Date))
	})
	return sorted
}

func sortJournalNewestFirst(entries []models.JournalEntry) []models.JournalEntry {
	sorted := make([]models.JournalEntry, 0, len(entries))
	sorted = append(sorted, entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		left := CalendarDay(sorted[i].Date)
		right := CalendarDay(sorted[j].Date)
		if !left.Equal(right) {
			return left.After(right)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

func headLogs(logs []models.SymptomLog, n int) []models.SymptomLog {
	if len(logs) <= n {
		return logs
	}
	return logs[:n]
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
