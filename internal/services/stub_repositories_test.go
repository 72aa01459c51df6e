package services

import (
	"errors"
	"sort"
	"time"

	"github.com/terraincognita07/cyclewise/internal/models"
)

var errStubStorage = errors.New("storage unavailable")

type stubProfileRepo struct {
	profile models.CycleProfile
	found   bool
	findErr error
	saveErr error
	saves   int
}

func (repo *stubProfileRepo) Find() (models.CycleProfile, bool, error) {
	if repo.findErr != nil {
		return models.CycleProfile{}, false, repo.findErr
	}
	return repo.profile, repo.found, nil
}

func (repo *stubProfileRepo) Save(profile *models.CycleProfile) error {
	if repo.saveErr != nil {
		return repo.saveErr
	}
	repo.saves++
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	repo.profile = *profile
	repo.found = true
	return nil
}

func (repo *stubProfileRepo) Delete() error {
	repo.profile = models.CycleProfile{}
	repo.found = false
	return nil
}

type stubSymptomLogRepo struct {
	logs    []models.SymptomLog
	nextID  uint
	listErr error
}

func (repo *stubSymptomLogRepo) ListNewestFirst() ([]models.SymptomLog, error) {
	if repo.listErr != nil {
		return nil, repo.listErr
	}
	return sortLogsNewestFirst(repo.logs), nil
}

func (repo *stubSymptomLogRepo) ListRange(from *time.Time, to *time.Time) ([]models.SymptomLog, error) {
	if repo.listErr != nil {
		return nil, repo.listErr
	}
	result := make([]models.SymptomLog, 0, len(repo.logs))
	for _, entry := range sortLogsNewestFirst(repo.logs) {
		if dayInRange(entry.Date, from, to) {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (repo *stubSymptomLogRepo) FindByDate(day time.Time) (models.SymptomLog, bool, error) {
	for _, entry := range repo.logs {
		if CalendarDay(entry.Date).Equal(CalendarDay(day)) {
			return entry, true, nil
		}
	}
	return models.SymptomLog{}, false, nil
}

func (repo *stubSymptomLogRepo) Create(entry *models.SymptomLog) error {
	repo.nextID++
	entry.ID = repo.nextID
	entry.CreatedAt = time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	repo.logs = append(repo.logs, *entry)
	return nil
}

func (repo *stubSymptomLogRepo) Save(entry *models.SymptomLog) error {
	for index := range repo.logs {
		if repo.logs[index].ID == entry.ID {
			repo.logs[index] = *entry
			return nil
		}
	}
	return errors.New("missing row")
}

func (repo *stubSymptomLogRepo) DeleteByDate(day time.Time) (bool, error) {
	for index, entry := range repo.logs {
		if CalendarDay(entry.Date).Equal(CalendarDay(day)) {
			repo.logs = append(repo.logs[:index], repo.logs[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubJournalRepo struct {
	entries   []models.JournalEntry
	createErr error
}

func (repo *stubJournalRepo) ListNewestFirst() ([]models.JournalEntry, error) {
	return sortJournalNewestFirst(repo.entries), nil
}

func (repo *stubJournalRepo) Create(entry *models.JournalEntry) error {
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.entries = append(repo.entries, *entry)
	return nil
}

func (repo *stubJournalRepo) DeleteByID(id string) (bool, error) {
	for index, entry := range repo.entries {
		if entry.ID == id {
			repo.entries = append(repo.entries[:index], repo.entries[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubCycleEntryRepo struct {
	entries []models.CycleEntry
	nextID  uint
	listErr error
	saveErr error
}

func (repo *stubCycleEntryRepo) ListRange(from *time.Time, to *time.Time) ([]models.CycleEntry, error) {
	if repo.listErr != nil {
		return nil, repo.listErr
	}
	result := make([]models.CycleEntry, 0, len(repo.entries))
	for _, entry := range repo.entries {
		if dayInRange(entry.Date, from, to) {
			result = append(result, entry)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (repo *stubCycleEntryRepo) FindByDate(day time.Time) (models.CycleEntry, bool, error) {
	for _, entry := range repo.entries {
		if CalendarDay(entry.Date).Equal(CalendarDay(day)) {
			return entry, true, nil
		}
	}
	return models.CycleEntry{}, false, nil
}

func (repo *stubCycleEntryRepo) Create(entry *models.CycleEntry) error {
	if repo.saveErr != nil {
		return repo.saveErr
	}
	repo.nextID++
	entry.ID = repo.nextID
	entry.CreatedAt = time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC)
	repo.entries = append(repo.entries, *entry)
	return nil
}

func (repo *stubCycleEntryRepo) Save(entry *models.CycleEntry) error {
	if repo.saveErr != nil {
		return repo.saveErr
	}
	for index := range repo.entries {
		if repo.entries[index].ID == entry.ID {
			repo.entries[index] = *entry
			return nil
		}
	}
	return errors.New("missing row")
}

func (repo *stubCycleEntryRepo) DeleteByDate(day time.Time) (bool, error) {
	for index, entry := range repo.entries {
		if CalendarDay(entry.Date).Equal(CalendarDay(day)) {
			repo.entries = append(repo.entries[:index], repo.entries[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}
