package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/cyclewise/internal/models"
)

var (
	ErrCycleEntryNotFound     = errors.New("cycle entry not found")
	ErrCycleEntryLoadFailed   = errors.New("load cycle entries failed")
	ErrCycleEntrySaveFailed   = errors.New("save cycle entry failed")
	ErrCycleEntryDeleteFailed = errors.New("delete cycle entry failed")
)

type CycleEntryRepository interface {
	ListRange(from *time.Time, to *time.Time) ([]models.CycleEntry, error)
	FindByDate(day time.Time) (models.CycleEntry, bool, error)
	Create(entry *models.CycleEntry) error
	Save(entry *models.CycleEntry) error
	DeleteByDate(day time.Time) (bool, error)
}

type CycleEntryService struct {
	entries CycleEntryRepository
}

func NewCycleEntryService(entries CycleEntryRepository) *CycleEntryService {
	return &CycleEntryService{entries: entries}
}

// Upsert stores the entry for its date. An entry already on that date is
// replaced but keeps its id and creation time.
func (service *CycleEntryService) Upsert(input CycleEntryInput) (models.CycleEntry, error) {
	entry, err := ValidateCycleEntry(input)
	if err != nil {
		return models.CycleEntry{}, err
	}

	existing, found, err := service.entries.FindByDate(entry.Date)
	if err != nil {
		return models.CycleEntry{}, fmt.Errorf("%w: %v", ErrCycleEntryLoadFailed, err)
	}
	if found {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		if err := service.entries.Save(&entry); err != nil {
			return models.CycleEntry{}, fmt.Errorf("%w: %v", ErrCycleEntrySaveFailed, err)
		}
		return entry, nil
	}

	if err := service.entries.Create(&entry); err != nil {
		return models.CycleEntry{}, fmt.Errorf("%w: %v", ErrCycleEntrySaveFailed, err)
	}
	return entry, nil
}

// ListRange returns entries between from and to inclusive, newest first.
func (service *CycleEntryService) ListRange(from *time.Time, to *time.Time) ([]models.CycleEntry, error) {
	var fromDay *time.Time
	var toDay *time.Time
	if from != nil {
		day := CalendarDay(*from)
		fromDay = &day
	}
	if to != nil {
		day := CalendarDay(*to)
		toDay = &day
	}
	entries, err := service.entries.ListRange(fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycleEntryLoadFailed, err)
	}
	return entries, nil
}

func (service *CycleEntryService) Get(rawDate string) (models.CycleEntry, error) {
	day, err := ParseDay(rawDate)
	if err != nil {
		return models.CycleEntry{}, err
	}
	entry, found, err := service.entries.FindByDate(day)
	if err != nil {
		return models.CycleEntry{}, fmt.Errorf("%w: %v", ErrCycleEntryLoadFailed, err)
	}
	if !found {
		return models.CycleEntry{}, ErrCycleEntryNotFound
	}
	return entry, nil
}

func (service *CycleEntryService) Delete(rawDate string) error {
	day, err := ParseDay(rawDate)
	if err != nil {
		return err
	}
	deleted, err := service.entries.DeleteByDate(day)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCycleEntryDeleteFailed, err)
	}
	if !deleted {
		return ErrCycleEntryNotFound
	}
	return nil
}
