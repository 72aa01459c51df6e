package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/cyclewise/internal/models"
)

var (
	ErrSymptomLogNotFound     = errors.New("symptom log not found")
	ErrSymptomLogLoadFailed   = errors.New("load symptom logs failed")
	ErrSymptomLogSaveFailed   = errors.New("save symptom log failed")
	ErrSymptomLogDeleteFailed = errors.New("delete symptom log failed")
)

type SymptomLogRepository interface {
	ListNewestFirst() ([]models.SymptomLog, error)
	ListRange(from *time.Time, to *time.Time) ([]models.SymptomLog, error)
	FindByDate(day time.Time) (models.SymptomLog, bool, error)
	Create(entry *models.SymptomLog) error
	Save(entry *models.SymptomLog) error
	DeleteByDate(day time.Time) (bool, error)
}

type SymptomLogService struct {
	logs SymptomLogRepository
}

func NewSymptomLogService(logs SymptomLogRepository) *SymptomLogService {
	return &SymptomLogService{logs: logs}
}

// Upsert writes the log for its date, replacing any log already stored there.
func (service *SymptomLogService) Upsert(input SymptomLogInput) (models.SymptomLog, error) {
	entry, err := ValidateSymptomLog(input)
	if err != nil {
		return models.SymptomLog{}, err
	}

	existing, found, err := service.logs.FindByDate(entry.Date)
	if err != nil {
		return models.SymptomLog{}, fmt.Errorf("%w: %v", ErrSymptomLogLoadFailed, err)
	}
	if !found {
		if err := service.logs.Create(&entry); err != nil {
			return models.SymptomLog{}, fmt.Errorf("%w: %v", ErrSymptomLogSaveFailed, err)
		}
		return entry, nil
	}

	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	if err := service.logs.Save(&entry); err != nil {
		return models.SymptomLog{}, fmt.Errorf("%w: %v", ErrSymptomLogSaveFailed, err)
	}
	return entry, nil
}

func (service *SymptomLogService) List() ([]models.SymptomLog, error) {
	logs, err := service.logs.ListNewestFirst()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymptomLogLoadFailed, err)
	}
	return logs, nil
}

// ListRange returns logs between from and to inclusive, newest first.
func (service *SymptomLogService) ListRange(from *time.Time, to *time.Time) ([]models.SymptomLog, error) {
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
	logs, err := service.logs.ListRange(fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymptomLogLoadFailed, err)
	}
	return logs, nil
}

func (service *SymptomLogService) Get(rawDate string) (models.SymptomLog, error) {
	day, err := ParseDay(rawDate)
	if err != nil {
		return models.SymptomLog{}, err
	}
	entry, found, err := service.logs.FindByDate(day)
	if err != nil {
		return models.SymptomLog{}, fmt.Errorf("%w: %v", ErrSymptomLogLoadFailed, err)
	}
	if !found {
		return models.SymptomLog{}, ErrSymptomLogNotFound
	}
	return entry, nil
}

func (service *SymptomLogService) Delete(rawDate string) error {
	day, err := ParseDay(rawDate)
	if err != nil {
		return err
	}
	deleted, err := service.logs.DeleteByDate(day)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSymptomLogDeleteFailed, err)
	}
	if !deleted {
		return ErrSymptomLogNotFound
	}
	return nil
}
